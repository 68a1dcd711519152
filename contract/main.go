////////////////////////////////////////////////////////////////////////////////
// GoalVault: stake-backed goal commitments for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"

	"goalvault/goal"
	"goalvault/sdk"
)

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the ledger with the caller as admin.
// Must be called before any other function.
// Payload: minStake|votingPeriodHours|oracleMode|oracle|beneficiary|shareBps|badgeContract|stakeAsset
// oracle is an address in caller mode and a hex ed25519 public key in signature mode.
//
// Exported as contract_init.
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	args := decodeInitArgs(payload)

	cfg := goal.LedgerConfig{
		Admin:             getSenderAddress(),
		MinStake:          args.MinStake,
		VotingPeriodHours: args.VotingPeriodHours,
		OracleMode:        args.OracleMode,
		Beneficiary:       args.Beneficiary,
		ShareBps:          args.ShareBps,
		BadgeContract:     args.BadgeContract,
		StakeAsset:        args.StakeAsset,
	}
	if args.OracleMode == goal.OracleModeSignature {
		cfg.OraclePubKey = args.OraclePubKey
	} else {
		cfg.Oracle = args.Oracle
	}
	saveConfig(&cfg)

	emitInitEvent(cfg.Admin.String(), cfg.OracleMode.String())

	return strptr(fmt.Sprintf("initialized with %s oracle admission", cfg.OracleMode.String()))
}
