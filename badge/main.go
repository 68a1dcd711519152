////////////////////////////////////////////////////////////////////////////////
// GoalVault badge registry: soulbound completion badges for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import "goalvault/sdk"

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// BadgeInit binds the registry to the one ledger contract allowed to mint.
// Must be called before any other function.
// Payload: ledgerContractId
//
// Exported as badge_init.
func BadgeInit(payload *string) *string {
	if isRegistryInitialized() {
		sdk.Abort("registry already initialized")
	}

	ledger := unwrapPayload(payload, "ledger contract id required")
	if sdk.Address(ledger).Domain() != sdk.AddressDomainContract {
		sdk.Abort("ledger id must be a contract address")
	}
	sdk.StateSetObject(keyLedger, ledger)

	emitRegistryInitEvent(ledger)

	return strptr("registry bound to " + ledger)
}
