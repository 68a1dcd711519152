package main

import (
	"encoding/hex"

	"goalvault/goal"
	"goalvault/sdk"
)

// ConfigUpdate mutates one configuration field. Admin only. Redirecting the
// oracle or beneficiary is allowed on purpose: goals are long-lived and the
// off-chain identities behind them rotate.
// Payload: field|value
//
// Exported as config_update.
func ConfigUpdate(payload *string) *string {
	requireInitialized()
	cfg := loadConfig()
	if getSenderAddress() != cfg.Admin {
		sdk.Abort("only the admin can update config")
	}

	args := decodeConfigUpdateArgs(payload)

	var old string
	switch args.Field {
	case "admin":
		addr := sdk.Address(args.Value)
		if !addr.IsValid() {
			sdk.Abort("invalid admin address")
		}
		old = cfg.Admin.String()
		cfg.Admin = addr
	case "oracle":
		addr := sdk.Address(args.Value)
		if !addr.IsValid() {
			sdk.Abort("invalid oracle address")
		}
		old = cfg.Oracle.String()
		cfg.Oracle = addr
	case "oracle_pubkey":
		old = hex.EncodeToString(cfg.OraclePubKey)
		cfg.OraclePubKey = parsePubKeyField(args.Value)
	case "oracle_mode":
		old = cfg.OracleMode.String()
		cfg.OracleMode = parseOracleModeField(args.Value)
	case "min_stake":
		amt := goal.FloatToAmount(parseFloatField(args.Value, "min stake"))
		if amt <= 0 {
			sdk.Abort("min stake must be positive")
		}
		old = UInt64ToString(uint64(cfg.MinStake))
		cfg.MinStake = amt
	case "voting_period":
		hours := parseUintField(args.Value, "voting period")
		if hours == 0 {
			sdk.Abort("voting period must be positive")
		}
		old = UInt64ToString(cfg.VotingPeriodHours)
		cfg.VotingPeriodHours = hours
	case "beneficiary":
		addr := sdk.Address(args.Value)
		if !addr.IsValid() {
			sdk.Abort("invalid beneficiary address")
		}
		old = cfg.Beneficiary.String()
		cfg.Beneficiary = addr
	case "share_bps":
		bps := parseUintField(args.Value, "share bps")
		if bps > MaxShareBps {
			sdk.Abort("share bps exceeds 10000")
		}
		old = UInt64ToString(cfg.ShareBps)
		cfg.ShareBps = bps
	case "badge_contract":
		old = cfg.BadgeContract
		cfg.BadgeContract = args.Value
	default:
		sdk.Abort("unknown config field")
	}

	saveConfig(cfg)
	emitConfigUpdated(args.Field, old, args.Value)

	return strptr("config updated")
}
