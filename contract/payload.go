package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"goalvault/goal"
	"goalvault/sdk"
)

// decodeInitArgs unpacks the pipe-delimited payload used for contract_init.
// Format: minStake|votingPeriodHours|oracleMode|oracle|beneficiary|shareBps|badgeContract|stakeAsset
func decodeInitArgs(payload *string) *InitArgs {
	raw := unwrapPayload(payload, "init payload missing")
	parts := strings.Split(raw, "|")
	get := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	args := &InitArgs{
		MinStake: goal.FloatToAmount(parseFloatField(get(0), "min stake")),
	}
	if args.MinStake <= 0 {
		sdk.Abort("min stake must be positive")
	}

	args.VotingPeriodHours = parseUintField(get(1), "voting period")
	if args.VotingPeriodHours == 0 {
		args.VotingPeriodHours = FallbackVotingPeriodHours
	}

	args.OracleMode = parseOracleModeField(get(2))
	oracleField := strings.TrimSpace(get(3))
	if args.OracleMode == goal.OracleModeSignature {
		args.OraclePubKey = parsePubKeyField(oracleField)
	} else {
		args.Oracle = sdk.Address(oracleField)
		if !args.Oracle.IsValid() {
			sdk.Abort("invalid oracle address")
		}
	}

	args.Beneficiary = sdk.Address(strings.TrimSpace(get(4)))
	if !args.Beneficiary.IsValid() {
		sdk.Abort("invalid beneficiary address")
	}

	shareField := strings.TrimSpace(get(5))
	if shareField == "" {
		args.ShareBps = FallbackShareBps
	} else {
		args.ShareBps = parseUintField(shareField, "share bps")
	}
	if args.ShareBps > MaxShareBps {
		sdk.Abort("share bps exceeds 10000")
	}

	args.BadgeContract = strings.TrimSpace(get(6))

	asset := strings.TrimSpace(get(7))
	if asset == "" {
		asset = sdk.AssetHive.String()
	}
	if !isValidAsset(asset) {
		sdk.Abort("invalid stake asset")
	}
	args.StakeAsset = sdk.Asset(asset)

	return args
}

// decodeGoalCreateArgs expects `deadline|category|stake|description`. The
// description is joined from all trailing parts so it may contain pipes.
func decodeGoalCreateArgs(payload *string) *GoalCreateArgs {
	raw := unwrapPayload(payload, "goal payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 4 {
		sdk.Abort("goal payload requires deadline|category|stake|description")
	}

	args := &GoalCreateArgs{
		Deadline:    parseInt64Field(parts[0], "deadline"),
		Category:    parseCategoryField(parts[1]),
		Stake:       goal.FloatToAmount(parseFloatField(parts[2], "stake")),
		Description: strings.TrimSpace(strings.Join(parts[3:], "|")),
	}
	if args.Description == "" {
		sdk.Abort("description required")
	}
	if len(args.Description) > MaxDescriptionLength {
		sdk.Abort(fmt.Sprintf("description exceeds maximum length of %d characters", MaxDescriptionLength))
	}
	return args
}

// decodeProofArgs expects `goalId|proofRef`, the ref joined from trailing parts.
func decodeProofArgs(payload *string) *ProofSubmitArgs {
	raw := unwrapPayload(payload, "proof payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("proof payload requires goalId|proofRef")
	}
	ref := strings.TrimSpace(strings.Join(parts[1:], "|"))
	if ref == "" {
		sdk.Abort("proof reference required")
	}
	if len(ref) > MaxProofRefLength {
		sdk.Abort(fmt.Sprintf("proof reference exceeds maximum length of %d characters", MaxProofRefLength))
	}
	return &ProofSubmitArgs{
		GoalID:   parseUintField(parts[0], "goal id"),
		ProofRef: ref,
	}
}

// decodeScoreArgs expects `goalId|score` in caller mode and
// `goalId|score|nonce|signature` in signature mode.
func decodeScoreArgs(payload *string) *ScoreSetArgs {
	raw := unwrapPayload(payload, "score payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("score payload requires goalId|score")
	}
	args := &ScoreSetArgs{
		GoalID: parseUintField(parts[0], "goal id"),
		Score:  parseScoreField(parts[1]),
	}
	if len(parts) >= 4 {
		args.Nonce = parseUintField(parts[2], "nonce")
		sig, err := hex.DecodeString(strings.TrimSpace(parts[3]))
		if err != nil {
			sdk.Abort("invalid signature encoding")
		}
		args.Signature = sig
	}
	return args
}

// decodeVerdictArgs expects `goalId|passed` in caller mode and
// `goalId|passed|nonce|signature` in signature mode.
func decodeVerdictArgs(payload *string) *VerdictSetArgs {
	raw := unwrapPayload(payload, "verdict payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("verdict payload requires goalId|passed")
	}
	args := &VerdictSetArgs{
		GoalID: parseUintField(parts[0], "goal id"),
		Passed: parseBoolField(parts[1]),
	}
	if len(parts) >= 4 {
		args.Nonce = parseUintField(parts[2], "nonce")
		sig, err := hex.DecodeString(strings.TrimSpace(parts[3]))
		if err != nil {
			sdk.Abort("invalid signature encoding")
		}
		args.Signature = sig
	}
	return args
}

// decodeVoteArgs expects `goalId|approve`.
func decodeVoteArgs(payload *string) *VoteArgs {
	raw := unwrapPayload(payload, "vote payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("vote payload requires goalId|approve")
	}
	return &VoteArgs{
		GoalID:  parseUintField(parts[0], "goal id"),
		Approve: parseBoolField(parts[1]),
	}
}

// decodeConfigUpdateArgs expects `field|value`; value may contain pipes.
func decodeConfigUpdateArgs(payload *string) *ConfigUpdateArgs {
	raw := unwrapPayload(payload, "config payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("config payload requires field|value")
	}
	field := strings.ToLower(strings.TrimSpace(parts[0]))
	if field == "" {
		sdk.Abort("config field required")
	}
	return &ConfigUpdateArgs{
		Field: field,
		Value: strings.TrimSpace(strings.Join(parts[1:], "|")),
	}
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// parseFloatField trims the input and aborts with a friendly field name on errors.
func parseFloatField(val string, field string) float64 {
	val = strings.TrimSpace(val)
	if val == "" {
		sdk.Abort(fmt.Sprintf("missing %s", field))
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return f
}

// parseUintField is the uint variant used for ids, nonces and durations.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseInt64Field handles signed unix timestamps.
func parseInt64Field(val string, field string) int64 {
	val = strings.TrimSpace(val)
	if val == "" {
		sdk.Abort(fmt.Sprintf("missing %s", field))
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseBoolField accepts a couple of truthy keywords, defaulting to false for unknown text.
func parseBoolField(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// parseScoreField rejects anything outside the 0..100 band up front.
func parseScoreField(val string) uint8 {
	n := parseUintField(val, "score")
	if n > goal.ScoreMax {
		sdk.Abort("score exceeds 100")
	}
	return uint8(n)
}

// parseCategoryField accepts the dense numeric category index only.
func parseCategoryField(val string) goal.Category {
	n := parseUintField(val, "category")
	if n >= goal.CategoryCount {
		sdk.Abort("invalid category")
	}
	return goal.Category(n)
}

// parseOracleModeField maps mode keywords onto the enum, defaulting to caller.
func parseOracleModeField(val string) goal.OracleMode {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "", "caller", "0":
		return goal.OracleModeCaller
	case "signature", "sig", "1":
		return goal.OracleModeSignature
	default:
		sdk.Abort("invalid oracle mode")
	}
	return goal.OracleModeCaller
}

// parsePubKeyField decodes a hex ed25519 public key and checks its size.
func parsePubKeyField(val string) []byte {
	key, err := hex.DecodeString(strings.TrimSpace(val))
	if err != nil || len(key) != 32 {
		sdk.Abort("invalid oracle public key")
	}
	return key
}
