package main

import (
	"strconv"
	"strings"

	"goalvault/goal"
	"goalvault/sdk"
)

// -----------------------------------------------------------------------------
// Ledger Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the ledger has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(goal.KeyConfig)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the ledger has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

// loadConfig loads the ledger configuration and aborts when missing.
func loadConfig() *goal.LedgerConfig {
	ptr := sdk.StateGetObject(goal.KeyConfig)
	if ptr == nil || *ptr == "" {
		sdk.Abort("contract not initialized")
	}
	cfg, err := goal.DecodeLedgerConfig([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode config")
	}
	return cfg
}

// saveConfig stores the ledger configuration to state.
func saveConfig(cfg *goal.LedgerConfig) {
	stateSetIfChanged(goal.KeyConfig, string(goal.EncodeLedgerConfig(cfg)))
}

// -----------------------------------------------------------------------------
// Goal State
// -----------------------------------------------------------------------------

// loadGoal decodes a goal record and aborts loudly when missing.
func loadGoal(id uint64) *goal.Goal {
	ptr := sdk.StateGetObject(goal.GoalKey(id))
	if ptr == nil || *ptr == "" {
		sdk.Abort("goal not found")
	}
	g, err := goal.DecodeGoal([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode goal")
	}
	return g
}

// saveGoal writes the encoded goal blob under its id key.
func saveGoal(g *goal.Goal) {
	sdk.StateSetObject(goal.GoalKey(g.ID), string(goal.EncodeGoal(g)))
}

// -----------------------------------------------------------------------------
// Vote State
// -----------------------------------------------------------------------------

// loadTally returns the vote tally for a goal or nil when no vote was opened.
func loadTally(goalID uint64) *goal.VoteTally {
	ptr := sdk.StateGetObject(goal.VoteTallyKey(goalID))
	if ptr == nil || *ptr == "" {
		return nil
	}
	t, err := goal.DecodeVoteTally([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode vote tally")
	}
	return t
}

// saveTally persists the running counters after every accepted vote.
func saveTally(t *goal.VoteTally) {
	sdk.StateSetObject(goal.VoteTallyKey(t.GoalID), string(goal.EncodeVoteTally(t)))
}

// hasVoteReceipt flags whether this identity already voted on the goal.
func hasVoteReceipt(goalID uint64, voter sdk.Address) bool {
	ptr := sdk.StateGetObject(goal.VoteReceiptKey(goalID, voter))
	return ptr != nil && *ptr != ""
}

// setVoteReceipt marks the identity as voted; receipts are never cleared.
func setVoteReceipt(goalID uint64, voter sdk.Address, approve bool) {
	val := "n"
	if approve {
		val = "y"
	}
	sdk.StateSetObject(goal.VoteReceiptKey(goalID, voter), val)
}

// -----------------------------------------------------------------------------
// Streak State
// -----------------------------------------------------------------------------

// loadStreak defaults to the zero streak for first-time owners.
func loadStreak(owner sdk.Address) *goal.Streak {
	ptr := sdk.StateGetObject(goal.StreakKey(owner))
	if ptr == nil || *ptr == "" {
		return &goal.Streak{}
	}
	s, err := goal.DecodeStreak([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode streak")
	}
	return s
}

// saveStreak persists the streak counters for an owner.
func saveStreak(owner sdk.Address, s *goal.Streak) {
	sdk.StateSetObject(goal.StreakKey(owner), string(goal.EncodeStreak(s)))
}

// -----------------------------------------------------------------------------
// Fund Totals
// -----------------------------------------------------------------------------

// loadTotals defaults to zeroes before the first deposit.
func loadTotals() *goal.Totals {
	ptr := sdk.StateGetObject(goal.KeyTotals)
	if ptr == nil || *ptr == "" {
		return &goal.Totals{}
	}
	t, err := goal.DecodeTotals([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode totals")
	}
	return t
}

// saveTotals persists the conservation counters.
func saveTotals(t *goal.Totals) {
	sdk.StateSetObject(goal.KeyTotals, string(goal.EncodeTotals(t)))
}

// -----------------------------------------------------------------------------
// Owner Index
// -----------------------------------------------------------------------------

// appendOwnerGoal adds the goal id to the owner's comma-separated id list.
func appendOwnerGoal(owner sdk.Address, id uint64) {
	key := goal.OwnerGoalsKey(owner)
	idStr := UInt64ToString(id)
	if ptr := sdk.StateGetObject(key); ptr != nil && *ptr != "" {
		sdk.StateSetObject(key, *ptr+","+idStr)
		return
	}
	sdk.StateSetObject(key, idStr)
}

// ownerGoalIDs parses the owner index back into ids for queries.
func ownerGoalIDs(owner sdk.Address) []uint64 {
	ptr := sdk.StateGetObject(goal.OwnerGoalsKey(owner))
	if ptr == nil || *ptr == "" {
		return nil
	}
	parts := strings.Split(*ptr, ",")
	ids := make([]uint64, 0, len(parts))
	for _, p := range parts {
		if n, err := strconv.ParseUint(p, 10, 64); err == nil {
			ids = append(ids, n)
		}
	}
	return ids
}

// -----------------------------------------------------------------------------
// Oracle Nonce State
// -----------------------------------------------------------------------------

// lastOracleNonce returns the highest admitted signature nonce for a goal.
func lastOracleNonce(goalID uint64) uint64 {
	return getCount(goal.OracleNonceKey(goalID))
}

// setOracleNonce stores the admitted nonce so replays bounce.
func setOracleNonce(goalID uint64, nonce uint64) {
	setCount(goal.OracleNonceKey(goalID), nonce)
}
