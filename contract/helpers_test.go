package main

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"goalvault/goal"
	"goalvault/sdk"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Harness
// =============================================================================

const (
	testAdmin   = "hive:admin"
	testOracle  = "hive:oracle"
	testOwner   = "hive:someone"
	testCharity = "hive:charity"
	testBadges  = "contract:badges"

	baseTime = int64(1_700_000_000)
)

var txSeq uint64

// resetLedger wipes host state and re-initializes the contract with the
// default caller-mode configuration.
func resetLedger(t *testing.T) {
	t.Helper()
	sdk.ResetHost()
	txSeq = 0
	cachedEnvLoaded = false
	cachedTransfer = nil
	sdk.SetHostTimestamp(baseTime)

	asUser(testAdmin)
	initPayload := fmt.Sprintf("0.1|72|caller|%s|%s|5000|%s|hive", testOracle, testCharity, testBadges)
	res := ContractInit(strptr(initPayload))
	require.Contains(t, *res, "caller")
}

// asUser switches the host sender and bumps the tx id so the contract's
// per-tx env cache refreshes.
func asUser(sender string) {
	txSeq++
	sdk.SetHostSender(sdk.Address(sender))
	sdk.SetHostTxID("tx-" + strconv.FormatUint(txSeq, 10))
	sdk.SetHostIntents(nil)
}

// withIntent attaches a transfer.allow intent for the current tx.
func withIntent(limit string, token string) {
	sdk.SetHostIntents([]sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token},
	}})
}

// atTime moves block time; the tx bump keeps the env cache honest.
func atTime(unix int64) {
	txSeq++
	sdk.SetHostTimestamp(unix)
	sdk.SetHostTxID("tx-" + strconv.FormatUint(txSeq, 10))
}

// expectAbort runs fn and asserts it aborts with the given message fragment.
func expectAbort(t *testing.T, fragment string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected abort containing %q", fragment)
		abortErr, ok := r.(*sdk.AbortError)
		require.True(t, ok, "expected AbortError, got %v", r)
		require.Contains(t, abortErr.Msg, fragment)
	}()
	fn()
}

// createGoal runs the whole funded creation flow and returns the new id.
func createGoal(t *testing.T, owner string, stake string, deadline int64) uint64 {
	t.Helper()
	asUser(owner)
	withIntent(stake, "hive")
	payload := fmt.Sprintf("%d|0|%s|run a marathon", deadline, stake)
	res := GoalCreate(strptr(payload))
	id, err := strconv.ParseUint(*res, 10, 64)
	require.NoError(t, err)
	return id
}

// submitProof attaches a proof as the owner.
func submitProof(t *testing.T, owner string, goalID uint64, ref string) {
	t.Helper()
	asUser(owner)
	ProofSubmit(strptr(fmt.Sprintf("%d|%s", goalID, ref)))
}

// scoreAs admits a score as the given sender.
func scoreAs(t *testing.T, sender string, goalID uint64, score uint8) string {
	t.Helper()
	asUser(sender)
	res := ScoreSet(strptr(fmt.Sprintf("%d|%d", goalID, score)))
	return *res
}

// scoredGoal sets up a created+proved goal and returns its id.
func scoredGoal(t *testing.T, owner string, score uint8) uint64 {
	t.Helper()
	id := createGoal(t, owner, "1.0", baseTime+1000)
	submitProof(t, owner, id, "bafyproof")
	scoreAs(t, testOracle, id, score)
	return id
}

// hostTotals reads the conservation counters straight from storage.
func hostTotals(t *testing.T) *goal.Totals {
	t.Helper()
	ptr := sdk.HostStateGet(goal.KeyTotals)
	require.NotNil(t, ptr)
	totals, err := goal.DecodeTotals([]byte(*ptr))
	require.NoError(t, err)
	return totals
}

// requireConservation checks deposited == staked + withdrawn + donated + stranded.
func requireConservation(t *testing.T) {
	t.Helper()
	totals := hostTotals(t)
	require.Equal(t, totals.Deposited,
		totals.Staked+totals.Withdrawn+totals.Donated+totals.Stranded,
		"fund conservation violated: %+v", totals)
}

// lastLogWithPrefix scans the host log journal backwards for an event code.
func lastLogWithPrefix(prefix string) string {
	logs := sdk.HostLogs()
	for i := len(logs) - 1; i >= 0; i-- {
		if strings.HasPrefix(logs[i], prefix+"|") {
			return logs[i]
		}
	}
	return ""
}
