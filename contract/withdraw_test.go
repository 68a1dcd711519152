package main

import (
	"fmt"
	"testing"

	"goalvault/goal"
	"goalvault/sdk"

	"github.com/stretchr/testify/require"
)

func TestStakeWithdrawPaysOwner(t *testing.T) {
	resetLedger(t)
	id := scoredGoal(t, testOwner, 90)

	asUser(testOwner)
	res := StakeWithdraw(strptr(UInt64ToString(id)))
	require.Equal(t, "stake withdrawn", *res)

	transfers := sdk.HostTransfers()
	require.Len(t, transfers, 1)
	require.Equal(t, sdk.Address(testOwner), transfers[0].To)
	require.Equal(t, int64(1000), transfers[0].Amount)
	require.Equal(t, sdk.AssetHive, transfers[0].Asset)

	require.Equal(t, goal.Amount(0), loadGoal(id).Stake)
	totals := hostTotals(t)
	require.Equal(t, goal.Amount(0), totals.Staked)
	require.Equal(t, goal.FloatToAmount(1.0), totals.Withdrawn)
	requireConservation(t)

	require.NotEmpty(t, lastLogWithPrefix("wd"))
}

func TestStakeWithdrawTwice(t *testing.T) {
	resetLedger(t)
	id := scoredGoal(t, testOwner, 90)

	asUser(testOwner)
	StakeWithdraw(strptr(UInt64ToString(id)))

	asUser(testOwner)
	expectAbort(t, "stake already withdrawn", func() {
		StakeWithdraw(strptr(UInt64ToString(id)))
	})
	require.Len(t, sdk.HostTransfers(), 1)
}

func TestStakeWithdrawOwnerOnly(t *testing.T) {
	resetLedger(t)
	id := scoredGoal(t, testOwner, 90)

	asUser("hive:stranger")
	expectAbort(t, "only the goal owner can withdraw", func() {
		StakeWithdraw(strptr(UInt64ToString(id)))
	})
}

func TestStakeWithdrawRequiresCompletion(t *testing.T) {
	resetLedger(t)

	active := createGoal(t, testOwner, "1.0", baseTime+1000)
	asUser(testOwner)
	expectAbort(t, "goal is not completed", func() {
		StakeWithdraw(strptr(UInt64ToString(active)))
	})

	failed := scoredGoal(t, testOwner, 10)
	asUser(testOwner)
	expectAbort(t, "goal is not completed", func() {
		StakeWithdraw(strptr(UInt64ToString(failed)))
	})
}

// TestFundConservationAcrossLifecycles runs a completed-and-withdrawn goal, a
// failed goal and a still-disputed goal side by side and checks the totals
// balance at every step.
func TestFundConservationAcrossLifecycles(t *testing.T) {
	resetLedger(t)

	won := scoredGoal(t, testOwner, 90)
	requireConservation(t)

	scoredGoal(t, "hive:other", 10)
	requireConservation(t)

	scoredGoal(t, "hive:third", 55)
	requireConservation(t)

	asUser(testOwner)
	StakeWithdraw(strptr(UInt64ToString(won)))
	requireConservation(t)

	totals := hostTotals(t)
	require.Equal(t, goal.FloatToAmount(3.0), totals.Deposited)
	require.Equal(t, goal.FloatToAmount(1.0), totals.Staked, "disputed stake stays in custody")
	require.Equal(t, goal.FloatToAmount(1.0), totals.Withdrawn)
	require.Equal(t, goal.FloatToAmount(0.5), totals.Donated)
	require.Equal(t, goal.FloatToAmount(0.5), totals.Stranded)
}

func TestGoalGetIncludesVoteState(t *testing.T) {
	resetLedger(t)
	id := scoredGoal(t, testOwner, 55)
	asUser("hive:alice")
	GoalVote(strptr(fmt.Sprintf("%d|true", id)))
	asUser("hive:bob")
	GoalVote(strptr(fmt.Sprintf("%d|false", id)))

	res := GoalGet(strptr(UInt64ToString(id)))
	require.Contains(t, *res, `"status":"disputed"`)
	require.Contains(t, *res, `"vote_yes":1`)
	require.Contains(t, *res, `"vote_no":1`)
}
