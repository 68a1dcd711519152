package main

import (
	"goalvault/goal"
	"goalvault/sdk"
)

// StakeWithdraw pays the stake of a completed goal back to its owner. The
// record is zeroed and the totals are moved before the transfer fires, so a
// replay of the same call finds nothing left to take. The transfer itself is
// all-or-nothing: if the host rejects it the whole transaction reverts.
// Payload: goalId
//
// Exported as stake_withdraw.
func StakeWithdraw(payload *string) *string {
	requireInitialized()
	cfg := loadConfig()
	raw := unwrapPayload(payload, "withdraw payload missing")
	goalID := parseUintField(raw, "goal id")
	g := loadGoal(goalID)
	sender := getSenderAddress()

	if g.Owner != sender {
		sdk.Abort("only the goal owner can withdraw")
	}
	if g.Status != goal.StatusCompleted {
		sdk.Abort("goal is not completed")
	}
	if g.Stake <= 0 {
		sdk.Abort("stake already withdrawn")
	}

	amount := g.Stake
	g.Stake = 0
	saveGoal(g)

	totals := loadTotals()
	totals.Staked -= amount
	totals.Withdrawn += amount
	saveTotals(totals)

	sdk.HiveTransfer(g.Owner, goal.AmountToInt64(amount), cfg.StakeAsset)

	emitWithdraw(g.ID, g.Owner.String(), amount)

	return strptr("stake withdrawn")
}
