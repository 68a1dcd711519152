package main

import (
	"goalvault/goal"
	"goalvault/sdk"
)

// -----------------------------------------------------------------------------
// Goal Creation
// -----------------------------------------------------------------------------

// GoalCreate registers a new staked goal. The stake is pulled from the sender
// through a transfer.allow intent, so without a matching intent the call
// aborts before any state is touched.
// Payload: deadline|category|stake|description
//
// Exported as goal_create.
func GoalCreate(payload *string) *string {
	requireInitialized()
	cfg := loadConfig()
	args := decodeGoalCreateArgs(payload)
	sender := getSenderAddress()

	if !sender.IsValid() {
		sdk.Abort("invalid sender address")
	}
	if args.Stake < cfg.MinStake {
		sdk.Abort("stake below minimum")
	}
	now := nowUnix()
	if args.Deadline <= now {
		sdk.Abort("deadline must be in the future")
	}

	ta := getFirstTransferAllow()
	if ta == nil {
		sdk.Abort("transfer.allow intent required")
	}
	if ta.Token != cfg.StakeAsset {
		sdk.Abort("intent asset does not match stake asset")
	}
	if goal.FloatToAmount(ta.Limit) < args.Stake {
		sdk.Abort("intent limit below stake")
	}

	// Pull funds before any record exists so a failed draw leaves no trace.
	sdk.HiveDraw(goal.AmountToInt64(args.Stake), cfg.StakeAsset)

	id := getCount(goal.KeyGoalCount) + 1
	setCount(goal.KeyGoalCount, id)

	g := &goal.Goal{
		ID:          id,
		Owner:       sender,
		Stake:       args.Stake,
		Deadline:    args.Deadline,
		CreatedAt:   now,
		Status:      goal.StatusActive,
		Category:    args.Category,
		Description: args.Description,
		Tx:          currentTxID(),
	}
	saveGoal(g)
	appendOwnerGoal(sender, id)

	totals := loadTotals()
	totals.Deposited += args.Stake
	totals.Staked += args.Stake
	saveTotals(totals)

	emitGoalCreated(id, sender.String(), args.Stake, args.Category, args.Deadline, args.Description)

	return strptr(UInt64ToString(id))
}

// -----------------------------------------------------------------------------
// Proof Submission
// -----------------------------------------------------------------------------

// ProofSubmit attaches or replaces the proof reference on an active goal.
// Resubmission is allowed until a score is admitted; afterwards the record is
// frozen. A one day grace window past the deadline keeps honest latecomers in.
// Payload: goalId|proofRef
//
// Exported as proof_submit.
func ProofSubmit(payload *string) *string {
	requireInitialized()
	args := decodeProofArgs(payload)
	g := loadGoal(args.GoalID)
	sender := getSenderAddress()

	if g.Owner != sender {
		sdk.Abort("only the goal owner can submit proof")
	}
	if g.Status != goal.StatusActive {
		sdk.Abort("goal is not active")
	}
	if g.Scored {
		sdk.Abort("goal already scored")
	}
	if nowUnix() > g.Deadline+ProofGraceSecs {
		sdk.Abort("proof window closed")
	}

	g.ProofRef = args.ProofRef
	saveGoal(g)

	emitProofSubmitted(g.ID, sender.String(), args.ProofRef)

	return strptr("proof submitted")
}
