package main

import (
	"goalvault/goal"
	"goalvault/sdk"
)

// -----------------------------------------------------------------------------
// Community Voting
// -----------------------------------------------------------------------------

// openVote parks a mid-band goal in Disputed and starts the voting window.
func openVote(g *goal.Goal, cfg *goal.LedgerConfig) {
	g.Status = goal.StatusDisputed
	saveGoal(g)

	endsAt := nowUnix() + int64(cfg.VotingPeriodHours)*SecsPerHour
	saveTally(&goal.VoteTally{
		GoalID:       g.ID,
		VotingEndsAt: endsAt,
	})

	emitVoteOpened(g.ID, endsAt)
}

// GoalVote casts one yes/no vote on a disputed goal. One identity gets one
// vote and there is no un-vote, so the first receipt wins forever.
// Payload: goalId|approve
//
// Exported as goal_vote.
func GoalVote(payload *string) *string {
	requireInitialized()
	args := decodeVoteArgs(payload)
	g := loadGoal(args.GoalID)
	sender := getSenderAddress()

	if g.Status != goal.StatusDisputed {
		sdk.Abort("goal is not up for vote")
	}
	tally := loadTally(g.ID)
	if tally == nil {
		sdk.Abort("vote tally not found")
	}
	if tally.Resolved {
		sdk.Abort("vote already resolved")
	}
	if nowUnix() >= tally.VotingEndsAt {
		sdk.Abort("voting window closed")
	}
	if hasVoteReceipt(g.ID, sender) {
		sdk.Abort("already voted")
	}

	setVoteReceipt(g.ID, sender, args.Approve)
	if args.Approve {
		tally.YesCount++
	} else {
		tally.NoCount++
	}
	saveTally(tally)

	emitVoteCast(g.ID, sender.String(), args.Approve)

	return strptr("vote recorded")
}

// VoteResolve tallies a community vote and flips the goal terminal. Anyone
// may call it at any time, which is the point: resolution is pulled, never
// scheduled, and the voting deadline is advisory, not enforced here. Yes must
// strictly beat no for the goal to complete; a tie fails.
// Payload: goalId
//
// Exported as vote_resolve.
func VoteResolve(payload *string) *string {
	requireInitialized()
	cfg := loadConfig()
	raw := unwrapPayload(payload, "resolve payload missing")
	goalID := parseUintField(raw, "goal id")
	g := loadGoal(goalID)

	if g.Status != goal.StatusDisputed {
		sdk.Abort("goal is not up for vote")
	}
	tally := loadTally(g.ID)
	if tally == nil {
		sdk.Abort("vote tally not found")
	}
	if tally.Resolved {
		sdk.Abort("vote already resolved")
	}

	passed := tally.YesCount > tally.NoCount
	tally.Resolved = true
	tally.Outcome = passed
	saveTally(tally)

	emitVoteResolved(g.ID, tally.YesCount, tally.NoCount, passed)

	if passed {
		resolveComplete(g, cfg)
	} else {
		resolveFail(g, cfg)
	}

	emitGoalResolved(g.ID, g.Status)

	return strptr(g.Status.String())
}
