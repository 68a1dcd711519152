package main

import (
	"goalvault/goal"
	"goalvault/sdk"
)

// -----------------------------------------------------------------------------
// Oracle Verdicts
// -----------------------------------------------------------------------------

// ScoreSet admits a 0-100 oracle score for an active goal and resolves it
// immediately when the score sits outside the 40-74 vote band. A missing
// proof is no obstacle: the oracle may fail a goal nobody ever proved.
// Payload: goalId|score in caller mode, goalId|score|nonce|signature otherwise.
//
// Exported as score_set.
func ScoreSet(payload *string) *string {
	requireInitialized()
	cfg := loadConfig()
	args := decodeScoreArgs(payload)
	g := loadGoal(args.GoalID)

	requireScorable(g)
	admitScore(cfg, g.ID, args.Score, args.Nonce, args.Signature)

	return applyScore(g, cfg, args.Score)
}

// VerdictSet is the boolean verdict entry point. A pass maps to score 100 and
// a fail to score 0, so boolean verdicts never land in the vote band.
// Payload: goalId|passed in caller mode, goalId|passed|nonce|signature otherwise.
//
// Exported as verdict_set.
func VerdictSet(payload *string) *string {
	requireInitialized()
	cfg := loadConfig()
	args := decodeVerdictArgs(payload)
	g := loadGoal(args.GoalID)

	var score uint8
	if args.Passed {
		score = goal.ScoreMax
	}

	requireScorable(g)
	admitScore(cfg, g.ID, score, args.Nonce, args.Signature)

	return applyScore(g, cfg, score)
}

// requireScorable rejects every path that could score a goal twice.
func requireScorable(g *goal.Goal) {
	if g.Status.Terminal() {
		sdk.Abort("goal already resolved")
	}
	if g.Status == goal.StatusDisputed {
		sdk.Abort("goal awaiting vote resolution")
	}
	if g.Scored {
		sdk.Abort("goal already scored")
	}
}

// applyScore records the admitted score and routes the goal into its terminal
// state or the community vote band.
func applyScore(g *goal.Goal, cfg *goal.LedgerConfig, score uint8) *string {
	g.Score = score
	g.Scored = true

	emitVerificationComplete(g.ID, score)
	emitVerified(g.ID, oracleIdentity(cfg), score, score >= goal.ScorePassAt)

	switch {
	case score >= goal.ScorePassAt:
		resolveComplete(g, cfg)
	case score < goal.ScoreFailBelow:
		resolveFail(g, cfg)
	default:
		openVote(g, cfg)
	}

	emitGoalResolved(g.ID, g.Status)

	return strptr(g.Status.String())
}

// -----------------------------------------------------------------------------
// Terminal Transitions
// -----------------------------------------------------------------------------

// resolveComplete flips the goal to Completed, bumps the owner streak and
// fires the best-effort badge mint. The stake stays in custody until the
// owner pulls it through stake_withdraw.
func resolveComplete(g *goal.Goal, cfg *goal.LedgerConfig) {
	g.Status = goal.StatusCompleted
	saveGoal(g)

	streak := loadStreak(g.Owner)
	streak.Current++
	if streak.Current > streak.Highest {
		streak.Highest = streak.Current
	}
	saveStreak(g.Owner, streak)

	mintBadge(g, cfg, streak.Current)
}

// resolveFail flips the goal to Failed, zeroes the owner streak and pays the
// configured beneficiary share. The donation is best-effort: a bounced
// transfer strands the whole stake instead of blocking the resolution.
func resolveFail(g *goal.Goal, cfg *goal.LedgerConfig) {
	g.Status = goal.StatusFailed
	stake := g.Stake
	g.Stake = 0
	saveGoal(g)

	streak := loadStreak(g.Owner)
	if streak.Current != 0 {
		streak.Current = 0
		saveStreak(g.Owner, streak)
	}

	donation := goal.Amount(int64(stake) * int64(cfg.ShareBps) / int64(MaxShareBps))
	donated := goal.Amount(0)
	if donation > 0 && cfg.Beneficiary.IsValid() {
		if tryTransfer(cfg.Beneficiary, donation, cfg.StakeAsset) {
			donated = donation
			emitDonation(g.ID, cfg.Beneficiary.String(), donation)
		} else {
			emitDonationFailed(g.ID, donation)
		}
	}

	totals := loadTotals()
	totals.Staked -= stake
	totals.Donated += donated
	totals.Stranded += stake - donated
	saveTotals(totals)
}

// tryTransfer wraps HiveTransfer so a host abort degrades into a boolean
// instead of killing the surrounding resolution.
func tryTransfer(to sdk.Address, amount goal.Amount, asset sdk.Asset) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	sdk.HiveTransfer(to, goal.AmountToInt64(amount), asset)
	return true
}
