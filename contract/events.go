package main

import (
	"fmt"
	"strconv"

	"goalvault/goal"
	"goalvault/sdk"
)

// emitInitEvent writes a tiny "in" log so indexers know the ledger went live.
func emitInitEvent(admin string, oracleMode string) {
	sdk.Log(fmt.Sprintf(
		"in|by:%s|om:%s",
		admin,
		oracleMode,
	))
}

// emitGoalCreated gives explorers a neat ping without scanning full storage diffs.
func emitGoalCreated(goalID uint64, owner string, stake goal.Amount, category goal.Category, deadline int64, description string) {
	sdk.Log(fmt.Sprintf(
		"gc|id:%d|by:%s|am:%f|cat:%s|dl:%s|d:%s",
		goalID,
		owner,
		goal.AmountToFloat(stake),
		category.String(),
		strconv.FormatInt(deadline, 10),
		description,
	))
}

// emitProofSubmitted is the line the off-chain verifier watches for.
func emitProofSubmitted(goalID uint64, owner string, proofRef string) {
	sdk.Log(fmt.Sprintf(
		"pf|id:%d|by:%s|ref:%s",
		goalID,
		owner,
		proofRef,
	))
}

// emitVerificationComplete records the admitted raw score before resolution.
func emitVerificationComplete(goalID uint64, score uint8) {
	sdk.Log(fmt.Sprintf(
		"vc|id:%d|sc:%d",
		goalID,
		score,
	))
}

// emitVerified pairs the admitted score with the oracle identity and the pass
// flag so indexers never have to re-derive the threshold.
func emitVerified(goalID uint64, by string, score uint8, passed bool) {
	sdk.Log(fmt.Sprintf(
		"vf|id:%d|by:%s|sc:%d|p:%s",
		goalID,
		by,
		score,
		strconv.FormatBool(passed),
	))
}

// emitGoalResolved is the swiss army knife log entry for any terminal flip.
func emitGoalResolved(goalID uint64, status goal.Status) {
	sdk.Log(fmt.Sprintf(
		"gr|id:%d|s:%s",
		goalID,
		status.String(),
	))
}

// emitVoteOpened logs the mid-band handoff to the community with its deadline.
func emitVoteOpened(goalID uint64, endsAt int64) {
	sdk.Log(fmt.Sprintf(
		"vo|id:%d|ends:%s",
		goalID,
		strconv.FormatInt(endsAt, 10),
	))
}

// emitVoteCast includes the raw choice so tallies can be replayed from logs only.
func emitVoteCast(goalID uint64, voter string, approve bool) {
	sdk.Log(fmt.Sprintf(
		"v|id:%d|by:%s|a:%s",
		goalID,
		voter,
		strconv.FormatBool(approve),
	))
}

// emitVoteResolved records the final counts next to the outcome.
func emitVoteResolved(goalID uint64, yes uint64, no uint64, passed bool) {
	sdk.Log(fmt.Sprintf(
		"vr|id:%d|y:%d|n:%d|p:%s",
		goalID,
		yes,
		no,
		strconv.FormatBool(passed),
	))
}

// emitBadgeMinted only fires when the registry call actually succeeded.
func emitBadgeMinted(goalID uint64, owner string, category goal.Category) {
	sdk.Log(fmt.Sprintf(
		"bm|id:%d|to:%s|cat:%s",
		goalID,
		owner,
		category.String(),
	))
}

// emitBadgeMintFailed leaves a trace when the registry was unreachable.
func emitBadgeMintFailed(goalID uint64) {
	sdk.Log(fmt.Sprintf(
		"bf|id:%d",
		goalID,
	))
}

// emitDonation lets us trace beneficiary payouts in a single terse line.
func emitDonation(goalID uint64, to string, amount goal.Amount) {
	sdk.Log(fmt.Sprintf(
		"dn|id:%d|to:%s|am:%f",
		goalID,
		to,
		goal.AmountToFloat(amount),
	))
}

// emitDonationFailed flags stranded funds when the transfer bounced.
func emitDonationFailed(goalID uint64, amount goal.Amount) {
	sdk.Log(fmt.Sprintf(
		"df|id:%d|am:%f",
		goalID,
		goal.AmountToFloat(amount),
	))
}

// emitWithdraw mirrors the creation log so stakes can be traced end to end.
func emitWithdraw(goalID uint64, to string, amount goal.Amount) {
	sdk.Log(fmt.Sprintf(
		"wd|id:%d|to:%s|am:%f",
		goalID,
		to,
		goal.AmountToFloat(amount),
	))
}

// emitConfigUpdated spells out field diffs so auditors can track sensitive flips.
func emitConfigUpdated(field string, old string, new string) {
	sdk.Log(fmt.Sprintf(
		"cu|f:%s|old:%s|new:%s",
		field,
		old,
		new,
	))
}
