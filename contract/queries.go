package main

import (
	"goalvault/goal"
	"goalvault/sdk"
)

// -----------------------------------------------------------------------------
// Read Exports
// -----------------------------------------------------------------------------

// goalView is the JSON shape returned by goal_get; the binary storage format
// stays internal.
type goalView struct {
	ID          uint64  `json:"id"`
	Owner       string  `json:"owner"`
	Stake       float64 `json:"stake"`
	Deadline    int64   `json:"deadline"`
	CreatedAt   int64   `json:"created_at"`
	Score       uint8   `json:"score"`
	Scored      bool    `json:"scored"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ProofRef    string  `json:"proof_ref,omitempty"`
	Tx          string  `json:"tx,omitempty"`
	VoteYes     uint64  `json:"vote_yes,omitempty"`
	VoteNo      uint64  `json:"vote_no,omitempty"`
	VoteEndsAt  int64   `json:"vote_ends_at,omitempty"`
}

// streakView is the JSON shape returned by streak_get.
type streakView struct {
	Owner   string   `json:"owner"`
	Current uint64   `json:"current"`
	Highest uint64   `json:"highest"`
	Goals   []uint64 `json:"goals,omitempty"`
}

// totalsView is the JSON shape returned by totals_get.
type totalsView struct {
	Deposited float64 `json:"deposited"`
	Staked    float64 `json:"staked"`
	Withdrawn float64 `json:"withdrawn"`
	Donated   float64 `json:"donated"`
	Stranded  float64 `json:"stranded"`
}

// GoalGet returns one goal as JSON, including live vote counters when the
// goal sits in the vote band.
// Payload: goalId
//
// Exported as goal_get.
func GoalGet(payload *string) *string {
	requireInitialized()
	raw := unwrapPayload(payload, "query payload missing")
	goalID := parseUintField(raw, "goal id")
	g := loadGoal(goalID)

	view := goalView{
		ID:          g.ID,
		Owner:       g.Owner.String(),
		Stake:       goal.AmountToFloat(g.Stake),
		Deadline:    g.Deadline,
		CreatedAt:   g.CreatedAt,
		Score:       g.Score,
		Scored:      g.Scored,
		Status:      g.Status.String(),
		Category:    g.Category.String(),
		Description: g.Description,
		ProofRef:    g.ProofRef,
		Tx:          g.Tx,
	}
	if tally := loadTally(g.ID); tally != nil {
		view.VoteYes = tally.YesCount
		view.VoteNo = tally.NoCount
		view.VoteEndsAt = tally.VotingEndsAt
	}

	return strptr(ToJSON(view, "goal"))
}

// StreakGet returns the streak counters plus the goal id index for an owner.
// Payload: ownerAddress
//
// Exported as streak_get.
func StreakGet(payload *string) *string {
	requireInitialized()
	raw := unwrapPayload(payload, "query payload missing")
	owner := sdk.Address(raw)
	if !owner.IsValid() {
		sdk.Abort("invalid owner address")
	}

	streak := loadStreak(owner)
	view := streakView{
		Owner:   owner.String(),
		Current: streak.Current,
		Highest: streak.Highest,
		Goals:   ownerGoalIDs(owner),
	}

	return strptr(ToJSON(view, "streak"))
}

// TotalsGet returns the fund counters; deposited always equals
// staked+withdrawn+donated+stranded or the ledger has a bug.
//
// Exported as totals_get.
func TotalsGet(payload *string) *string {
	requireInitialized()
	t := loadTotals()

	view := totalsView{
		Deposited: goal.AmountToFloat(t.Deposited),
		Staked:    goal.AmountToFloat(t.Staked),
		Withdrawn: goal.AmountToFloat(t.Withdrawn),
		Donated:   goal.AmountToFloat(t.Donated),
		Stranded:  goal.AmountToFloat(t.Stranded),
	}

	return strptr(ToJSON(view, "totals"))
}
