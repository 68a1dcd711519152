// Package goal holds the shared types and storage codec for the GoalVault
// ledger contract. The off-chain verifier imports it to decode goal records
// read straight out of contract state.
package goal

import (
	"math"

	"goalvault/sdk"
)

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(0.1)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for Hive transfer functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// Status captures a goal's lifecycle. Active and Disputed are non-terminal;
// a mid-band goal parks in Disputed until its community vote resolves.
type Status uint8

const (
	StatusActive    Status = 0
	StatusCompleted Status = 1
	StatusFailed    Status = 2
	StatusDisputed  Status = 3
)

// String prints the status as lower-case text for events and logs.
// Example payload: StatusCompleted.String()
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusDisputed:
		return "disputed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is accepted from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Category is the closed set used for badge classification and display.
type Category uint8

const (
	CategoryFitness   Category = 0
	CategoryLearning  Category = 1
	CategoryCareer    Category = 2
	CategoryCreative  Category = 3
	CategoryCommunity Category = 4
	CategoryOther     Category = 5

	// CategoryCount bounds validation; categories are dense 0..CategoryCount-1.
	CategoryCount = 6
)

// String serializes the category for event lines.
// Example payload: CategoryFitness.String()
func (c Category) String() string {
	switch c {
	case CategoryFitness:
		return "fitness"
	case CategoryLearning:
		return "learning"
	case CategoryCareer:
		return "career"
	case CategoryCreative:
		return "creative"
	case CategoryCommunity:
		return "community"
	case CategoryOther:
		return "other"
	default:
		return "unknown"
	}
}

// OracleMode selects how verdicts are admitted into the ledger.
type OracleMode uint8

const (
	// OracleModeCaller admits verdicts only from the registered oracle address.
	OracleModeCaller OracleMode = 0
	// OracleModeSignature admits verdicts from anyone carrying an ed25519
	// signature by the oracle key over goalId|score|nonce.
	OracleModeSignature OracleMode = 1
)

// String serializes the mode for the init event.
// Example payload: OracleModeSignature.String()
func (m OracleMode) String() string {
	if m == OracleModeSignature {
		return "signature"
	}
	return "caller"
}

// Goal is one staked commitment record.
type Goal struct {
	ID          uint64
	Owner       sdk.Address
	Stake       Amount
	Deadline    int64
	CreatedAt   int64
	Score       uint8
	Scored      bool
	Status      Status
	Category    Category
	Description string
	ProofRef    string
	Tx          string
}

// VoteEligible reports whether the goal sits in the mid score band that
// defers resolution to a community vote.
func (g *Goal) VoteEligible() bool {
	return !g.Status.Terminal() && g.Scored &&
		g.Score >= ScoreFailBelow && g.Score < ScorePassAt
}

// Score thresholds for the resolution policy.
const (
	// ScorePassAt and above auto-completes a goal.
	ScorePassAt = 75
	// ScoreFailBelow and below-exclusive auto-fails a goal.
	ScoreFailBelow = 40
	// ScoreMax is the inclusive upper bound of oracle scores.
	ScoreMax = 100
)

// VoteTally is one community vote per goal that enters the mid score band.
type VoteTally struct {
	GoalID       uint64
	YesCount     uint64
	NoCount      uint64
	VotingEndsAt int64
	Resolved     bool
	Outcome      bool
}

// Streak tracks consecutive completions per owner. Current resets to zero on
// any failure; Highest only ever grows.
type Streak struct {
	Current uint64
	Highest uint64
}

// LedgerConfig is the scalar contract configuration written at init and
// mutated only through admin updates.
type LedgerConfig struct {
	Admin             sdk.Address
	Oracle            sdk.Address
	OracleMode        OracleMode
	OraclePubKey      []byte
	MinStake          Amount
	VotingPeriodHours uint64
	Beneficiary       sdk.Address
	ShareBps          uint64
	BadgeContract     string
	StakeAsset        sdk.Asset
}

// Totals are the running fund counters the conservation invariant is checked
// against: deposited == active + withdrawn + donated + stranded.
type Totals struct {
	Staked    Amount
	Deposited Amount
	Withdrawn Amount
	Donated   Amount
	Stranded  Amount
}
