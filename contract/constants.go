package main

import "goalvault/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// validAssets lists the supported asset types for staking.
var validAssets = []string{
	sdk.AssetHbd.String(),
	sdk.AssetHive.String(),
}

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxDescriptionLength limits the size of goal descriptions.
	MaxDescriptionLength = 500
	// MaxProofRefLength limits the size of submitted proof references.
	MaxProofRefLength = 500
	// MaxShareBps caps the beneficiary share at 100%.
	MaxShareBps = 10000
)

// -----------------------------------------------------------------------------
// Timing
// -----------------------------------------------------------------------------

const (
	// ProofGraceSecs is how long after the deadline proofs are still accepted.
	ProofGraceSecs = int64(86400)
	// SecsPerHour converts configured voting windows into deadlines.
	SecsPerHour = int64(3600)
)

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	// FallbackVotingPeriodHours is seven days, applied when init omits one.
	FallbackVotingPeriodHours = uint64(168)
	FallbackShareBps          = uint64(5000)
)
