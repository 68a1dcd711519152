package main

import (
	"goalvault/goal"
	"goalvault/sdk"
)

// InitArgs carries the decoded contract_init payload.
type InitArgs struct {
	MinStake          goal.Amount
	VotingPeriodHours uint64
	OracleMode        goal.OracleMode
	Oracle            sdk.Address
	OraclePubKey      []byte
	Beneficiary       sdk.Address
	ShareBps          uint64
	BadgeContract     string
	StakeAsset        sdk.Asset
}

// GoalCreateArgs carries the decoded goal_create payload.
type GoalCreateArgs struct {
	Deadline    int64
	Category    goal.Category
	Stake       goal.Amount
	Description string
}

// ProofSubmitArgs carries the decoded proof_submit payload.
type ProofSubmitArgs struct {
	GoalID   uint64
	ProofRef string
}

// ScoreSetArgs carries the decoded score_set payload. Nonce and Signature are
// only present in signature admission mode.
type ScoreSetArgs struct {
	GoalID    uint64
	Score     uint8
	Nonce     uint64
	Signature []byte
}

// VerdictSetArgs carries the decoded verdict_set payload. Nonce and Signature
// are only present in signature admission mode and cover the mapped score.
type VerdictSetArgs struct {
	GoalID    uint64
	Passed    bool
	Nonce     uint64
	Signature []byte
}

// VoteArgs carries the decoded goal_vote payload.
type VoteArgs struct {
	GoalID  uint64
	Approve bool
}

// ConfigUpdateArgs carries one field/value pair for config_update.
type ConfigUpdateArgs struct {
	Field string
	Value string
}
