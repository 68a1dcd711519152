//go:build wasm

package main

// Thin wasm export shims. The implementations live in plain files so the
// package also compiles for host targets.

//go:wasmexport contract_init
func contractInitExport(payload *string) *string { return ContractInit(payload) }

//go:wasmexport goal_create
func goalCreateExport(payload *string) *string { return GoalCreate(payload) }

//go:wasmexport proof_submit
func proofSubmitExport(payload *string) *string { return ProofSubmit(payload) }

//go:wasmexport score_set
func scoreSetExport(payload *string) *string { return ScoreSet(payload) }

//go:wasmexport verdict_set
func verdictSetExport(payload *string) *string { return VerdictSet(payload) }

//go:wasmexport goal_vote
func goalVoteExport(payload *string) *string { return GoalVote(payload) }

//go:wasmexport vote_resolve
func voteResolveExport(payload *string) *string { return VoteResolve(payload) }

//go:wasmexport stake_withdraw
func stakeWithdrawExport(payload *string) *string { return StakeWithdraw(payload) }

//go:wasmexport config_update
func configUpdateExport(payload *string) *string { return ConfigUpdate(payload) }

//go:wasmexport goal_get
func goalGetExport(payload *string) *string { return GoalGet(payload) }

//go:wasmexport streak_get
func streakGetExport(payload *string) *string { return StreakGet(payload) }

//go:wasmexport totals_get
func totalsGetExport(payload *string) *string { return TotalsGet(payload) }
