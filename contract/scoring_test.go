package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"testing"

	"goalvault/goal"
	"goalvault/sdk"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// Score Thresholds
// =============================================================================

func TestScoreThresholds(t *testing.T) {
	cases := []struct {
		score uint8
		want  goal.Status
	}{
		{100, goal.StatusCompleted},
		{75, goal.StatusCompleted},
		{74, goal.StatusDisputed},
		{40, goal.StatusDisputed},
		{39, goal.StatusFailed},
		{0, goal.StatusFailed},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("score_%d", tc.score), func(t *testing.T) {
			resetLedger(t)
			id := scoredGoal(t, testOwner, tc.score)
			g := loadGoal(id)
			require.Equal(t, tc.want, g.Status)
			require.True(t, g.Scored)
			require.Equal(t, tc.score, g.Score)
			requireConservation(t)
		})
	}
}

func TestScoreSetReturnsStatus(t *testing.T) {
	resetLedger(t)
	id := createGoal(t, testOwner, "1.0", baseTime+1000)
	submitProof(t, testOwner, id, "bafyproof")
	require.Equal(t, "completed", scoreAs(t, testOracle, id, 90))
}

func TestScoreSetRequiresOracle(t *testing.T) {
	resetLedger(t)
	id := createGoal(t, testOwner, "1.0", baseTime+1000)
	submitProof(t, testOwner, id, "bafyproof")

	asUser("hive:stranger")
	expectAbort(t, "only the oracle can score goals", func() {
		ScoreSet(strptr(fmt.Sprintf("%d|90", id)))
	})
}

func TestVerdictFailsUnprovenGoal(t *testing.T) {
	resetLedger(t)
	id := createGoal(t, testOwner, "1.0", baseTime+1000)

	// The owner never submits proof; the oracle can still fail the goal.
	asUser(testOracle)
	res := VerdictSet(strptr(fmt.Sprintf("%d|false", id)))

	require.Equal(t, "failed", *res)
	require.Equal(t, goal.StatusFailed, loadGoal(id).Status)

	transfers := sdk.HostTransfers()
	require.Len(t, transfers, 1)
	require.Equal(t, sdk.Address(testCharity), transfers[0].To)
	require.Equal(t, int64(500), transfers[0].Amount)
	require.Empty(t, lastLogWithPrefix("bm"))
	requireConservation(t)
}

func TestScoreSetAcceptsUnprovenGoal(t *testing.T) {
	resetLedger(t)
	id := createGoal(t, testOwner, "1.0", baseTime+1000)

	require.Equal(t, "failed", scoreAs(t, testOracle, id, 5))
}

func TestScoreSetRejectsDoubleScore(t *testing.T) {
	resetLedger(t)
	id := scoredGoal(t, testOwner, 90)

	asUser(testOracle)
	expectAbort(t, "goal already resolved", func() {
		ScoreSet(strptr(fmt.Sprintf("%d|10", id)))
	})
}

func TestScoreSetRejectsDisputedGoal(t *testing.T) {
	resetLedger(t)
	id := scoredGoal(t, testOwner, 50)

	asUser(testOracle)
	expectAbort(t, "goal awaiting vote resolution", func() {
		ScoreSet(strptr(fmt.Sprintf("%d|90", id)))
	})
}

func TestScoreSetRejectsOverMax(t *testing.T) {
	resetLedger(t)
	id := createGoal(t, testOwner, "1.0", baseTime+1000)
	submitProof(t, testOwner, id, "bafyproof")

	asUser(testOracle)
	expectAbort(t, "score exceeds 100", func() {
		ScoreSet(strptr(fmt.Sprintf("%d|101", id)))
	})
}

func TestVerifiedEventOnEveryBranch(t *testing.T) {
	cases := []struct {
		score  uint8
		passed string
	}{
		{90, "true"},
		{55, "false"},
		{10, "false"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("score_%d", tc.score), func(t *testing.T) {
			resetLedger(t)
			id := scoredGoal(t, testOwner, tc.score)
			want := fmt.Sprintf("vf|id:%d|by:%s|sc:%d|p:%s", id, testOracle, tc.score, tc.passed)
			require.Equal(t, want, lastLogWithPrefix("vf"))
		})
	}
}

// =============================================================================
// Boolean Verdicts
// =============================================================================

func TestVerdictSetMapping(t *testing.T) {
	resetLedger(t)

	passID := createGoal(t, testOwner, "1.0", baseTime+1000)
	submitProof(t, testOwner, passID, "bafypass")
	asUser(testOracle)
	res := VerdictSet(strptr(fmt.Sprintf("%d|true", passID)))
	require.Equal(t, "completed", *res)
	require.Equal(t, uint8(goal.ScoreMax), loadGoal(passID).Score)

	failID := createGoal(t, "hive:other", "1.0", baseTime+1000)
	submitProof(t, "hive:other", failID, "bafyfail")
	asUser(testOracle)
	res = VerdictSet(strptr(fmt.Sprintf("%d|false", failID)))
	require.Equal(t, "failed", *res)
	require.Equal(t, uint8(0), loadGoal(failID).Score)
	requireConservation(t)
}

// =============================================================================
// Streaks
// =============================================================================

func TestStreakGrowsAndResets(t *testing.T) {
	resetLedger(t)

	scoredGoal(t, testOwner, 90)
	scoredGoal(t, testOwner, 80)
	streak := loadStreak(sdk.Address(testOwner))
	require.Equal(t, uint64(2), streak.Current)
	require.Equal(t, uint64(2), streak.Highest)

	scoredGoal(t, testOwner, 10)
	streak = loadStreak(sdk.Address(testOwner))
	require.Equal(t, uint64(0), streak.Current)
	require.Equal(t, uint64(2), streak.Highest, "highest is a watermark, not the live count")

	scoredGoal(t, testOwner, 95)
	streak = loadStreak(sdk.Address(testOwner))
	require.Equal(t, uint64(1), streak.Current)
	require.Equal(t, uint64(2), streak.Highest)
}

// =============================================================================
// Badge Minting
// =============================================================================

func TestBadgeMintOnCompletion(t *testing.T) {
	resetLedger(t)

	var gotContract, gotMethod, gotPayload string
	sdk.SetHostContractCallHandler(func(contractID, method, payload string, _ *sdk.ContractCallOptions) *string {
		gotContract, gotMethod, gotPayload = contractID, method, payload
		return strptr("1")
	})

	id := scoredGoal(t, testOwner, 90)

	require.Equal(t, testBadges, gotContract)
	require.Equal(t, "badge_mint", gotMethod)
	require.Equal(t, fmt.Sprintf("%d|0|%d|1|%s", id, baseTime, testOwner), gotPayload)
	require.NotEmpty(t, lastLogWithPrefix("bm"))
	require.Empty(t, lastLogWithPrefix("bf"))
}

func TestBadgeMintFailureDoesNotBlockResolution(t *testing.T) {
	resetLedger(t)
	// No contract call handler registered, so the cross-contract call aborts.

	id := scoredGoal(t, testOwner, 90)

	g := loadGoal(id)
	require.Equal(t, goal.StatusCompleted, g.Status)
	require.Equal(t, uint64(1), loadStreak(sdk.Address(testOwner)).Current)
	require.NotEmpty(t, lastLogWithPrefix("bf"))
	require.Empty(t, lastLogWithPrefix("bm"))
}

// =============================================================================
// Donations
// =============================================================================

func TestFailedGoalDonatesShare(t *testing.T) {
	resetLedger(t)
	id := scoredGoal(t, testOwner, 10)

	transfers := sdk.HostTransfers()
	require.Len(t, transfers, 1)
	require.Equal(t, sdk.Address(testCharity), transfers[0].To)
	require.Equal(t, int64(500), transfers[0].Amount, "5000 bps of a 1.0 stake")

	totals := hostTotals(t)
	require.Equal(t, goal.Amount(0), totals.Staked)
	require.Equal(t, goal.FloatToAmount(0.5), totals.Donated)
	require.Equal(t, goal.FloatToAmount(0.5), totals.Stranded)
	requireConservation(t)

	require.Equal(t, goal.Amount(0), loadGoal(id).Stake)
	require.NotEmpty(t, lastLogWithPrefix("dn"))
}

func TestDonationFailureStrandsStake(t *testing.T) {
	resetLedger(t)
	sdk.SetHostTransferFailure(true)

	id := scoredGoal(t, testOwner, 10)

	require.Equal(t, goal.StatusFailed, loadGoal(id).Status)
	totals := hostTotals(t)
	require.Equal(t, goal.Amount(0), totals.Donated)
	require.Equal(t, goal.FloatToAmount(1.0), totals.Stranded)
	requireConservation(t)

	require.NotEmpty(t, lastLogWithPrefix("df"))
	require.Empty(t, lastLogWithPrefix("dn"))
}

// =============================================================================
// Signature Admission
// =============================================================================

// resetSignatureLedger re-initializes the contract in signature mode and
// returns the oracle signing key.
func resetSignatureLedger(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	sdk.ResetHost()
	txSeq = 0
	cachedEnvLoaded = false
	cachedTransfer = nil
	sdk.SetHostTimestamp(baseTime)

	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	key := ed25519.NewKeyFromSeed(seed)
	pub := hex.EncodeToString(key.Public().(ed25519.PublicKey))

	asUser(testAdmin)
	initPayload := fmt.Sprintf("0.1|72|signature|%s|%s|5000||hive", pub, testCharity)
	res := ContractInit(strptr(initPayload))
	require.Contains(t, *res, "signature")
	return key
}

func signedScorePayload(key ed25519.PrivateKey, goalID uint64, score uint8, nonce uint64) string {
	msg := []byte(fmt.Sprintf("%d|%d|%d", goalID, score, nonce))
	sig := ed25519.Sign(key, msg)
	return fmt.Sprintf("%d|%d|%d|%s", goalID, score, nonce, hex.EncodeToString(sig))
}

func TestSignatureModeAdmitsAnyRelayer(t *testing.T) {
	key := resetSignatureLedger(t)
	id := createGoal(t, testOwner, "1.0", baseTime+1000)
	submitProof(t, testOwner, id, "bafyproof")

	asUser("hive:relayer")
	res := ScoreSet(strptr(signedScorePayload(key, id, 90, 7)))
	require.Equal(t, "completed", *res)
	require.Equal(t, uint8(90), loadGoal(id).Score)
}

func TestSignatureModeRejectsBadSignature(t *testing.T) {
	key := resetSignatureLedger(t)
	id := createGoal(t, testOwner, "1.0", baseTime+1000)
	submitProof(t, testOwner, id, "bafyproof")

	// Sign for score 90 but submit score 80.
	msg := []byte(fmt.Sprintf("%d|%d|%d", id, 90, uint64(7)))
	sig := ed25519.Sign(key, msg)

	asUser("hive:relayer")
	expectAbort(t, "invalid oracle signature", func() {
		ScoreSet(strptr(fmt.Sprintf("%d|80|7|%s", id, hex.EncodeToString(sig))))
	})
}

func TestSignatureModeRejectsReplayedNonce(t *testing.T) {
	key := resetSignatureLedger(t)

	id := createGoal(t, testOwner, "1.0", baseTime+1000)
	submitProof(t, testOwner, id, "bafyproof")
	asUser("hive:relayer")
	ScoreSet(strptr(signedScorePayload(key, id, 90, 7)))
	require.Equal(t, uint64(7), lastOracleNonce(id))

	// Replaying the burned nonce fails at admission even with a valid signature.
	cfg := loadConfig()
	msg := []byte(fmt.Sprintf("%d|%d|%d", id, 90, uint64(7)))
	sig := ed25519.Sign(key, msg)
	expectAbort(t, "stale oracle nonce", func() {
		admitScore(cfg, id, 90, 7, sig)
	})

	// Nonces are tracked per goal, so a fresh goal may reuse nonce 7.
	id2 := createGoal(t, "hive:other", "1.0", baseTime+1000)
	submitProof(t, "hive:other", id2, "bafyproof")
	asUser("hive:relayer")
	res := ScoreSet(strptr(signedScorePayload(key, id2, 90, 7)))
	require.Equal(t, "completed", *res)
}

func TestSignatureModeRequiresSignature(t *testing.T) {
	resetSignatureLedger(t)
	id := createGoal(t, testOwner, "1.0", baseTime+1000)
	submitProof(t, testOwner, id, "bafyproof")

	asUser("hive:relayer")
	expectAbort(t, "oracle signature required", func() {
		ScoreSet(strptr(fmt.Sprintf("%d|90", id)))
	})
}
