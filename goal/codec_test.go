package goal

import (
	"testing"

	"goalvault/sdk"

	"github.com/stretchr/testify/require"
)

func TestGoalCodecRoundTrip(t *testing.T) {
	in := &Goal{
		ID:          42,
		Owner:       sdk.Address("hive:someone"),
		Stake:       FloatToAmount(1.5),
		Deadline:    1_700_086_400,
		CreatedAt:   1_700_000_000,
		Score:       88,
		Scored:      true,
		Status:      StatusCompleted,
		Category:    CategoryFitness,
		Description: "run a marathon | sub 4h",
		ProofRef:    "bafybeigdyrzt5example",
		Tx:          "tx-abc123",
	}

	out, err := DecodeGoal(EncodeGoal(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestGoalCodecZeroValue(t *testing.T) {
	out, err := DecodeGoal(EncodeGoal(&Goal{}))
	require.NoError(t, err)
	require.Equal(t, &Goal{}, out)
}

func TestLedgerConfigCodecRoundTrip(t *testing.T) {
	in := &LedgerConfig{
		Admin:             sdk.Address("hive:admin"),
		Oracle:            sdk.Address("hive:oracle"),
		OracleMode:        OracleModeSignature,
		OraclePubKey:      []byte{0x01, 0x02, 0x03, 0x04},
		MinStake:          FloatToAmount(0.1),
		VotingPeriodHours: 72,
		Beneficiary:       sdk.Address("hive:charity"),
		ShareBps:          5000,
		BadgeContract:     "contract:badges",
		StakeAsset:        sdk.AssetHive,
	}

	out, err := DecodeLedgerConfig(EncodeLedgerConfig(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDecodeGoalTruncated(t *testing.T) {
	raw := EncodeGoal(&Goal{ID: 1, Owner: sdk.Address("hive:someone"), Description: "x"})
	for _, cut := range []int{0, 1, len(raw) / 2, len(raw) - 1} {
		_, err := DecodeGoal(raw[:cut])
		require.Error(t, err, "truncated at %d bytes", cut)
	}
}

func TestVoteTallyCodecRoundTrip(t *testing.T) {
	in := &VoteTally{
		GoalID:       7,
		YesCount:     12,
		NoCount:      9,
		VotingEndsAt: 1_700_259_200,
		Resolved:     true,
		Outcome:      true,
	}

	out, err := DecodeVoteTally(EncodeVoteTally(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}
