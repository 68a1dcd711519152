package goal

import "goalvault/sdk"

// Storage key prefixes for the ledger contract. The off-chain verifier builds
// the same keys to read state through the contract's query surface.
const (
	// KGoal stores serialized Goal blobs.
	KGoal byte = 0x01
	// KVoteTally stores the running VoteTally for mid-band goals.
	KVoteTally byte = 0x02
	// KVoteReceipt flags one vote per identity per goal.
	KVoteReceipt byte = 0x03
	// KStreak houses encoded Streak structs per owner.
	KStreak byte = 0x04
	// KOwnerGoals indexes goal ids per owner for listing.
	KOwnerGoals byte = 0x05
	// KOracleNonce tracks the last admitted signature nonce per goal.
	KOracleNonce byte = 0x06
)

// String keys for singletons and counters, kept human readable like the
// decimal count keys.
const (
	KeyConfig    = "cfg"
	KeyGoalCount = "count:g"
	KeyTotals    = "totals"
)

// PackU64LEInline sprinkles a uint64 into dst in little-endian order so keys stay compact.
func PackU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// PackU64LE appends the encoded number to dst and returns the new slice.
func PackU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// GoalKey builds a storage key string for a goal by ID.
func GoalKey(id uint64) string {
	var buf [9]byte
	buf[0] = KGoal
	PackU64LEInline(id, buf[1:])
	return string(buf[:])
}

// VoteTallyKey uses prefix 0x02 so tallies sit next to their goal but not collide.
func VoteTallyKey(id uint64) string {
	var buf [9]byte
	buf[0] = KVoteTally
	PackU64LEInline(id, buf[1:])
	return string(buf[:])
}

// VoteReceiptKey mixes goal id plus voter bytes to avoid nested maps in host storage.
func VoteReceiptKey(id uint64, voter sdk.Address) string {
	voterStr := voter.String()
	buf := make([]byte, 0, 1+8+len(voterStr))
	buf = append(buf, KVoteReceipt)
	buf = PackU64LE(id, buf)
	buf = append(buf, voterStr...)
	return string(buf)
}

// StreakKey keeps one streak record per owner under 0x04.
func StreakKey(owner sdk.Address) string {
	ownerStr := owner.String()
	buf := make([]byte, 0, 1+len(ownerStr))
	buf = append(buf, KStreak)
	buf = append(buf, ownerStr...)
	return string(buf)
}

// OwnerGoalsKey holds the goal id list for an owner under 0x05.
func OwnerGoalsKey(owner sdk.Address) string {
	ownerStr := owner.String()
	buf := make([]byte, 0, 1+len(ownerStr))
	buf = append(buf, KOwnerGoals)
	buf = append(buf, ownerStr...)
	return string(buf)
}

// OracleNonceKey tracks signature replay protection per goal under 0x06.
func OracleNonceKey(id uint64) string {
	var buf [9]byte
	buf[0] = KOracleNonce
	PackU64LEInline(id, buf[1:])
	return string(buf[:])
}
