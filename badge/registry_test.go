package main

import (
	"fmt"
	"testing"

	"goalvault/sdk"

	"github.com/stretchr/testify/require"
)

const (
	testLedger = "contract:goalledger"
	testHolder = "hive:someone"
)

// resetRegistry wipes host state and binds the registry to the test ledger.
func resetRegistry(t *testing.T) {
	t.Helper()
	sdk.ResetHost()
	sdk.SetHostSender(sdk.Address("hive:deployer"))
	res := BadgeInit(strptr(testLedger))
	require.Contains(t, *res, testLedger)
}

// asLedger makes the next call look like a cross-contract call from the ledger.
func asLedger() {
	sdk.SetHostSender(sdk.Address(testHolder))
	sdk.SetHostCaller(sdk.Address(testLedger))
}

// mintBadge mints through the ledger caller and returns the badge id.
func mintBadge(t *testing.T, goalID uint64, category uint64, streak uint64, holder string) uint64 {
	t.Helper()
	asLedger()
	payload := fmt.Sprintf("%d|%d|1700000000|%d|%s", goalID, category, streak, holder)
	res := BadgeMint(strptr(payload))
	return parseUintField(*res, "badge id")
}

func expectAbort(t *testing.T, fragment string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected abort containing %q", fragment)
		abortErr, ok := r.(*sdk.AbortError)
		require.True(t, ok, "expected AbortError, got %v", r)
		require.Contains(t, abortErr.Msg, fragment)
	}()
	fn()
}

// =============================================================================
// Minting
// =============================================================================

func TestBadgeMintByLedger(t *testing.T) {
	resetRegistry(t)

	id := mintBadge(t, 7, 1, 3, testHolder)
	require.Equal(t, uint64(1), id)

	b := loadBadge(id)
	require.Equal(t, sdk.Address(testHolder), b.Holder)
	require.Equal(t, uint64(7), b.GoalID)
	require.Equal(t, uint64(3), b.StreakAtMint)
	require.Equal(t, "learning", b.Category.String())
}

func TestBadgeMintRejectsOtherCallers(t *testing.T) {
	resetRegistry(t)

	sdk.SetHostSender(sdk.Address(testHolder))
	sdk.SetHostCaller(sdk.Address(testHolder))
	expectAbort(t, "only the ledger contract can mint", func() {
		BadgeMint(strptr(fmt.Sprintf("1|0|1700000000|1|%s", testHolder)))
	})

	sdk.SetHostCaller(sdk.Address("contract:impostor"))
	expectAbort(t, "only the ledger contract can mint", func() {
		BadgeMint(strptr(fmt.Sprintf("1|0|1700000000|1|%s", testHolder)))
	})
}

func TestBadgeCountsPerHolderAndCategory(t *testing.T) {
	resetRegistry(t)
	mintBadge(t, 1, 0, 1, testHolder)
	mintBadge(t, 2, 0, 2, testHolder)
	mintBadge(t, 3, 2, 3, testHolder)
	mintBadge(t, 4, 0, 1, "hive:other")

	res := BadgeCount(strptr(testHolder))
	require.Contains(t, *res, `"count":3`)

	res = BadgeCount(strptr(testHolder + "|0"))
	require.Contains(t, *res, `"count":2`)

	res = BadgeCount(strptr(testHolder + "|2"))
	require.Contains(t, *res, `"count":1`)

	res = BadgeCount(strptr("hive:nobody"))
	require.Contains(t, *res, `"count":0`)
}

// =============================================================================
// Burning
// =============================================================================

func TestBadgeBurnByHolder(t *testing.T) {
	resetRegistry(t)
	id := mintBadge(t, 1, 0, 1, testHolder)

	sdk.SetHostSender(sdk.Address(testHolder))
	sdk.SetHostCaller(sdk.Address(testHolder))
	res := BadgeBurn(strptr(UInt64ToString(id)))
	require.Equal(t, "badge burned", *res)

	expectAbort(t, "badge not found", func() {
		BadgeGet(strptr(UInt64ToString(id)))
	})

	count := BadgeCount(strptr(testHolder))
	require.Contains(t, *count, `"count":0`)
}

func TestBadgeBurnHolderOnly(t *testing.T) {
	resetRegistry(t)
	id := mintBadge(t, 1, 0, 1, testHolder)

	sdk.SetHostSender(sdk.Address("hive:stranger"))
	sdk.SetHostCaller(sdk.Address("hive:stranger"))
	expectAbort(t, "only the holder can burn", func() {
		BadgeBurn(strptr(UInt64ToString(id)))
	})
}

// IDs never come back after a burn, even when new badges are minted.
func TestBadgeIDsNotReused(t *testing.T) {
	resetRegistry(t)
	first := mintBadge(t, 1, 0, 1, testHolder)

	sdk.SetHostSender(sdk.Address(testHolder))
	sdk.SetHostCaller(sdk.Address(testHolder))
	BadgeBurn(strptr(UInt64ToString(first)))

	second := mintBadge(t, 2, 0, 1, testHolder)
	require.Equal(t, first+1, second)
}

// =============================================================================
// Transfer & Reads
// =============================================================================

func TestBadgeTransferSoulbound(t *testing.T) {
	resetRegistry(t)
	id := mintBadge(t, 1, 0, 1, testHolder)

	sdk.SetHostSender(sdk.Address(testHolder))
	expectAbort(t, "badges are soulbound", func() {
		BadgeTransfer(strptr(fmt.Sprintf("%d|hive:other", id)))
	})
}

func TestBadgeGetJSON(t *testing.T) {
	resetRegistry(t)
	id := mintBadge(t, 9, 4, 2, testHolder)

	res := BadgeGet(strptr(UInt64ToString(id)))
	require.Contains(t, *res, `"goal_id":9`)
	require.Contains(t, *res, `"category":"community"`)
	require.Contains(t, *res, `"streak_at_mint":2`)
	require.Contains(t, *res, fmt.Sprintf(`"holder":"%s"`, testHolder))
}

func TestBadgeInitRequiresContractAddress(t *testing.T) {
	sdk.ResetHost()
	expectAbort(t, "ledger id must be a contract address", func() {
		BadgeInit(strptr("hive:notacontract"))
	})
}

func TestBadgeMintBeforeInit(t *testing.T) {
	sdk.ResetHost()
	sdk.SetHostCaller(sdk.Address(testLedger))
	expectAbort(t, "registry not initialized", func() {
		BadgeMint(strptr(fmt.Sprintf("1|0|1700000000|1|%s", testHolder)))
	})
}
