package main

import (
	"encoding/json"
	"strings"

	"goalvault/goal"
	"goalvault/sdk"
)

// -----------------------------------------------------------------------------
// Minting
// -----------------------------------------------------------------------------

// BadgeMint creates a badge for a completed goal. Only the bound ledger
// contract may call it; the holder never mints their own.
// Payload: goalId|category|completedAt|streakAtMint|owner
//
// Exported as badge_mint.
func BadgeMint(payload *string) *string {
	requireInitialized()
	if getCallerAddress() != boundLedger() {
		sdk.Abort("only the ledger contract can mint")
	}

	raw := unwrapPayload(payload, "mint payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 5 {
		sdk.Abort("mint payload requires goalId|category|completedAt|streak|owner")
	}
	catNum := parseUintField(parts[1], "category")
	if catNum >= goal.CategoryCount {
		sdk.Abort("invalid category")
	}
	holder := sdk.Address(strings.TrimSpace(parts[4]))
	if !holder.IsValid() {
		sdk.Abort("invalid holder address")
	}

	id := getCount(keyBadgeCount) + 1
	setCount(keyBadgeCount, id)

	b := &Badge{
		ID:           id,
		Holder:       holder,
		GoalID:       parseUintField(parts[0], "goal id"),
		Category:     goal.Category(catNum),
		CompletedAt:  parseInt64Field(parts[2], "completed at"),
		StreakAtMint: parseUintField(parts[3], "streak"),
	}
	saveBadge(b)

	setCount(holderTotalKey(holder), getCount(holderTotalKey(holder))+1)
	catKey := holderCategoryKey(holder, b.Category)
	setCount(catKey, getCount(catKey)+1)

	emitBadgeMintedEvent(id, holder.String(), b.Category)

	return strptr(UInt64ToString(id))
}

// -----------------------------------------------------------------------------
// Burning
// -----------------------------------------------------------------------------

// BadgeBurn lets a holder destroy their own badge. Counters drop but the id
// is gone for good.
// Payload: badgeId
//
// Exported as badge_burn.
func BadgeBurn(payload *string) *string {
	requireInitialized()
	raw := unwrapPayload(payload, "burn payload missing")
	id := parseUintField(raw, "badge id")
	b := loadBadge(id)

	if getSenderAddress() != b.Holder {
		sdk.Abort("only the holder can burn")
	}

	deleteBadge(id)

	if total := getCount(holderTotalKey(b.Holder)); total > 0 {
		setCount(holderTotalKey(b.Holder), total-1)
	}
	catKey := holderCategoryKey(b.Holder, b.Category)
	if catCount := getCount(catKey); catCount > 0 {
		setCount(catKey, catCount-1)
	}

	emitBadgeBurnedEvent(id, b.Holder.String())

	return strptr("badge burned")
}

// -----------------------------------------------------------------------------
// Transfer (always rejected)
// -----------------------------------------------------------------------------

// BadgeTransfer exists so wallets get a clear error instead of a missing
// method: badges are bound to the identity that earned them.
//
// Exported as badge_transfer.
func BadgeTransfer(payload *string) *string {
	sdk.Abort("badges are soulbound")
	return nil
}

// -----------------------------------------------------------------------------
// Reads
// -----------------------------------------------------------------------------

// badgeView is the JSON shape returned by badge_get.
type badgeView struct {
	ID           uint64 `json:"id"`
	Holder       string `json:"holder"`
	GoalID       uint64 `json:"goal_id"`
	Category     string `json:"category"`
	CompletedAt  int64  `json:"completed_at"`
	StreakAtMint uint64 `json:"streak_at_mint"`
}

// countView is the JSON shape returned by badge_count.
type countView struct {
	Holder string `json:"holder"`
	Count  uint64 `json:"count"`
}

// BadgeGet returns one badge as JSON.
// Payload: badgeId
//
// Exported as badge_get.
func BadgeGet(payload *string) *string {
	requireInitialized()
	raw := unwrapPayload(payload, "query payload missing")
	b := loadBadge(parseUintField(raw, "badge id"))

	view := badgeView{
		ID:           b.ID,
		Holder:       b.Holder.String(),
		GoalID:       b.GoalID,
		Category:     b.Category.String(),
		CompletedAt:  b.CompletedAt,
		StreakAtMint: b.StreakAtMint,
	}
	out, err := json.Marshal(view)
	if err != nil {
		sdk.Abort("failed to marshal badge")
	}
	return strptr(string(out))
}

// BadgeCount returns live badge counts for a holder, either total or for one
// category.
// Payload: holder or holder|category
//
// Exported as badge_count.
func BadgeCount(payload *string) *string {
	requireInitialized()
	raw := unwrapPayload(payload, "query payload missing")
	parts := strings.Split(raw, "|")
	holder := sdk.Address(strings.TrimSpace(parts[0]))
	if !holder.IsValid() {
		sdk.Abort("invalid holder address")
	}

	var count uint64
	if len(parts) >= 2 && strings.TrimSpace(parts[1]) != "" {
		catNum := parseUintField(parts[1], "category")
		if catNum >= goal.CategoryCount {
			sdk.Abort("invalid category")
		}
		count = getCount(holderCategoryKey(holder, goal.Category(catNum)))
	} else {
		count = getCount(holderTotalKey(holder))
	}

	out, err := json.Marshal(countView{Holder: holder.String(), Count: count})
	if err != nil {
		sdk.Abort("failed to marshal count")
	}
	return strptr(string(out))
}
