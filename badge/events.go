package main

import (
	"fmt"

	"goalvault/goal"
	"goalvault/sdk"
)

// emitRegistryInitEvent notes which ledger got mint rights.
func emitRegistryInitEvent(ledger string) {
	sdk.Log(fmt.Sprintf(
		"bi|ledger:%s",
		ledger,
	))
}

// emitBadgeMintedEvent gives indexers a terse line per minted badge.
func emitBadgeMintedEvent(badgeID uint64, holder string, category goal.Category) {
	sdk.Log(fmt.Sprintf(
		"bm|id:%d|to:%s|cat:%s",
		badgeID,
		holder,
		category.String(),
	))
}

// emitBadgeBurnedEvent mirrors the mint line for burns.
func emitBadgeBurnedEvent(badgeID uint64, holder string) {
	sdk.Log(fmt.Sprintf(
		"bb|id:%d|by:%s",
		badgeID,
		holder,
	))
}
