package main

import (
	"fmt"

	"goalvault/goal"
	"goalvault/sdk"
)

// mintBadge asks the badge registry to mint for a completed goal. The call is
// best-effort: a missing or broken registry must never undo a resolution, so
// any panic from the cross-contract call is swallowed and logged. The badge
// event only fires when the registry actually answered.
func mintBadge(g *goal.Goal, cfg *goal.LedgerConfig, streakAtMint uint64) {
	if cfg.BadgeContract == "" {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			emitBadgeMintFailed(g.ID)
		}
	}()

	payload := fmt.Sprintf("%d|%d|%d|%d|%s",
		g.ID,
		uint8(g.Category),
		nowUnix(),
		streakAtMint,
		g.Owner.String(),
	)
	sdk.ContractCall(cfg.BadgeContract, "badge_mint", payload, nil)

	emitBadgeMinted(g.ID, g.Owner.String(), g.Category)
}
