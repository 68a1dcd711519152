//go:build wasm

package main

// Thin wasm export shims. The implementations live in plain files so the
// package also compiles for host targets.

//go:wasmexport badge_init
func badgeInitExport(payload *string) *string { return BadgeInit(payload) }

//go:wasmexport badge_mint
func badgeMintExport(payload *string) *string { return BadgeMint(payload) }

//go:wasmexport badge_burn
func badgeBurnExport(payload *string) *string { return BadgeBurn(payload) }

//go:wasmexport badge_transfer
func badgeTransferExport(payload *string) *string { return BadgeTransfer(payload) }

//go:wasmexport badge_get
func badgeGetExport(payload *string) *string { return BadgeGet(payload) }

//go:wasmexport badge_count
func badgeCountExport(payload *string) *string { return BadgeCount(payload) }
