package main

import (
	"goalvault/goal"
	"goalvault/sdk"
)

// Storage key prefixes, registry scoped.
const (
	// kBadge stores serialized Badge blobs by id.
	kBadge byte = 0x01
	// kHolderTotal counts live badges per holder.
	kHolderTotal byte = 0x02
	// kHolderCategory counts live badges per holder+category.
	kHolderCategory byte = 0x03
)

const (
	keyLedger     = "cfg"
	keyBadgeCount = "count:badge"
)

// badgeKey builds a storage key string for a badge by ID.
func badgeKey(id uint64) string {
	var buf [9]byte
	buf[0] = kBadge
	goal.PackU64LEInline(id, buf[1:])
	return string(buf[:])
}

// holderTotalKey counts all live badges held by one identity.
func holderTotalKey(holder sdk.Address) string {
	holderStr := holder.String()
	buf := make([]byte, 0, 1+len(holderStr))
	buf = append(buf, kHolderTotal)
	buf = append(buf, holderStr...)
	return string(buf)
}

// holderCategoryKey mirrors the total key but per category.
func holderCategoryKey(holder sdk.Address, cat goal.Category) string {
	holderStr := holder.String()
	buf := make([]byte, 0, 2+len(holderStr))
	buf = append(buf, kHolderCategory, byte(cat))
	buf = append(buf, holderStr...)
	return string(buf)
}

// isRegistryInitialized returns true once a ledger contract is bound.
func isRegistryInitialized() bool {
	ptr := sdk.StateGetObject(keyLedger)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if no ledger contract is bound yet.
func requireInitialized() {
	if !isRegistryInitialized() {
		sdk.Abort("registry not initialized")
	}
}

// boundLedger returns the only contract allowed to mint.
func boundLedger() sdk.Address {
	ptr := sdk.StateGetObject(keyLedger)
	if ptr == nil || *ptr == "" {
		sdk.Abort("registry not initialized")
	}
	return sdk.Address(*ptr)
}

// loadBadge decodes a badge record and aborts loudly when missing or burned.
func loadBadge(id uint64) *Badge {
	ptr := sdk.StateGetObject(badgeKey(id))
	if ptr == nil || *ptr == "" {
		sdk.Abort("badge not found")
	}
	b, err := DecodeBadge([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode badge")
	}
	return b
}

// saveBadge writes the encoded badge blob under its id key.
func saveBadge(b *Badge) {
	sdk.StateSetObject(badgeKey(b.ID), string(EncodeBadge(b)))
}

// deleteBadge removes the record entirely; the id is never reused because the
// mint counter only grows.
func deleteBadge(id uint64) {
	sdk.StateDeleteObject(badgeKey(id))
}
