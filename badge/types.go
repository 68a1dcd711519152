package main

import (
	"encoding/binary"
	"errors"

	"goalvault/goal"
	"goalvault/sdk"
)

// Badge is one immutable completion record. Everything except the burn flag
// on the holder side is frozen at mint time.
type Badge struct {
	ID           uint64
	Holder       sdk.Address
	GoalID       uint64
	Category     goal.Category
	CompletedAt  int64
	StreakAtMint uint64
}

// EncodeBadge packs the badge into deterministic big-endian bytes.
func EncodeBadge(b *Badge) []byte {
	holder := b.Holder.String()
	buf := make([]byte, 0, 8+8+1+8+8+2+len(holder))
	buf = binary.BigEndian.AppendUint64(buf, b.ID)
	buf = binary.BigEndian.AppendUint64(buf, b.GoalID)
	buf = append(buf, byte(b.Category))
	buf = binary.BigEndian.AppendUint64(buf, uint64(b.CompletedAt))
	buf = binary.BigEndian.AppendUint64(buf, b.StreakAtMint)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(holder)))
	buf = append(buf, holder...)
	return buf
}

// DecodeBadge reverses EncodeBadge.
func DecodeBadge(data []byte) (*Badge, error) {
	if len(data) < 35 {
		return nil, errors.New("badge blob too short")
	}
	b := &Badge{
		ID:           binary.BigEndian.Uint64(data[0:8]),
		GoalID:       binary.BigEndian.Uint64(data[8:16]),
		Category:     goal.Category(data[16]),
		CompletedAt:  int64(binary.BigEndian.Uint64(data[17:25])),
		StreakAtMint: binary.BigEndian.Uint64(data[25:33]),
	}
	holderLen := int(binary.BigEndian.Uint16(data[33:35]))
	if len(data) < 35+holderLen {
		return nil, errors.New("badge blob truncated")
	}
	b.Holder = sdk.Address(data[35 : 35+holderLen])
	return b, nil
}
