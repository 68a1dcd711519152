package verifier

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Signer builds score_set payloads. With a key it produces the signature
// admission form `goalId|score|nonce|sig`; without one it produces the plain
// caller form and the node wallet's oracle account does the authorizing.
type Signer struct {
	key ed25519.PrivateKey

	mu        sync.Mutex
	lastNonce uint64
}

// NewSigner builds a Signer from a hex ed25519 seed. An empty seed selects
// caller mode.
func NewSigner(seedHex string) (*Signer, error) {
	if seedHex == "" {
		return &Signer{}, nil
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("decode oracle seed: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("oracle seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return &Signer{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// PublicKeyHex returns the verifying key the ledger must be configured with,
// or empty in caller mode.
func (s *Signer) PublicKeyHex() string {
	if s.key == nil {
		return ""
	}
	return hex.EncodeToString(s.key.Public().(ed25519.PublicKey))
}

// ScorePayload renders the score_set payload for a goal.
func (s *Signer) ScorePayload(goalID uint64, score uint8) string {
	if s.key == nil {
		return fmt.Sprintf("%d|%d", goalID, score)
	}
	nonce := s.nextNonce()
	msg := []byte(fmt.Sprintf("%d|%d|%d", goalID, score, nonce))
	sig := ed25519.Sign(s.key, msg)
	return fmt.Sprintf("%d|%d|%d|%s", goalID, score, nonce, hex.EncodeToString(sig))
}

// nextNonce returns a strictly increasing nonce. Wall-clock milliseconds are
// enough since the ledger only requires per-goal monotonicity, but the guard
// protects against two payloads inside the same millisecond.
func (s *Signer) nextNonce() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	nonce := uint64(time.Now().UnixMilli())
	if nonce <= s.lastNonce {
		nonce = s.lastNonce + 1
	}
	s.lastNonce = nonce
	return nonce
}
