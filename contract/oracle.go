package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"goalvault/goal"
	"goalvault/sdk"
)

// admitScore enforces oracle admission for a verdict. In caller mode the
// sender must be the registered oracle identity. In signature mode anyone may
// relay the verdict as long as it carries a valid ed25519 signature by the
// oracle key over `goalId|score|nonce` and the nonce strictly increases per
// goal, which kills replays.
func admitScore(cfg *goal.LedgerConfig, goalID uint64, score uint8, nonce uint64, sig []byte) {
	switch cfg.OracleMode {
	case goal.OracleModeCaller:
		if getSenderAddress() != cfg.Oracle {
			sdk.Abort("only the oracle can score goals")
		}
	case goal.OracleModeSignature:
		if len(sig) != ed25519.SignatureSize {
			sdk.Abort("oracle signature required")
		}
		if nonce <= lastOracleNonce(goalID) {
			sdk.Abort("stale oracle nonce")
		}
		msg := scoreMessage(goalID, score, nonce)
		if !ed25519.Verify(ed25519.PublicKey(cfg.OraclePubKey), msg, sig) {
			sdk.Abort("invalid oracle signature")
		}
		setOracleNonce(goalID, nonce)
	default:
		sdk.Abort("unknown oracle mode")
	}
}

// scoreMessage is the canonical byte string the oracle signs. Both sides must
// build it identically, so keep it dumb.
func scoreMessage(goalID uint64, score uint8, nonce uint64) []byte {
	return []byte(fmt.Sprintf("%d|%d|%d", goalID, score, nonce))
}

// oracleIdentity names the admitting oracle for event lines: the registered
// address in caller mode, the hex public key in signature mode.
func oracleIdentity(cfg *goal.LedgerConfig) string {
	if cfg.OracleMode == goal.OracleModeSignature {
		return hex.EncodeToString(cfg.OraclePubKey)
	}
	return cfg.Oracle.String()
}
