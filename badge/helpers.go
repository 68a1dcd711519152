package main

import (
	"fmt"
	"strconv"
	"strings"

	"goalvault/sdk"
)

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return sdk.GetEnv().Sender.Address
}

// getCallerAddress returns the immediate caller, which is the ledger contract
// on mint calls.
func getCallerAddress() sdk.Address {
	return sdk.GetEnv().Caller.Address
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// parseUintField aborts with a friendly field name on parse errors.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseInt64Field handles signed unix timestamps.
func parseInt64Field(val string, field string) int64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// getCount reads the string counter under the key and defaults to zero.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// UInt64ToString turns an id back into decimal text for responses and logs.
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// strptr is a convenience helper for the *string export surface.
func strptr(s string) *string { return &s }
