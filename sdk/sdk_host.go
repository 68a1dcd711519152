//go:build !wasm

package sdk

// In-memory host used when the contract packages are compiled natively.
// It mirrors the wasm host surface closely enough for the contract logic to
// run unmodified: kv storage, env snapshot, draw/transfer accounting and
// cross-contract dispatch are all plain Go state that tests can inspect.

import (
	"fmt"
	"strconv"
)

// HostTransfer records one outgoing HiveTransfer for test assertions.
type HostTransfer struct {
	To     Address
	Amount int64
	Asset  Asset
}

// HostDraw records one HiveDraw pulled from the sender.
type HostDraw struct {
	Amount int64
	Asset  Asset
}

// AbortError is what Abort panics with on the host so tests can recover it.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string { return "abort: " + e.Msg }

type hostState struct {
	kv        map[string]string
	env       Env
	logs      []string
	transfers []HostTransfer
	draws     []HostDraw
	balances  map[string]int64

	transferFails bool
	drawFails     bool
	callHandler   func(contractId, method, payload string, options *ContractCallOptions) *string
}

var host = newHostState()

func newHostState() *hostState {
	return &hostState{
		kv:       map[string]string{},
		balances: map[string]int64{},
		env: Env{
			ContractId: "contract:goalvault",
			TxId:       "tx-0",
			Timestamp:  "1700000000",
			Sender:     Sender{Address: Address("hive:someone")},
			Caller:     Caller{Address: Address("hive:someone")},
		},
	}
}

// ResetHost wipes all host state between tests.
func ResetHost() {
	host = newHostState()
}

// SetHostSender sets both sender and caller to the same identity.
func SetHostSender(addr Address) {
	host.env.Sender = Sender{Address: addr}
	host.env.Caller = Caller{Address: addr}
}

// SetHostCaller overrides only the caller, for simulating cross-contract entry.
func SetHostCaller(addr Address) {
	host.env.Caller = Caller{Address: addr}
}

// SetHostTimestamp fixes block time as unix seconds.
func SetHostTimestamp(unix int64) {
	host.env.Timestamp = strconv.FormatInt(unix, 10)
}

// SetHostTxID switches the tx id, which also invalidates per-tx env caches upstream.
func SetHostTxID(id string) {
	host.env.TxId = id
}

// SetHostIntents attaches intents (e.g. transfer.allow) to the current env.
func SetHostIntents(intents []Intent) {
	host.env.Intents = intents
}

// SetHostBalance seeds a hive balance for GetBalance queries.
func SetHostBalance(addr Address, asset Asset, amount int64) {
	host.balances[addr.String()+"/"+asset.String()] = amount
}

// SetHostTransferFailure makes every HiveTransfer abort, to exercise
// best-effort payout paths.
func SetHostTransferFailure(fail bool) {
	host.transferFails = fail
}

// SetHostDrawFailure makes HiveDraw abort, simulating an unfunded allowance.
func SetHostDrawFailure(fail bool) {
	host.drawFails = fail
}

// SetHostContractCallHandler routes ContractCall on the host. A nil handler
// makes every cross-contract call abort.
func SetHostContractCallHandler(h func(contractId, method, payload string, options *ContractCallOptions) *string) {
	host.callHandler = h
}

// HostTransfers returns the outgoing transfer journal.
func HostTransfers() []HostTransfer {
	return host.transfers
}

// HostDraws returns the incoming draw journal.
func HostDraws() []HostDraw {
	return host.draws
}

// HostLogs returns everything written through Log.
func HostLogs() []string {
	return host.logs
}

// HostStateGet peeks raw kv storage without going through the contract.
func HostStateGet(key string) *string {
	if v, ok := host.kv[key]; ok {
		return &v
	}
	return nil
}

// --- host implementations of the wasm surface ---

// Log appends to the in-memory journal instead of the wasm console.
func Log(s string) {
	host.logs = append(host.logs, s)
}

// Abort panics with an AbortError so tests can recover and assert the message.
func Abort(msg string) {
	panic(&AbortError{Msg: msg})
}

// Revert behaves like Abort on the host; the symbol is folded into the message.
func Revert(msg string, symbol string) {
	panic(&AbortError{Msg: symbol + ": " + msg})
}

func StateSetObject(key string, value string) {
	host.kv[key] = value
}

func StateGetObject(key string) *string {
	if v, ok := host.kv[key]; ok {
		return &v
	}
	return nil
}

func StateDeleteObject(key string) {
	delete(host.kv, key)
}

func GetEnv() Env {
	return host.env
}

func GetEnvKey(key string) *string {
	var val string
	switch key {
	case "contract.id":
		val = host.env.ContractId
	case "tx.id":
		val = host.env.TxId
	case "block.timestamp":
		val = host.env.Timestamp
	case "block.id":
		val = host.env.BlockId
	case "block.height":
		val = strconv.FormatUint(host.env.BlockHeight, 10)
	default:
		return nil
	}
	return &val
}

func GetBalance(address Address, asset Asset) int64 {
	return host.balances[address.String()+"/"+asset.String()]
}

func HiveDraw(amount int64, asset Asset) {
	if host.drawFails {
		Abort("draw failed")
	}
	host.draws = append(host.draws, HostDraw{Amount: amount, Asset: asset})
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	if host.transferFails {
		Abort("transfer failed")
	}
	host.transfers = append(host.transfers, HostTransfer{To: to, Amount: amount, Asset: asset})
}

func HiveWithdraw(to Address, amount int64, asset Asset) {
	if host.transferFails {
		Abort("withdraw failed")
	}
	host.transfers = append(host.transfers, HostTransfer{To: to, Amount: amount, Asset: asset})
}

func ContractStateGet(contractId string, key string) *string {
	return StateGetObject(fmt.Sprintf("%s/%s", contractId, key))
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	if host.callHandler == nil {
		Abort("no contract call handler")
	}
	return host.callHandler(contractId, method, payload, options)
}
