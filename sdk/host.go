//go:build !wasm

package sdk

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"sync/atomic"
)

// Symbols raised by the host itself rather than by contract code.
const (
	SymbolAbort               = "abort"
	SymbolTransferFailure     = "transfer_failure"
	SymbolInsufficientBalance = "insufficient_balance"
	SymbolDrawLimit           = "draw_limit"
)

const defaultTimestamp = "2025-09-03T00:00:00"

// HostError is what an aborted or reverted call unwinds with.
type HostError struct {
	Msg    string
	Symbol string
}

func (e *HostError) Error() string {
	return e.Symbol + ": " + e.Msg
}

// Tx describes one contract invocation.
type Tx struct {
	ContractID  string
	Caller      Address
	Intents     []Intent
	TxID        string
	Timestamp   string
	BlockHeight uint64
}

// Result mirrors what the chain reports back for a call.
type Result struct {
	Success bool
	Ret     string
	Err     string
	Symbol  string
	Logs    []string
}

// Host runs contract code in-process with the same guarantees the chain gives:
// every Call either commits all of its state, balance and log effects or none of them.
// Calls are serialized; nested calls are rejected.
type Host struct {
	mu        sync.Mutex
	state     map[string]map[string]string
	balances  map[Address]map[Asset]int64
	rejecting map[Address]bool
	logs      []string
	txCount   uint64

	// per-call
	env   Env
	drawn map[Asset]int64

	// Verbose echoes contract logs to stdout like the chain runner does.
	Verbose bool
}

var (
	activeMu sync.Mutex
	active   *Host

	// tx ids stay unique across hosts so per-tx caches in contract code never collide.
	txSeq atomic.Uint64
)

// NewHost returns an empty host with no contracts, balances or logs.
func NewHost() *Host {
	return &Host{
		state:     map[string]map[string]string{},
		balances:  map[Address]map[Asset]int64{},
		rejecting: map[Address]bool{},
	}
}

// RegisterContract creates an empty state namespace for the contract id.
func (h *Host) RegisterContract(contractID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.state[contractID]; !ok {
		h.state[contractID] = map[string]string{}
	}
}

// Deposit credits an account, like a user moving funds into the layer 2 ledger.
func (h *Host) Deposit(addr Address, amount int64, asset Asset) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.credit(addr, amount, asset)
}

// Balance returns the ledger balance of the account.
func (h *Host) Balance(addr Address, asset Asset) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.balances[addr][asset]
}

// RejectTransfersTo makes every hive.transfer towards addr fail.
func (h *Host) RejectTransfersTo(addr Address) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rejecting[addr] = true
}

// StateGet reads a raw state key of a contract, nil when missing.
func (h *Host) StateGet(contractID, key string) *string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.get(contractID, key)
}

// StateSet writes a raw state key of a contract outside of any call.
func (h *Host) StateSet(contractID, key, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ns, ok := h.state[contractID]
	if !ok {
		ns = map[string]string{}
		h.state[contractID] = ns
	}
	ns[key] = value
}

// Logs returns every committed log line in emission order.
func (h *Host) Logs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.logs))
	copy(out, h.logs)
	return out
}

// Call runs fn as the body of a transaction against tx.ContractID.
func (h *Host) Call(tx Tx, fn func() *string) (res Result) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.state[tx.ContractID]; !ok {
		return Result{Err: "contract not found: " + tx.ContractID, Symbol: SymbolAbort}
	}

	activeMu.Lock()
	if active != nil {
		activeMu.Unlock()
		return Result{Err: "nested contract call", Symbol: SymbolAbort}
	}
	active = h
	activeMu.Unlock()

	h.txCount++
	h.env = h.buildEnv(tx)
	h.drawn = map[Asset]int64{}

	stateSnap := h.snapshotState()
	balanceSnap := h.snapshotBalances()
	logMark := len(h.logs)

	defer func() {
		activeMu.Lock()
		active = nil
		activeMu.Unlock()
		h.env = Env{}
		h.drawn = nil

		r := recover()
		if r == nil {
			res.Logs = append([]string(nil), h.logs[logMark:]...)
			return
		}
		h.state = stateSnap
		h.balances = balanceSnap
		h.logs = h.logs[:logMark]
		herr, ok := r.(*HostError)
		if !ok {
			panic(r)
		}
		if h.Verbose {
			fmt.Println("call failed:", herr.Error())
		}
		res = Result{Err: herr.Msg, Symbol: herr.Symbol}
	}()

	ret := fn()
	res.Success = true
	if ret != nil {
		res.Ret = *ret
	}
	return res
}

func (h *Host) buildEnv(tx Tx) Env {
	env := Env{
		ContractId:  tx.ContractID,
		TxId:        tx.TxID,
		BlockId:     "block" + strconv.FormatUint(h.txCount, 10),
		BlockHeight: tx.BlockHeight,
		Timestamp:   tx.Timestamp,
		Sender: Sender{
			Address:              tx.Caller,
			RequiredAuths:        []Address{tx.Caller},
			RequiredPostingAuths: []Address{},
		},
		Caller:  tx.Caller,
		Intents: tx.Intents,
	}
	if env.TxId == "" {
		env.TxId = "tx" + strconv.FormatUint(txSeq.Add(1), 10)
	}
	if env.Timestamp == "" {
		env.Timestamp = defaultTimestamp
	}
	if env.BlockHeight == 0 {
		env.BlockHeight = h.txCount
	}
	return env
}

func (h *Host) snapshotState() map[string]map[string]string {
	out := make(map[string]map[string]string, len(h.state))
	for id, ns := range h.state {
		cp := make(map[string]string, len(ns))
		for k, v := range ns {
			cp[k] = v
		}
		out[id] = cp
	}
	return out
}

func (h *Host) snapshotBalances() map[Address]map[Asset]int64 {
	out := make(map[Address]map[Asset]int64, len(h.balances))
	for addr, assets := range h.balances {
		cp := make(map[Asset]int64, len(assets))
		for a, v := range assets {
			cp[a] = v
		}
		out[addr] = cp
	}
	return out
}

func (h *Host) get(contractID, key string) *string {
	v, ok := h.state[contractID][key]
	if !ok {
		return nil
	}
	return &v
}

func (h *Host) credit(addr Address, amount int64, asset Asset) {
	assets, ok := h.balances[addr]
	if !ok {
		assets = map[Asset]int64{}
		h.balances[addr] = assets
	}
	assets[asset] += amount
}

func (h *Host) move(from, to Address, amount int64, asset Asset) {
	if h.balances[from][asset] < amount {
		Revert(fmt.Sprintf("insufficient %s balance on %s", asset, from), SymbolInsufficientBalance)
	}
	h.credit(from, -amount, asset)
	h.credit(to, amount, asset)
}

// allowance returns the transfer.allow limit for the asset in host units.
func (h *Host) allowance(asset Asset) (int64, bool) {
	for _, intent := range h.env.Intents {
		if intent.Type != "transfer.allow" || Asset(intent.Args["token"]) != asset {
			continue
		}
		limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
		if err != nil {
			return 0, false
		}
		return int64(math.Round(limit * math.Pow10(AssetDecimals))), true
	}
	return 0, false
}

func callHost() *Host {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active == nil {
		panic("sdk: host function used outside of Host.Call")
	}
	return active
}

// --- host function implementations ---

func Log(s string) {
	h := callHost()
	h.logs = append(h.logs, s)
	if h.Verbose {
		fmt.Println("[log]", s)
	}
}

func Abort(msg string) {
	panic(&HostError{Msg: msg, Symbol: SymbolAbort})
}

func Revert(msg string, symbol string) {
	panic(&HostError{Msg: msg, Symbol: symbol})
}

func StateSetObject(key string, value string) {
	h := callHost()
	h.state[h.env.ContractId][key] = value
}

func StateGetObject(key string) *string {
	h := callHost()
	return h.get(h.env.ContractId, key)
}

func StateDeleteObject(key string) {
	h := callHost()
	delete(h.state[h.env.ContractId], key)
}

func GetEnv() Env {
	return callHost().env
}

func GetEnvKey(key string) *string {
	env := callHost().env
	var v string
	switch key {
	case "contract.id":
		v = env.ContractId
	case "tx.id":
		v = env.TxId
	case "block.id":
		v = env.BlockId
	case "block.height":
		v = strconv.FormatUint(env.BlockHeight, 10)
	case "block.timestamp":
		v = env.Timestamp
	case "msg.sender":
		v = env.Sender.Address.String()
	default:
		return nil
	}
	return &v
}

func GetBalance(address Address, asset Asset) int64 {
	return callHost().balances[address][asset]
}

func HiveDraw(amount int64, asset Asset) {
	h := callHost()
	if amount <= 0 {
		Abort("draw amount must be positive")
	}
	limit, ok := h.allowance(asset)
	if !ok || h.drawn[asset]+amount > limit {
		Revert("draw exceeds transfer.allow limit", SymbolDrawLimit)
	}
	h.drawn[asset] += amount
	h.move(h.env.Sender.Address, ContractAddress(h.env.ContractId), amount, asset)
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	h := callHost()
	if amount <= 0 {
		Abort("transfer amount must be positive")
	}
	if h.rejecting[to] {
		Revert("transfer rejected by "+to.String(), SymbolTransferFailure)
	}
	h.move(ContractAddress(h.env.ContractId), to, amount, asset)
}

func ContractStateGet(contractId string, key string) *string {
	return callHost().get(contractId, key)
}
