//go:build !wasm

package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContract = "vsctestcontract"

func allow(limit string) []Intent {
	return []Intent{{Type: "transfer.allow", Args: map[string]string{"limit": limit, "token": "hive"}}}
}

func newTestHost() *Host {
	h := NewHost()
	h.RegisterContract(testContract)
	h.Deposit("hive:alice", 10_000, AssetHive)
	return h
}

func TestHostCommitsOnSuccess(t *testing.T) {
	h := newTestHost()
	res := h.Call(Tx{ContractID: testContract, Caller: "hive:alice", Intents: allow("2.000")}, func() *string {
		StateSetObject("k", "v")
		HiveDraw(1500, AssetHive)
		Log("drawn")
		out := GetEnv().Sender.Address.String()
		return &out
	})
	require.True(t, res.Success, res.Err)
	assert.Equal(t, "hive:alice", res.Ret)
	assert.Equal(t, []string{"drawn"}, res.Logs)
	assert.Equal(t, "v", *h.StateGet(testContract, "k"))
	assert.Equal(t, int64(8_500), h.Balance("hive:alice", AssetHive))
	assert.Equal(t, int64(1_500), h.Balance(ContractAddress(testContract), AssetHive))
}

func TestHostRollsBackOnRevert(t *testing.T) {
	h := newTestHost()
	h.StateSet(testContract, "k", "before")
	res := h.Call(Tx{ContractID: testContract, Caller: "hive:alice", Intents: allow("1.000")}, func() *string {
		StateSetObject("k", "after")
		HiveDraw(1000, AssetHive)
		Log("should vanish")
		Revert("nope", "custom")
		return nil
	})
	assert.False(t, res.Success)
	assert.Equal(t, "custom", res.Symbol)
	assert.Equal(t, "nope", res.Err)
	assert.Equal(t, "before", *h.StateGet(testContract, "k"))
	assert.Equal(t, int64(10_000), h.Balance("hive:alice", AssetHive))
	assert.Empty(t, h.Logs())
}

func TestHostDrawRespectsIntentLimit(t *testing.T) {
	h := newTestHost()
	res := h.Call(Tx{ContractID: testContract, Caller: "hive:alice", Intents: allow("1.000")}, func() *string {
		HiveDraw(600, AssetHive)
		HiveDraw(600, AssetHive)
		return nil
	})
	assert.False(t, res.Success)
	assert.Equal(t, SymbolDrawLimit, res.Symbol)

	res = h.Call(Tx{ContractID: testContract, Caller: "hive:alice"}, func() *string {
		HiveDraw(1, AssetHive)
		return nil
	})
	assert.Equal(t, SymbolDrawLimit, res.Symbol)
	assert.Equal(t, int64(10_000), h.Balance("hive:alice", AssetHive))
}

func TestHostDrawNeedsBalance(t *testing.T) {
	h := newTestHost()
	res := h.Call(Tx{ContractID: testContract, Caller: "hive:broke", Intents: allow("1.000")}, func() *string {
		HiveDraw(1000, AssetHive)
		return nil
	})
	assert.Equal(t, SymbolInsufficientBalance, res.Symbol)
}

func TestHostTransferRejectedByRecipient(t *testing.T) {
	h := newTestHost()
	h.Deposit(ContractAddress(testContract), 500, AssetHive)
	h.RejectTransfersTo("hive:bob")
	res := h.Call(Tx{ContractID: testContract, Caller: "hive:alice"}, func() *string {
		StateSetObject("k", "v")
		HiveTransfer("hive:bob", 500, AssetHive)
		return nil
	})
	assert.Equal(t, SymbolTransferFailure, res.Symbol)
	assert.Nil(t, h.StateGet(testContract, "k"))
	assert.Equal(t, int64(500), h.Balance(ContractAddress(testContract), AssetHive))
	assert.Equal(t, int64(0), h.Balance("hive:bob", AssetHive))
}

func TestHostForeignStateRead(t *testing.T) {
	h := newTestHost()
	h.RegisterContract("other")
	h.StateSet("other", "answer", "42")
	res := h.Call(Tx{ContractID: testContract, Caller: "hive:alice"}, func() *string {
		return ContractStateGet("other", "answer")
	})
	require.True(t, res.Success)
	assert.Equal(t, "42", res.Ret)
}

func TestHostUnknownContract(t *testing.T) {
	h := NewHost()
	res := h.Call(Tx{ContractID: "missing"}, func() *string { return nil })
	assert.False(t, res.Success)
	assert.Contains(t, res.Err, "contract not found")
}

func TestHostRepanicsForeignPanics(t *testing.T) {
	h := newTestHost()
	assert.Panics(t, func() {
		h.Call(Tx{ContractID: testContract, Caller: "hive:alice"}, func() *string {
			panic("boom")
		})
	})
	// host is usable again afterwards
	res := h.Call(Tx{ContractID: testContract, Caller: "hive:alice"}, func() *string { return nil })
	assert.True(t, res.Success)
}

func TestHostEnvKeys(t *testing.T) {
	h := newTestHost()
	res := h.Call(Tx{ContractID: testContract, Caller: "hive:alice", TxID: "my-tx"}, func() *string {
		ts := GetEnvKey("block.timestamp")
		id := GetEnvKey("tx.id")
		out := *id + "@" + *ts
		return &out
	})
	assert.Equal(t, "my-tx@"+defaultTimestamp, res.Ret)
}
