package main

import (
	"strconv"
	"testing"

	"fundme/pricefeed"
	"fundme/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const FeedID = "vscpricefeed"
const deployer = "hive:tibfox"

// block time of the default test timestamp 2025-09-03T00:00:00
const defaultUnix int64 = 1756857600

func setupFeed() *sdk.Host {
	h := sdk.NewHost()
	h.RegisterContract(FeedID)
	return h
}

func call(t *testing.T, h *sdk.Host, fn func(*string) *string, payload string, expectedResult bool) sdk.Result {
	t.Helper()
	var p *string
	if payload != "" {
		q := strconv.Quote(payload)
		p = &q
	}
	res := h.Call(sdk.Tx{ContractID: FeedID, Caller: deployer}, func() *string { return fn(p) })
	if expectedResult {
		assert.True(t, res.Success, res.Symbol+": "+res.Err)
	} else {
		assert.False(t, res.Success, "call did not fail (as expected)")
	}
	return res
}

func decodeRound(t *testing.T, data string) pricefeed.RoundData {
	t.Helper()
	r, err := pricefeed.ParseRoundJSON([]byte(data))
	require.NoError(t, err)
	return r
}

// TestInitDefaults deploys with DECIMALS 8 and INITIAL_ANSWER 2000e8.
func TestInitDefaults(t *testing.T) {
	h := setupFeed()
	res := call(t, h, ContractInit, "", true)
	assert.Equal(t, []string{"mi|d:8|a:200000000000", "ma|r:1|a:200000000000|t:1756857600"}, res.Logs)

	r := decodeRound(t, res.Ret)
	assert.Equal(t, pricefeed.RoundData{RoundID: 1, Answer: 2000_00000000, StartedAt: defaultUnix, UpdatedAt: defaultUnix, AnsweredInRound: 1}, r)

	assert.Equal(t, "8", call(t, h, Decimals, "", true).Ret)
	assert.Equal(t, "0", call(t, h, Version, "", true).Ret)
	assert.Equal(t, pricefeed.MockDescription, call(t, h, Description, "", true).Ret)

	// readers see the same layout through a foreign state read
	latest := h.StateGet(FeedID, pricefeed.LatestRoundKey)
	require.NotNil(t, latest)
	stored, err := pricefeed.DecodeRound(*latest)
	require.NoError(t, err)
	assert.Equal(t, r, stored)
}

// TestInitCustom sets decimals and answer and refuses a second init.
func TestInitCustom(t *testing.T) {
	h := setupFeed()
	call(t, h, ContractInit, "18|3000000000000000000", true)
	assert.Equal(t, "18", call(t, h, Decimals, "", true).Ret)
	r := decodeRound(t, call(t, h, LatestRoundData, "", true).Ret)
	assert.Equal(t, int64(3_000000000000000000), r.Answer)

	res := call(t, h, ContractInit, "8|1", false)
	assert.Equal(t, ErrAlreadyInitialized, res.Symbol)
}

// TestInitRejectsBadDecimals keeps the feed unusable rather than wrong.
func TestInitRejectsBadDecimals(t *testing.T) {
	h := setupFeed()
	call(t, h, ContractInit, "99", false)
	call(t, h, ContractInit, "8|abc", false)
	res := call(t, h, Decimals, "", false)
	assert.Equal(t, ErrNotInitialized, res.Symbol)
}

// TestUpdateAnswerAdvancesRound keeps history reachable by round id.
func TestUpdateAnswerAdvancesRound(t *testing.T) {
	h := setupFeed()
	call(t, h, ContractInit, "", true)
	res := call(t, h, UpdateAnswer, "250000000000", true)
	assert.Equal(t, uint64(2), decodeRound(t, res.Ret).RoundID)

	latest := decodeRound(t, call(t, h, LatestRoundData, "", true).Ret)
	assert.Equal(t, int64(2500_00000000), latest.Answer)

	first := decodeRound(t, call(t, h, GetRoundData, "1", true).Ret)
	assert.Equal(t, int64(2000_00000000), first.Answer)

	res = call(t, h, GetRoundData, "3", false)
	assert.Equal(t, ErrNoData, res.Symbol)
	call(t, h, UpdateAnswer, "", false)
	call(t, h, UpdateAnswer, "cheap", false)
}

// TestUpdateRoundData writes an explicit round and makes it the latest.
func TestUpdateRoundData(t *testing.T) {
	h := setupFeed()
	call(t, h, ContractInit, "", true)
	res := call(t, h, UpdateRoundData, "10|180000000000|1700000100|1700000000", true)
	assert.Equal(t, []string{"ma|r:10|a:180000000000|t:1700000100"}, res.Logs)

	latest := decodeRound(t, call(t, h, LatestRoundData, "", true).Ret)
	assert.Equal(t, pricefeed.RoundData{RoundID: 10, Answer: 1800_00000000, StartedAt: 1700000000, UpdatedAt: 1700000100, AnsweredInRound: 10}, latest)

	// the next plain update continues from the explicit round
	next := decodeRound(t, call(t, h, UpdateAnswer, "1", true).Ret)
	assert.Equal(t, uint64(11), next.RoundID)

	call(t, h, UpdateRoundData, "10|1|2", false)
}

// TestParseTimestamp accepts the formats the env uses.
func TestParseTimestamp(t *testing.T) {
	for _, in := range []string{"1756857600", "2025-09-03T00:00:00Z", "2025-09-03T00:00:00"} {
		v, ok := parseTimestamp(in)
		assert.True(t, ok, in)
		assert.Equal(t, defaultUnix, v, in)
	}
	_, ok := parseTimestamp("yesterday")
	assert.False(t, ok)
}
