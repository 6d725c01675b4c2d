package main

import (
	"fmt"
	"strconv"
	"testing"

	"fundme/pricefeed"
	"fundme/sdk"

	"github.com/CosmWasm/tinyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ContractID = "vsctestcontract"
const FeedID = "vscpricefeed"
const ownerAddress = "hive:tibfox"

var funders = []string{"hive:someone", "hive:someoneelse", "hive:member2", "hive:member3", "hive:outsider"}

var actions = map[string]func(*string) *string{
	"contract_init":                ContractInit,
	"fund":                         Fund,
	"withdraw":                     Withdraw,
	"cheaper_withdraw":             CheaperWithdraw,
	"get_price_feed":               GetPriceFeed,
	"get_owner":                    GetOwner,
	"get_address_to_amount_funded": GetAddressToAmountFunded,
	"get_funder":                   GetFunder,
	"get_funder_count":             GetFunderCount,
	"get_conversion":               GetConversion,
	"get_feed_version":             GetFeedVersion,
	"get_summary":                  GetSummary,
}

// SetupContractTest registers the ledger and a feed answering 2000 USD with 8 decimals.
func SetupContractTest() *sdk.Host {
	h := sdk.NewHost()
	h.RegisterContract(ContractID)
	h.RegisterContract(FeedID)
	h.StateSet(FeedID, pricefeed.DecimalsKey, strconv.Itoa(int(pricefeed.DefaultDecimals)))
	h.StateSet(FeedID, pricefeed.VersionKey, strconv.FormatUint(pricefeed.MockVersion, 10))
	setFeedAnswer(h, 1, pricefeed.DefaultInitialAnswer)
	for _, f := range funders {
		h.Deposit(sdk.Address(f), 200000, sdk.AssetHive)
		h.Deposit(sdk.Address(f), 200000, sdk.AssetHbd)
	}
	return h
}

// SetupInitializedContract runs contract_init as the owner with default settings.
func SetupInitializedContract(t *testing.T) *sdk.Host {
	h := SetupContractTest()
	CallContract(t, h, "contract_init", PayloadString(FeedID), nil, ownerAddress, true)
	return h
}

func setFeedAnswer(h *sdk.Host, round uint64, answer int64) {
	h.StateSet(FeedID, pricefeed.LatestRoundKey, pricefeed.EncodeRound(pricefeed.RoundData{
		RoundID:         round,
		Answer:          answer,
		StartedAt:       1756857600,
		UpdatedAt:       1756857600,
		AnsweredInRound: round,
	}))
}

// CallContract executes a contract action and asserts the outcome.
func CallContract(t *testing.T, h *sdk.Host, action string, payload *string, intents []sdk.Intent, authUser string, expectedResult bool) sdk.Result {
	t.Helper()
	fn, ok := actions[action]
	require.True(t, ok, "unknown action "+action)
	result := h.Call(sdk.Tx{
		ContractID: ContractID,
		Caller:     sdk.Address(authUser),
		Intents:    intents,
	}, func() *string { return fn(payload) })

	if expectedResult {
		assert.True(t, result.Success, fmt.Sprintf("%s failed with %s: %s", action, result.Symbol, result.Err))
	} else {
		assert.False(t, result.Success, action+" did not fail (as expected)")
	}
	return result
}

// CallExpectSymbol asserts the call reverted with the given symbol.
func CallExpectSymbol(t *testing.T, h *sdk.Host, action string, payload *string, intents []sdk.Intent, authUser string, symbol string) sdk.Result {
	t.Helper()
	res := CallContract(t, h, action, payload, intents, authUser, false)
	assert.Equal(t, symbol, res.Symbol, res.Err)
	return res
}

// PayloadString wraps a Go string the way the runner quotes raw payloads.
func PayloadString(val string) *string {
	s := strconv.Quote(val)
	return &s
}

func transferIntent(limit string) []sdk.Intent {
	return transferIntentWithToken(limit, "hive")
}

func transferIntentWithToken(limit string, token string) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token},
	}}
}

func contractBalance(h *sdk.Host) int64 {
	return h.Balance(sdk.ContractAddress(ContractID), sdk.AssetHive)
}

func amountFunded(t *testing.T, h *sdk.Host, addr string) string {
	t.Helper()
	return CallContract(t, h, "get_address_to_amount_funded", PayloadString(addr), nil, "hive:outsider", true).Ret
}

func funderCount(t *testing.T, h *sdk.Host) string {
	t.Helper()
	return CallContract(t, h, "get_funder_count", nil, nil, "hive:outsider", true).Ret
}

func decodeSummary(t *testing.T, data string) Summary {
	t.Helper()
	var s Summary
	require.NoError(t, tinyjson.Unmarshal([]byte(data), &s))
	return s
}
