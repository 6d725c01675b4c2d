package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Contract Init Tests
// =============================================================================

// TestInitStoresOwnerAndFeed checks the deployer becomes owner and the feed is fixed.
func TestInitStoresOwnerAndFeed(t *testing.T) {
	h := SetupContractTest()
	res := CallContract(t, h, "contract_init", PayloadString(FeedID), nil, ownerAddress, true)
	assert.Contains(t, res.Ret, FeedID)
	assert.Equal(t, []string{"fi|by:hive:tibfox|feed:vscpricefeed|as:hive|min:50"}, res.Logs)

	assert.Equal(t, ownerAddress, CallContract(t, h, "get_owner", nil, nil, "hive:someone", true).Ret)
	assert.Equal(t, FeedID, CallContract(t, h, "get_price_feed", nil, nil, "hive:someone", true).Ret)
	assert.Equal(t, "0", funderCount(t, h))
}

// TestInitTwiceFails makes sure the owner can not be replaced.
func TestInitTwiceFails(t *testing.T) {
	h := SetupInitializedContract(t)
	CallExpectSymbol(t, h, "contract_init", PayloadString(FeedID), nil, "hive:someone", ErrAlreadyInitialized)
	assert.Equal(t, ownerAddress, CallContract(t, h, "get_owner", nil, nil, "hive:someone", true).Ret)
}

// TestInitWithOptions sets asset and minimum explicitly.
func TestInitWithOptions(t *testing.T) {
	h := SetupContractTest()
	res := CallContract(t, h, "contract_init", PayloadString(FeedID+"|HBD|100"), nil, ownerAddress, true)
	assert.Equal(t, []string{"fi|by:hive:tibfox|feed:vscpricefeed|as:hbd|min:100"}, res.Logs)

	s := decodeSummary(t, CallContract(t, h, "get_summary", nil, nil, "hive:someone", true).Ret)
	assert.Equal(t, "hbd", s.Asset.String())
	assert.Equal(t, uint64(100), s.MinimumUSD)
}

// TestInitZeroMinimumUsesDefault keeps the ledger from accepting free contributions.
func TestInitZeroMinimumUsesDefault(t *testing.T) {
	h := SetupContractTest()
	CallContract(t, h, "contract_init", PayloadString(FeedID+"|hive|0"), nil, ownerAddress, true)
	s := decodeSummary(t, CallContract(t, h, "get_summary", nil, nil, "hive:someone", true).Ret)
	assert.Equal(t, DefaultMinimumUSD, s.MinimumUSD)
}

// TestInitValidation covers the payload and feed checks.
func TestInitValidation(t *testing.T) {
	h := SetupContractTest()
	CallExpectSymbol(t, h, "contract_init", nil, nil, ownerAddress, "abort")
	CallExpectSymbol(t, h, "contract_init", PayloadString(""), nil, ownerAddress, "abort")
	CallExpectSymbol(t, h, "contract_init", PayloadString("nofeed"), nil, ownerAddress, ErrOracle)
	CallExpectSymbol(t, h, "contract_init", PayloadString(FeedID+"|btc"), nil, ownerAddress, ErrInvalidAsset)
	CallExpectSymbol(t, h, "contract_init", PayloadString(FeedID+"|hive|lots"), nil, ownerAddress, "abort")

	// nothing was written by the failed attempts
	CallExpectSymbol(t, h, "get_owner", nil, nil, ownerAddress, ErrNotInitialized)
	assert.Empty(t, h.Logs())
}

// TestCallsBeforeInitFail checks every entry point refuses to run unconfigured.
func TestCallsBeforeInitFail(t *testing.T) {
	h := SetupContractTest()
	CallExpectSymbol(t, h, "fund", nil, transferIntent("1.000"), "hive:someone", ErrNotInitialized)
	CallExpectSymbol(t, h, "withdraw", nil, nil, ownerAddress, ErrNotInitialized)
	CallExpectSymbol(t, h, "get_price_feed", nil, nil, ownerAddress, ErrNotInitialized)
	CallExpectSymbol(t, h, "get_funder_count", nil, nil, ownerAddress, ErrNotInitialized)
	CallExpectSymbol(t, h, "get_funder", PayloadString("0"), nil, ownerAddress, ErrNotInitialized)
}
