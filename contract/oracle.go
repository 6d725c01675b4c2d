package main

import (
	"fundme/pricefeed"
	"fundme/sdk"

	"github.com/holiman/uint256"
)

// requireFeed reverts unless the feed contract exposes a readable decimals key.
func requireFeed(feed string) uint8 {
	ptr := sdk.ContractStateGet(feed, pricefeed.DecimalsKey)
	if ptr == nil {
		sdk.Revert("price feed "+feed+" not found", ErrOracle)
	}
	decimals, err := pricefeed.ParseDecimals(*ptr)
	if err != nil {
		sdk.Revert("price feed "+feed+": "+err.Error(), ErrOracle)
	}
	return decimals
}

// latestRound reads the newest report of the feed.
func latestRound(feed string) pricefeed.RoundData {
	ptr := sdk.ContractStateGet(feed, pricefeed.LatestRoundKey)
	if ptr == nil {
		sdk.Revert("price feed "+feed+" has no answer", ErrOracle)
	}
	round, err := pricefeed.DecodeRound(*ptr)
	if err != nil {
		sdk.Revert("price feed "+feed+": "+err.Error(), ErrOracle)
	}
	return round
}

// conversionRate values amount in USD with 18 decimals at the feed's latest answer.
func conversionRate(cfg *ContractConfig, amount Amount) *uint256.Int {
	decimals := requireFeed(cfg.PriceFeed)
	round := latestRound(cfg.PriceFeed)
	usd, err := pricefeed.ToUSD(AmountToInt64(amount), sdk.AssetDecimals, round.Answer, decimals)
	if err != nil {
		sdk.Revert("price conversion failed: "+err.Error(), ErrOracle)
	}
	return usd
}
