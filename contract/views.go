package main

import (
	"strconv"

	"fundme/pricefeed"
	"fundme/sdk"
)

// -----------------------------------------------------------------------------
// Read-only entry points
// -----------------------------------------------------------------------------

// GetPriceFeed returns the feed contract id fixed at init.
func GetPriceFeed(_ *string) *string {
	return strptr(requireConfig().PriceFeed)
}

// GetOwner returns the owner address.
func GetOwner(_ *string) *string {
	return strptr(requireConfig().Owner.String())
}

// GetAddressToAmountFunded returns the cumulative contribution of the address in the
// payload as raw asset units, "0" for unknown addresses.
func GetAddressToAmountFunded(payload *string) *string {
	requireConfig()
	addr := parseAddressField(unwrapPayload(payload, "address required"))
	return strptr(strconv.FormatInt(AmountToInt64(getAmountFunded(addr)), 10))
}

// GetFunder returns the funder at the payload index.
func GetFunder(payload *string) *string {
	requireConfig()
	raw := unwrapPayload(payload, "funder index required")
	idx := parseUintField(raw, "funder index")
	if idx >= getFunderCount() {
		sdk.Revert("funder index "+raw+" out of range", ErrIndexOutOfRange)
	}
	return strptr(loadFunder(idx).String())
}

// GetFunderCount returns the funder list length.
func GetFunderCount(_ *string) *string {
	requireConfig()
	return strptr(strconv.FormatUint(getFunderCount(), 10))
}

// GetConversion values an amount like "1.000" in USD (18 decimals) at the latest answer.
func GetConversion(payload *string) *string {
	cfg := requireConfig()
	amount := parseAmountField(unwrapPayload(payload, "amount required"), "amount")
	return strptr(conversionRate(cfg, amount).Dec())
}

// GetFeedVersion passes through the version the feed publishes.
func GetFeedVersion(_ *string) *string {
	cfg := requireConfig()
	ptr := sdk.ContractStateGet(cfg.PriceFeed, pricefeed.VersionKey)
	if ptr == nil {
		sdk.Revert("price feed "+cfg.PriceFeed+" has no version", ErrOracle)
	}
	return strptr(*ptr)
}

// GetSummary is a one-shot JSON view for dashboards.
func GetSummary(_ *string) *string {
	cfg := requireConfig()
	s := Summary{
		Owner:       cfg.Owner,
		PriceFeed:   cfg.PriceFeed,
		Asset:       cfg.Asset,
		MinimumUSD:  cfg.MinimumUSD,
		FunderCount: getFunderCount(),
		Balance:     Amount(sdk.GetBalance(contractAddress(), cfg.Asset)),
	}
	return strptr(encodeSummary(&s))
}
