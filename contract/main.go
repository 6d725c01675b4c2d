////////////////////////////////////////////////////////////////////////////////
// FundMe: a crowdfunding ledger for the vsc network
// Contributions are priced through a feed contract, the owner withdraws everything.
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fundme/sdk"
)

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit stores the caller as owner together with the price feed that values
// contributions. Payload: "feedContractId|asset|minimumUsd" (asset and minimum optional).
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Revert("contract already initialized", ErrAlreadyInitialized)
	}
	args := decodeInitArgs(payload)
	requireFeed(args.PriceFeed)

	cfg := ContractConfig{
		Owner:      getSenderAddress(),
		PriceFeed:  args.PriceFeed,
		Asset:      args.Asset,
		MinimumUSD: args.MinimumUSD,
	}
	saveContractConfig(&cfg)

	emitInitEvent(cfg.Owner, cfg.PriceFeed, cfg.Asset, cfg.MinimumUSD)
	return strptr("initialized with price feed " + cfg.PriceFeed)
}

// Convenience helper
func strptr(s string) *string { return &s }
