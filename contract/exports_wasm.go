//go:build wasm

package main

//go:wasmexport contract_init
func exportContractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport fund
func exportFund(payload *string) *string { return Fund(payload) }

//go:wasmexport withdraw
func exportWithdraw(payload *string) *string { return Withdraw(payload) }

//go:wasmexport cheaper_withdraw
func exportCheaperWithdraw(payload *string) *string { return CheaperWithdraw(payload) }

//go:wasmexport get_price_feed
func exportGetPriceFeed(payload *string) *string { return GetPriceFeed(payload) }

//go:wasmexport get_owner
func exportGetOwner(payload *string) *string { return GetOwner(payload) }

//go:wasmexport get_address_to_amount_funded
func exportGetAddressToAmountFunded(payload *string) *string {
	return GetAddressToAmountFunded(payload)
}

//go:wasmexport get_funder
func exportGetFunder(payload *string) *string { return GetFunder(payload) }

//go:wasmexport get_funder_count
func exportGetFunderCount(payload *string) *string { return GetFunderCount(payload) }

//go:wasmexport get_conversion
func exportGetConversion(payload *string) *string { return GetConversion(payload) }

//go:wasmexport get_feed_version
func exportGetFeedVersion(payload *string) *string { return GetFeedVersion(payload) }

//go:wasmexport get_summary
func exportGetSummary(payload *string) *string { return GetSummary(payload) }
