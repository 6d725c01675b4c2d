package main

import (
	"fmt"

	"fundme/sdk"

	"github.com/holiman/uint256"
)

// emitInitEvent records who owns the ledger and which feed prices it.
func emitInitEvent(owner sdk.Address, feed string, asset sdk.Asset, minUSD uint64) {
	sdk.Log(fmt.Sprintf(
		"fi|by:%s|feed:%s|as:%s|min:%d",
		owner,
		feed,
		asset,
		minUSD,
	))
}

// emitFundedEvent carries the raw amount and its USD value at funding time.
func emitFundedEvent(funder sdk.Address, amount Amount, asset sdk.Asset, usd *uint256.Int) {
	sdk.Log(fmt.Sprintf(
		"f|by:%s|am:%d|as:%s|usd:%s",
		funder,
		AmountToInt64(amount),
		asset,
		usd.Dec(),
	))
}

// emitWithdrawEvent logs the drained balance and how many funder slots were reset.
func emitWithdrawEvent(owner sdk.Address, amount Amount, asset sdk.Asset, funders int) {
	sdk.Log(fmt.Sprintf(
		"w|to:%s|am:%d|as:%s|n:%d",
		owner,
		AmountToInt64(amount),
		asset,
		funders,
	))
}
