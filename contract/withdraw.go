package main

import (
	"strconv"

	"fundme/sdk"
)

// Withdraw sends the whole contract balance to the owner and resets the ledger.
func Withdraw(_ *string) *string {
	return withdrawAll()
}

// CheaperWithdraw is kept as a separate entry point for clients built against the
// two-method interface; both share one algorithm.
func CheaperWithdraw(_ *string) *string {
	return withdrawAll()
}

// withdrawAll zeroes every record reachable from the funder list, clears the list and
// only then moves the funds. A failing transfer reverts the reset with it.
func withdrawAll() *string {
	cfg := requireConfig()
	if !isContractOwner(cfg, getSenderAddress()) {
		sdk.Revert("only the owner can withdraw", ErrUnauthorized)
	}

	funders := loadFunders()
	seen := make(map[sdk.Address]bool, len(funders))
	for _, funder := range funders {
		if seen[funder] {
			continue
		}
		seen[funder] = true
		clearAmountFunded(funder)
	}
	clearFunders(uint64(len(funders)))

	balance := sdk.GetBalance(contractAddress(), cfg.Asset)
	if balance > 0 {
		sdk.HiveTransfer(cfg.Owner, balance, cfg.Asset)
	}

	emitWithdrawEvent(cfg.Owner, Amount(balance), cfg.Asset, len(funders))
	return strptr(strconv.FormatInt(balance, 10))
}
