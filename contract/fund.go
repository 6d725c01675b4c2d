package main

import (
	"fmt"
	"strconv"

	"fundme/pricefeed"
	"fundme/sdk"

	"github.com/holiman/uint256"
)

// Fund accepts the value attached through a transfer.allow intent. The intent must be in
// the configured asset and worth at least the minimum in USD at the feed's latest answer.
// Every check runs before the first state write or draw.
func Fund(_ *string) *string {
	cfg := requireConfig()
	ta := getFirstTransferAllow()
	if ta == nil || ta.Limit <= 0 {
		sdk.Revert(insufficientMsg(cfg, new(uint256.Int)), ErrInsufficientContribution)
	}
	if ta.Token != cfg.Asset {
		sdk.Revert(fmt.Sprintf("only %s is accepted", cfg.Asset), ErrInvalidAsset)
	}
	usd := conversionRate(cfg, ta.Limit)
	if usd.Lt(pricefeed.WholeUSD(cfg.MinimumUSD)) {
		sdk.Revert(insufficientMsg(cfg, usd), ErrInsufficientContribution)
	}

	funder := getSenderAddress()
	sdk.HiveDraw(AmountToInt64(ta.Limit), cfg.Asset)
	total := addAmountFunded(funder, ta.Limit)
	appendFunder(funder)

	emitFundedEvent(funder, ta.Limit, cfg.Asset, usd)
	return strptr(strconv.FormatInt(AmountToInt64(total), 10))
}

func insufficientMsg(cfg *ContractConfig, usd *uint256.Int) string {
	return fmt.Sprintf("you need to spend more %s: got %s USD, minimum is %d USD", cfg.Asset, pricefeed.FormatUSD(usd), cfg.MinimumUSD)
}
