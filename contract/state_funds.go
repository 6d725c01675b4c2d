package main

import (
	"strconv"

	"fundme/sdk"
)

// -----------------------------------------------------------------------------
// Contributor Records
// -----------------------------------------------------------------------------

// getAmountFunded returns the cumulative contribution of addr, zero when absent.
func getAmountFunded(addr sdk.Address) Amount {
	ptr := sdk.StateGetObject(fundedKey(addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("invalid funded amount for " + addr.String())
	}
	return Amount(v)
}

// addAmountFunded adds amount to the record of addr and returns the new total.
func addAmountFunded(addr sdk.Address, amount Amount) Amount {
	current := getAmountFunded(addr)
	if amount > 0 && current > Amount(1<<63-1)-amount {
		sdk.Abort("funded amount overflow")
	}
	total := current + amount
	sdk.StateSetObject(fundedKey(addr), strconv.FormatInt(AmountToInt64(total), 10))
	return total
}

// clearAmountFunded drops the record; a missing record reads as zero.
func clearAmountFunded(addr sdk.Address) {
	sdk.StateDeleteObject(fundedKey(addr))
}

// -----------------------------------------------------------------------------
// Funder List
// -----------------------------------------------------------------------------

// getFunderCount is the current funder list length.
func getFunderCount() uint64 {
	return getCount(FundersCount)
}

// appendFunder pushes addr to the end of the list, duplicates included.
func appendFunder(addr sdk.Address) {
	n := getFunderCount()
	sdk.StateSetObject(funderKey(n), addr.String())
	setCount(FundersCount, n+1)
}

// loadFunder returns the funder at idx; callers check bounds first.
func loadFunder(idx uint64) sdk.Address {
	ptr := sdk.StateGetObject(funderKey(idx))
	if ptr == nil {
		sdk.Abort("funder slot " + strconv.FormatUint(idx, 10) + " missing")
	}
	return AddressFromString(*ptr)
}

// loadFunders reads the whole list in order.
func loadFunders() []sdk.Address {
	n := getFunderCount()
	out := make([]sdk.Address, 0, n)
	for i := uint64(0); i < n; i++ {
		out = append(out, loadFunder(i))
	}
	return out
}

// clearFunders removes every slot and resets the length.
func clearFunders(n uint64) {
	for i := uint64(0); i < n; i++ {
		sdk.StateDeleteObject(funderKey(i))
	}
	setCount(FundersCount, 0)
}
