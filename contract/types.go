package main

import (
	"errors"
	"strconv"
	"strings"

	"fundme/sdk"
)

// AmountScale is 10^sdk.AssetDecimals: "1.000" HIVE is stored as 1000.
const AmountScale = 1000

// Amount is an asset quantity in its smallest unit.
type Amount int64

var errInvalidAmount = errors.New("invalid amount")

// ParseAmount reads a fixed point string like "1.000" without going through floats,
// so intent limits map onto host units exactly.
// Example payload: ParseAmount("0.025") == 25
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, errInvalidAmount
	}
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > sdk.AssetDecimals {
		return 0, errInvalidAmount
	}
	frac += strings.Repeat("0", sdk.AssetDecimals-len(frac))
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errInvalidAmount
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, errInvalidAmount
	}
	if w > (1<<63-1-f)/AmountScale {
		return 0, errInvalidAmount
	}
	return Amount(w*AmountScale + f), nil
}

// String renders the amount with the asset precision, e.g. 1000 -> "1.000".
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	frac := strconv.FormatInt(v%AmountScale, 10)
	return sign + strconv.FormatInt(v/AmountScale, 10) + "." + strings.Repeat("0", sdk.AssetDecimals-len(frac)) + frac
}

// AmountToInt64 exposes the raw scaled int64 for Hive transfer functions.
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// ContractConfig is written once by contract_init.
type ContractConfig struct {
	Owner      sdk.Address
	PriceFeed  string
	Asset      sdk.Asset
	MinimumUSD uint64
}

type InitArgs struct {
	PriceFeed  string
	Asset      sdk.Asset
	MinimumUSD uint64
}

// Summary is the get_summary view.
type Summary struct {
	Owner       sdk.Address
	PriceFeed   string
	Asset       sdk.Asset
	MinimumUSD  uint64
	FunderCount uint64
	Balance     Amount
}

// AddressFromString converts a human string to the platform-specific address wrapper.
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
func AddressToString(a sdk.Address) string { return a.String() }
