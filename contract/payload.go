package main

import (
	"fmt"
	"strconv"
	"strings"

	"fundme/sdk"
)

// decodeInitArgs unpacks "feedId|asset|minUsd". Only the feed id is required.
func decodeInitArgs(payload *string) *InitArgs {
	raw := unwrapPayload(payload, "price feed contract id required")
	parts := strings.Split(raw, "|")
	get := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	args := &InitArgs{
		PriceFeed:  get(0),
		Asset:      DefaultAsset,
		MinimumUSD: DefaultMinimumUSD,
	}
	if args.PriceFeed == "" {
		sdk.Abort("price feed contract id required")
	}
	if v := get(1); v != "" {
		args.Asset = sdk.Asset(strings.ToLower(v))
		if !args.Asset.IsSupported() {
			sdk.Revert(fmt.Sprintf("unsupported asset %s", v), ErrInvalidAsset)
		}
	}
	if v := parseUintField(get(2), "minimum usd"); v > 0 {
		args.MinimumUSD = v
	}
	return args
}

// unwrapPayload strips JSON string quoting the runner adds around raw payloads.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				raw = strings.TrimSpace(unquoted)
			} else {
				raw = strings.TrimSpace(raw[1 : len(raw)-1])
			}
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// parseUintField is used for indexes and config numbers; empty input yields zero.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseAddressField aborts on addresses the chain would never produce.
func parseAddressField(val string) sdk.Address {
	addr := AddressFromString(strings.TrimSpace(val))
	if !addr.IsValid() {
		sdk.Abort(fmt.Sprintf("invalid address %s", val))
	}
	return addr
}

// parseAmountField reads "1.000" style amounts.
func parseAmountField(val string, field string) Amount {
	amt, err := ParseAmount(val)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return amt
}
