package main

import (
	"strconv"

	"fundme/sdk"
)

// stateSetIfChanged avoids unnecessary writes so we dont thrash storage fees.
func stateSetIfChanged(key, value string) {
	if existing := sdk.StateGetObject(key); existing != nil && *existing == value {
		return
	}
	sdk.StateSetObject(key, value)
}

// getCount reads the string counter under the key and defaults to zero.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("invalid counter " + key)
	}
	return n
}

// setCount stores uint64 counters as decimal strings; zero removes the key.
func setCount(key string, n uint64) {
	if n == 0 {
		sdk.StateDeleteObject(key)
		return
	}
	stateSetIfChanged(key, strconv.FormatUint(n, 10))
}
