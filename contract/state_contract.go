package main

import (
	"strconv"
	"strings"

	"fundme/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// requireConfig reverts if the contract has not been initialized and returns the config otherwise.
func requireConfig() *ContractConfig {
	cfg := loadContractConfig()
	if cfg == nil {
		sdk.Revert("contract not initialized", ErrNotInitialized)
	}
	return cfg
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg := decodeContractConfig(*ptr)
	if cfg == nil {
		sdk.Abort("corrupt contract config")
	}
	return cfg
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, encodeContractConfig(cfg))
}

// isContractOwner returns true if the given address is the contract owner.
func isContractOwner(cfg *ContractConfig, addr sdk.Address) bool {
	return cfg != nil && cfg.Owner == addr
}

// -----------------------------------------------------------------------------
// Contract Config Encoding
// -----------------------------------------------------------------------------

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: owner|feed|asset|minUsd
func encodeContractConfig(cfg *ContractConfig) string {
	return cfg.Owner.String() + "|" +
		cfg.PriceFeed + "|" +
		cfg.Asset.String() + "|" +
		strconv.FormatUint(cfg.MinimumUSD, 10)
}

// decodeContractConfig deserializes a pipe-delimited string to ContractConfig.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) != 4 {
		return nil
	}
	minUSD, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return nil
	}
	return &ContractConfig{
		Owner:      AddressFromString(parts[0]),
		PriceFeed:  parts[1],
		Asset:      sdk.Asset(parts[2]),
		MinimumUSD: minUSD,
	}
}
