package main

import "fundme/sdk"

// -----------------------------------------------------------------------------
// Contract Defaults
// -----------------------------------------------------------------------------

const (
	// DefaultAsset is accepted for funding when contract_init does not name one.
	DefaultAsset = sdk.AssetHive
	// DefaultMinimumUSD is the smallest contribution, in whole USD, the ledger accepts.
	DefaultMinimumUSD uint64 = 50
)

// -----------------------------------------------------------------------------
// Storage Keys
// -----------------------------------------------------------------------------

const (
	// ContractConfigKey holds owner|feed|asset|minUsd written once at init.
	ContractConfigKey = "cfg"
	// FundersCount holds the length of the funder list.
	FundersCount = "count:f"
)

const (
	// kFunded maps an address to its cumulative contribution.
	kFunded byte = 0x01
	// kFunder stores funder list slots indexed by position.
	kFunder byte = 0x02
)

// -----------------------------------------------------------------------------
// Revert Symbols
// -----------------------------------------------------------------------------

const (
	ErrInsufficientContribution = "insufficient_contribution"
	ErrUnauthorized             = "unauthorized"
	ErrIndexOutOfRange          = "index_out_of_range"
	ErrOracle                   = "oracle_error"
	ErrInvalidAsset             = "invalid_asset"
	ErrNotInitialized           = "not_initialized"
	ErrAlreadyInitialized       = "already_initialized"
	// transfer failures are raised by the host as "transfer_failure" and roll back the call
)
