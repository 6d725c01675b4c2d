package sdk

type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

// AssetDecimals is the number of fractional digits in amounts passed to the host.
// HIVE and HBD both settle in thousandths.
const AssetDecimals = 3

// String returns the raw ticker string for logging or host calls.
func (a Asset) String() string {
	return string(a)
}

// IsSupported reports whether the ledger accepts the asset for funding.
func (a Asset) IsSupported() bool {
	return a == AssetHive || a == AssetHbd
}
