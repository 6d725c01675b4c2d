package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type AddressType string

const (
	AddressTypeEVM      AddressType = "evm"
	AddressTypeKey      AddressType = "key"
	AddressTypeHive     AddressType = "hive"
	AddressTypeContract AddressType = "contract"
	AddressTypeSystem   AddressType = "system"
	AddressTypeUnknown  AddressType = "unknown"
)

type Address string

// ContractAddress builds the ledger address under which a contract holds its funds.
// Example payload: sdk.ContractAddress("vsc1fundme")
func ContractAddress(contractID string) Address {
	return Address("contract:" + contractID)
}

// String returns the literal representation (like hive:alice) of the address.
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix to tell user, contract and system addresses apart.
func (a Address) Domain() AddressDomain {
	switch {
	case strings.HasPrefix(a.String(), "system:"):
		return AddressDomainSystem
	case strings.HasPrefix(a.String(), "contract:"):
		return AddressDomainContract
	default:
		return AddressDomainUser
	}
}

// Type inspects the DID prefix to categorize the address (evm, key, hive,...).
func (a Address) Type() AddressType {
	s := a.String()
	switch {
	case strings.HasPrefix(s, "did:pkh:eip155"):
		return AddressTypeEVM
	case strings.HasPrefix(s, "did:key:"):
		return AddressTypeKey
	case strings.HasPrefix(s, "hive:"):
		return AddressTypeHive
	case strings.HasPrefix(s, "contract:"):
		return AddressTypeContract
	case strings.HasPrefix(s, "system:"):
		return AddressTypeSystem
	default:
		return AddressTypeUnknown
	}
}

// IsValid is a light sanity check: the prefix must be known and something must follow it.
func (a Address) IsValid() bool {
	if a.Type() == AddressTypeUnknown {
		return false
	}
	_, rest, found := strings.Cut(a.String(), ":")
	return found && strings.TrimLeft(rest, ":") != ""
}
