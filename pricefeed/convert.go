package pricefeed

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"
)

// USDDecimals is the fixed point precision of converted values.
const USDDecimals = 18

// MaxDecimals bounds feed and asset precision so scaling stays well inside 256 bits.
const MaxDecimals = 36

var ErrNonPositiveAnswer = errors.New("price feed answer must be positive")

func pow10(n uint8) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(n)))
}

// ToUSD converts amount (with amountDecimals fractional digits) into USD with 18
// decimals using a feed answer that carries feedDecimals fractional digits.
// Results are truncated, never rounded up, so a threshold check cannot be passed by rounding.
func ToUSD(amount int64, amountDecimals uint8, answer int64, feedDecimals uint8) (*uint256.Int, error) {
	if amount < 0 {
		return nil, fmt.Errorf("negative amount %d", amount)
	}
	if answer <= 0 {
		return nil, ErrNonPositiveAnswer
	}
	if amountDecimals > MaxDecimals || feedDecimals > MaxDecimals {
		return nil, fmt.Errorf("decimals out of range: amount %d, feed %d", amountDecimals, feedDecimals)
	}
	v := new(uint256.Int).Mul(uint256.NewInt(uint64(amount)), uint256.NewInt(uint64(answer)))
	if feedDecimals <= USDDecimals {
		v.Mul(v, pow10(USDDecimals-feedDecimals))
	} else {
		v.Div(v, pow10(feedDecimals-USDDecimals))
	}
	v.Div(v, pow10(amountDecimals))
	return v, nil
}

// WholeUSD returns n dollars in 18 decimal fixed point.
func WholeUSD(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), pow10(USDDecimals))
}

// FormatUSD renders an 18 decimal value with cent precision (truncated), e.g. "2000.00".
func FormatUSD(v *uint256.Int) string {
	one := pow10(USDDecimals)
	whole := new(uint256.Int).Div(v, one)
	rest := new(uint256.Int).Mod(v, one)
	cents := rest.Div(rest, pow10(USDDecimals-2)).Uint64()
	if cents < 10 {
		return whole.Dec() + ".0" + strconv.FormatUint(cents, 10)
	}
	return whole.Dec() + "." + strconv.FormatUint(cents, 10)
}
