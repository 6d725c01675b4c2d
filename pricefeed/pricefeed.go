// Package pricefeed holds the public state layout shared by price feed contracts and
// their readers. Readers fetch these keys with a foreign state read, so the names are
// part of the contract's interface and must not change.
package pricefeed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// State keys a feed contract exposes.
const (
	DecimalsKey    = "decimals"
	LatestRoundKey = "latest"
	VersionKey     = "version"
	DescriptionKey = "description"
	roundKeyPrefix = "round:"
)

// Defaults used for local networks, matching the values the mock is deployed with.
const (
	DefaultDecimals      uint8 = 8
	DefaultInitialAnswer int64 = 2000_00000000
	MockVersion          uint64 = 0
	MockDescription             = "v0.6/tests/MockV3Aggregator.sol"
)

var ErrMalformedRound = errors.New("malformed round data")

// RoundData is one price report.
type RoundData struct {
	RoundID         uint64
	Answer          int64
	StartedAt       int64
	UpdatedAt       int64
	AnsweredInRound uint64
}

// RoundKey is the state key under which a historical round is kept.
func RoundKey(roundID uint64) string {
	return roundKeyPrefix + strconv.FormatUint(roundID, 10)
}

// EncodeRound serializes a round as roundId|answer|startedAt|updatedAt|answeredInRound.
func EncodeRound(r RoundData) string {
	return strconv.FormatUint(r.RoundID, 10) + "|" +
		strconv.FormatInt(r.Answer, 10) + "|" +
		strconv.FormatInt(r.StartedAt, 10) + "|" +
		strconv.FormatInt(r.UpdatedAt, 10) + "|" +
		strconv.FormatUint(r.AnsweredInRound, 10)
}

// DecodeRound parses the output of EncodeRound.
func DecodeRound(data string) (RoundData, error) {
	parts := strings.Split(data, "|")
	if len(parts) != 5 {
		return RoundData{}, fmt.Errorf("%w: want 5 fields, got %d", ErrMalformedRound, len(parts))
	}
	var (
		r   RoundData
		err error
	)
	if r.RoundID, err = strconv.ParseUint(parts[0], 10, 64); err != nil {
		return RoundData{}, fmt.Errorf("%w: round id: %v", ErrMalformedRound, err)
	}
	if r.Answer, err = strconv.ParseInt(parts[1], 10, 64); err != nil {
		return RoundData{}, fmt.Errorf("%w: answer: %v", ErrMalformedRound, err)
	}
	if r.StartedAt, err = strconv.ParseInt(parts[2], 10, 64); err != nil {
		return RoundData{}, fmt.Errorf("%w: started at: %v", ErrMalformedRound, err)
	}
	if r.UpdatedAt, err = strconv.ParseInt(parts[3], 10, 64); err != nil {
		return RoundData{}, fmt.Errorf("%w: updated at: %v", ErrMalformedRound, err)
	}
	if r.AnsweredInRound, err = strconv.ParseUint(parts[4], 10, 64); err != nil {
		return RoundData{}, fmt.Errorf("%w: answered in round: %v", ErrMalformedRound, err)
	}
	return r, nil
}

// ParseDecimals reads the decimals key value.
func ParseDecimals(data string) (uint8, error) {
	d, err := strconv.ParseUint(strings.TrimSpace(data), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid decimals %q: %w", data, err)
	}
	if d > MaxDecimals {
		return 0, fmt.Errorf("decimals %d above %d", d, MaxDecimals)
	}
	return uint8(d), nil
}
