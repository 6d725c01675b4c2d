////////////////////////////////////////////////////////////////////////////////
// MockFeed: a settable price feed for local networks
// Publishes the pricefeed state layout so ledgers can read it without a call.
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"
	"strconv"
	"strings"

	"fundme/pricefeed"
	"fundme/sdk"
)

const (
	ErrAlreadyInitialized = "already_initialized"
	ErrNotInitialized     = "not_initialized"
	ErrNoData             = "no_data"
)

// main is left empty on purpose
func main() {

}

// ContractInit publishes decimals, version and description and reports the first answer.
// Payload: "decimals|initialAnswer", both optional.
func ContractInit(payload *string) *string {
	if sdk.StateGetObject(pricefeed.DecimalsKey) != nil {
		sdk.Revert("feed already initialized", ErrAlreadyInitialized)
	}
	decimals := pricefeed.DefaultDecimals
	answer := pricefeed.DefaultInitialAnswer

	var parts []string
	if payload != nil {
		if raw := unquote(*payload); raw != "" {
			parts = strings.Split(raw, "|")
		}
	}
	if len(parts) > 0 && strings.TrimSpace(parts[0]) != "" {
		d, err := pricefeed.ParseDecimals(parts[0])
		if err != nil {
			sdk.Abort(err.Error())
		}
		decimals = d
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		answer = parseInt(parts[1], "initial answer")
	}

	sdk.StateSetObject(pricefeed.DecimalsKey, strconv.FormatUint(uint64(decimals), 10))
	sdk.StateSetObject(pricefeed.VersionKey, strconv.FormatUint(pricefeed.MockVersion, 10))
	sdk.StateSetObject(pricefeed.DescriptionKey, pricefeed.MockDescription)
	sdk.Log(fmt.Sprintf("mi|d:%d|a:%d", decimals, answer))

	round := updateAnswer(answer)
	return strptr(pricefeed.RoundJSON(round))
}

// UpdateAnswer reports a new answer as the next round, stamped with the block time.
func UpdateAnswer(payload *string) *string {
	requireInit()
	answer := parseInt(requirePayload(payload, "answer required"), "answer")
	return strptr(pricefeed.RoundJSON(updateAnswer(answer)))
}

// UpdateRoundData overwrites a round explicitly and makes it the latest.
// Payload: "roundId|answer|updatedAt|startedAt".
func UpdateRoundData(payload *string) *string {
	requireInit()
	parts := strings.Split(requirePayload(payload, "round data required"), "|")
	if len(parts) != 4 {
		sdk.Abort("round data needs roundId|answer|updatedAt|startedAt")
	}
	roundID, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		sdk.Abort("invalid round id")
	}
	round := pricefeed.RoundData{
		RoundID:         roundID,
		Answer:          parseInt(parts[1], "answer"),
		UpdatedAt:       parseInt(parts[2], "updatedAt"),
		StartedAt:       parseInt(parts[3], "startedAt"),
		AnsweredInRound: roundID,
	}
	storeRound(round)
	return strptr(pricefeed.RoundJSON(round))
}

// LatestRoundData returns the newest round as JSON.
func LatestRoundData(_ *string) *string {
	requireInit()
	return strptr(pricefeed.RoundJSON(latest()))
}

// GetRoundData returns a historical round as JSON.
func GetRoundData(payload *string) *string {
	requireInit()
	raw := requirePayload(payload, "round id required")
	roundID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		sdk.Abort("invalid round id")
	}
	ptr := sdk.StateGetObject(pricefeed.RoundKey(roundID))
	if ptr == nil {
		sdk.Revert("No data present", ErrNoData)
	}
	round, err := pricefeed.DecodeRound(*ptr)
	if err != nil {
		sdk.Abort(err.Error())
	}
	return strptr(pricefeed.RoundJSON(round))
}

func Decimals(_ *string) *string {
	requireInit()
	return sdk.StateGetObject(pricefeed.DecimalsKey)
}

func Description(_ *string) *string {
	requireInit()
	return sdk.StateGetObject(pricefeed.DescriptionKey)
}

func Version(_ *string) *string {
	requireInit()
	return sdk.StateGetObject(pricefeed.VersionKey)
}

// Convenience helper
func strptr(s string) *string { return &s }
