package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fundme/pricefeed"
	"fundme/sdk"
)

// -----------------------------------------------------------------------------
// Round State
// -----------------------------------------------------------------------------

func requireInit() {
	if sdk.StateGetObject(pricefeed.DecimalsKey) == nil {
		sdk.Revert("feed not initialized", ErrNotInitialized)
	}
}

// latest returns the newest round, the zero round before the first report.
func latest() pricefeed.RoundData {
	ptr := sdk.StateGetObject(pricefeed.LatestRoundKey)
	if ptr == nil {
		return pricefeed.RoundData{}
	}
	round, err := pricefeed.DecodeRound(*ptr)
	if err != nil {
		sdk.Abort(err.Error())
	}
	return round
}

func updateAnswer(answer int64) pricefeed.RoundData {
	now := nowUnix()
	round := pricefeed.RoundData{
		RoundID:   latest().RoundID + 1,
		Answer:    answer,
		StartedAt: now,
		UpdatedAt: now,
	}
	round.AnsweredInRound = round.RoundID
	storeRound(round)
	return round
}

// storeRound keeps the round in history and as the latest report.
func storeRound(round pricefeed.RoundData) {
	encoded := pricefeed.EncodeRound(round)
	sdk.StateSetObject(pricefeed.RoundKey(round.RoundID), encoded)
	sdk.StateSetObject(pricefeed.LatestRoundKey, encoded)
	sdk.Log(fmt.Sprintf("ma|r:%d|a:%d|t:%d", round.RoundID, round.Answer, round.UpdatedAt))
}

// -----------------------------------------------------------------------------
// Payload Helpers
// -----------------------------------------------------------------------------

func unquote(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		if v, err := strconv.Unquote(raw); err == nil {
			return strings.TrimSpace(v)
		}
	}
	return raw
}

func requirePayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := unquote(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	return raw
}

func parseInt(val string, field string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
	if err != nil {
		sdk.Abort("invalid " + field)
	}
	return n
}

// -----------------------------------------------------------------------------
// Timestamp Helpers
// -----------------------------------------------------------------------------

// nowUnix returns the block timestamp as unix seconds.
func nowUnix() int64 {
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}
