package main

import (
	"fundme/sdk"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// MarshalTinyJSON keeps the view encoder reflection free for tinygo.
func (s Summary) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"owner":`)
	out.String(s.Owner.String())
	out.RawString(`,"priceFeed":`)
	out.String(s.PriceFeed)
	out.RawString(`,"asset":`)
	out.String(s.Asset.String())
	out.RawString(`,"minimumUsd":`)
	out.Uint64(s.MinimumUSD)
	out.RawString(`,"funderCount":`)
	out.Uint64(s.FunderCount)
	out.RawString(`,"balance":`)
	out.Int64(AmountToInt64(s.Balance))
	out.RawByte('}')
}

// UnmarshalTinyJSON lets clients and tests read the view back.
func (s *Summary) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "owner":
			s.Owner = sdk.Address(in.String())
		case "priceFeed":
			s.PriceFeed = in.String()
		case "asset":
			s.Asset = sdk.Asset(in.String())
		case "minimumUsd":
			s.MinimumUSD = in.Uint64()
		case "funderCount":
			s.FunderCount = in.Uint64()
		case "balance":
			s.Balance = Amount(in.Int64())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func encodeSummary(s *Summary) string {
	b, err := tinyjson.Marshal(s)
	if err != nil {
		sdk.Abort("failed to marshal summary: " + err.Error())
	}
	return string(b)
}
