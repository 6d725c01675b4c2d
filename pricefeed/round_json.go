package pricefeed

import (
	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// MarshalTinyJSON writes the round in the shape AggregatorV3 consumers expect.
func (r RoundData) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"roundId":`)
	out.Uint64(r.RoundID)
	out.RawString(`,"answer":`)
	out.Int64(r.Answer)
	out.RawString(`,"startedAt":`)
	out.Int64(r.StartedAt)
	out.RawString(`,"updatedAt":`)
	out.Int64(r.UpdatedAt)
	out.RawString(`,"answeredInRound":`)
	out.Uint64(r.AnsweredInRound)
	out.RawByte('}')
}

// UnmarshalTinyJSON is the reverse of MarshalTinyJSON.
func (r *RoundData) UnmarshalTinyJSON(in *jlexer.Lexer) {
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
		case "roundId":
			r.RoundID = in.Uint64()
		case "answer":
			r.Answer = in.Int64()
		case "startedAt":
			r.StartedAt = in.Int64()
		case "updatedAt":
			r.UpdatedAt = in.Int64()
		case "answeredInRound":
			r.AnsweredInRound = in.Uint64()
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

// RoundJSON renders a round for view calls.
func RoundJSON(r RoundData) string {
	b, err := tinyjson.Marshal(r)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ParseRoundJSON decodes a round returned by a view call.
func ParseRoundJSON(data []byte) (RoundData, error) {
	var r RoundData
	err := tinyjson.Unmarshal(data, &r)
	return r, err
}
