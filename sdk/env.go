package sdk

import (
	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
)

type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Env is the execution snapshot the host hands to every call.
type Env struct {
	ContractId  string
	TxId        string
	Index       int64
	OpIndex     int64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Caller      Address
	Intents     []Intent
}

// ParseEnv decodes the flat env blob returned by system.get_env.
func ParseEnv(data []byte) (Env, error) {
	var env Env
	if err := tinyjson.Unmarshal(data, &env); err != nil {
		return Env{}, err
	}
	return env, nil
}

// UnmarshalTinyJSON reads the dotted env keys. Unknown keys are skipped so newer hosts
// can add fields without breaking deployed contracts.
func (env *Env) UnmarshalTinyJSON(in *jlexer.Lexer) {
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
		case "contract.id":
			env.ContractId = in.String()
		case "tx.id":
			env.TxId = in.String()
		case "tx.index":
			env.Index = in.Int64()
		case "tx.op_index":
			env.OpIndex = in.Int64()
		case "block.id":
			env.BlockId = in.String()
		case "block.height":
			env.BlockHeight = in.Uint64()
		case "block.timestamp":
			env.Timestamp = in.String()
		case "msg.sender":
			env.Sender.Address = Address(in.String())
		case "msg.required_auths":
			env.Sender.RequiredAuths = readAddresses(in)
		case "msg.required_posting_auths":
			env.Sender.RequiredPostingAuths = readAddresses(in)
		case "msg.caller":
			env.Caller = Address(in.String())
		case "intents":
			env.Intents = readIntents(in)
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

func readAddresses(in *jlexer.Lexer) []Address {
	out := make([]Address, 0)
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, Address(in.String()))
		in.WantComma()
	}
	in.Delim(']')
	return out
}

func readIntents(in *jlexer.Lexer) []Intent {
	out := make([]Intent, 0)
	in.Delim('[')
	for !in.IsDelim(']') {
		var intent Intent
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
			case "type":
				intent.Type = in.String()
			case "args":
				intent.Args = readStringMap(in)
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
		out = append(out, intent)
		in.WantComma()
	}
	in.Delim(']')
	return out
}

func readStringMap(in *jlexer.Lexer) map[string]string {
	out := make(map[string]string)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		out[key] = in.String()
		in.WantComma()
	}
	in.Delim('}')
	return out
}
