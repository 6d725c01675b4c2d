// Package events decodes the pipe-delimited log lines emitted by the fundme and mock
// feed contracts, e.g. "f|by:hive:alice|am:1000|as:hive|usd:2000000000000000000000".
package events

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

type Kind string

const (
	KindInit          Kind = "fi"
	KindFunded        Kind = "f"
	KindWithdrawn     Kind = "w"
	KindFeedInit      Kind = "mi"
	KindAnswerUpdated Kind = "ma"
)

var (
	ErrMalformed    = errors.New("malformed event")
	ErrMissingField = errors.New("missing event field")
	ErrWrongKind    = errors.New("wrong event kind")
)

// Event is one decoded log line. Field values are kept as raw strings.
type Event struct {
	Kind   Kind
	Fields map[string]string
	Raw    string
}

// Parse splits "kind|key:value|key:value". Values may contain ':' (addresses do),
// only the first ':' separates key from value.
func Parse(line string) (Event, error) {
	line = strings.TrimSpace(line)
	parts := strings.Split(line, "|")
	if len(parts) < 2 || parts[0] == "" {
		return Event{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	ev := Event{Kind: Kind(parts[0]), Fields: make(map[string]string, len(parts)-1), Raw: line}
	for _, p := range parts[1:] {
		k, v, ok := strings.Cut(p, ":")
		if !ok || k == "" {
			return Event{}, fmt.Errorf("%w: field %q in %q", ErrMalformed, p, line)
		}
		ev.Fields[k] = v
	}
	return ev, nil
}

func (e Event) field(name string) (string, error) {
	v, ok := e.Fields[name]
	if !ok {
		return "", fmt.Errorf("%w: %s in %q", ErrMissingField, name, e.Raw)
	}
	return v, nil
}

func (e Event) int64Field(name string) (int64, error) {
	v, err := e.field(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformed, name, v)
	}
	return n, nil
}

func (e Event) expect(k Kind) error {
	if e.Kind != k {
		return fmt.Errorf("%w: want %s, got %s", ErrWrongKind, k, e.Kind)
	}
	return nil
}

// Initialized is the fi event.
type Initialized struct {
	Owner      string
	PriceFeed  string
	Asset      string
	MinimumUSD uint64
}

// Funded is the f event.
type Funded struct {
	Funder string
	Amount int64
	Asset  string
	USD    *uint256.Int
}

// Withdrawn is the w event.
type Withdrawn struct {
	Owner   string
	Amount  int64
	Asset   string
	Funders int
}

func (e Event) Initialized() (Initialized, error) {
	if err := e.expect(KindInit); err != nil {
		return Initialized{}, err
	}
	var out Initialized
	var err error
	if out.Owner, err = e.field("by"); err != nil {
		return Initialized{}, err
	}
	if out.PriceFeed, err = e.field("feed"); err != nil {
		return Initialized{}, err
	}
	if out.Asset, err = e.field("as"); err != nil {
		return Initialized{}, err
	}
	minUSD, err := e.int64Field("min")
	if err != nil {
		return Initialized{}, err
	}
	if minUSD < 0 {
		return Initialized{}, fmt.Errorf("%w: negative minimum", ErrMalformed)
	}
	out.MinimumUSD = uint64(minUSD)
	return out, nil
}

func (e Event) Funded() (Funded, error) {
	if err := e.expect(KindFunded); err != nil {
		return Funded{}, err
	}
	var out Funded
	var err error
	if out.Funder, err = e.field("by"); err != nil {
		return Funded{}, err
	}
	if out.Amount, err = e.int64Field("am"); err != nil {
		return Funded{}, err
	}
	if out.Asset, err = e.field("as"); err != nil {
		return Funded{}, err
	}
	usd, err := e.field("usd")
	if err != nil {
		return Funded{}, err
	}
	if out.USD, err = uint256.FromDecimal(usd); err != nil {
		return Funded{}, fmt.Errorf("%w: usd=%q", ErrMalformed, usd)
	}
	return out, nil
}

func (e Event) Withdrawn() (Withdrawn, error) {
	if err := e.expect(KindWithdrawn); err != nil {
		return Withdrawn{}, err
	}
	var out Withdrawn
	var err error
	if out.Owner, err = e.field("to"); err != nil {
		return Withdrawn{}, err
	}
	if out.Amount, err = e.int64Field("am"); err != nil {
		return Withdrawn{}, err
	}
	if out.Asset, err = e.field("as"); err != nil {
		return Withdrawn{}, err
	}
	n, err := e.int64Field("n")
	if err != nil {
		return Withdrawn{}, err
	}
	out.Funders = int(n)
	return out, nil
}
