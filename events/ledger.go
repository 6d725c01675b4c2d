package events

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jwriter"
)

var (
	ErrReplay          = errors.New("inconsistent event stream")
	ErrBalanceMismatch = errors.New("ledger balance mismatch")
)

// Ledger is the funding state rebuilt from events alone.
type Ledger struct {
	Initialized    bool
	Owner          string
	PriceFeed      string
	Asset          string
	MinimumUSD     uint64
	Balance        int64
	TotalFunded    int64
	TotalWithdrawn int64
	Withdrawals    int

	funded  map[string]int64
	funders []string
}

func NewLedger() *Ledger {
	return &Ledger{funded: map[string]int64{}}
}

// Replay applies every non-empty line in order.
func Replay(lines []string) (*Ledger, error) {
	l := NewLedger()
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ev, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if err := l.Apply(ev); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return l, nil
}

// Apply folds one event into the ledger. Feed events are ignored.
func (l *Ledger) Apply(ev Event) error {
	switch ev.Kind {
	case KindInit:
		init, err := ev.Initialized()
		if err != nil {
			return err
		}
		if l.Initialized {
			return fmt.Errorf("%w: initialized twice", ErrReplay)
		}
		l.Initialized = true
		l.Owner = init.Owner
		l.PriceFeed = init.PriceFeed
		l.Asset = init.Asset
		l.MinimumUSD = init.MinimumUSD
	case KindFunded:
		f, err := ev.Funded()
		if err != nil {
			return err
		}
		if !l.Initialized {
			return fmt.Errorf("%w: funded before init", ErrReplay)
		}
		if f.Asset != l.Asset {
			return fmt.Errorf("%w: funded in %s, ledger is %s", ErrReplay, f.Asset, l.Asset)
		}
		if f.Amount <= 0 {
			return fmt.Errorf("%w: non-positive contribution %d", ErrReplay, f.Amount)
		}
		l.funded[f.Funder] += f.Amount
		l.funders = append(l.funders, f.Funder)
		l.Balance += f.Amount
		l.TotalFunded += f.Amount
	case KindWithdrawn:
		w, err := ev.Withdrawn()
		if err != nil {
			return err
		}
		if !l.Initialized {
			return fmt.Errorf("%w: withdraw before init", ErrReplay)
		}
		if w.Owner != l.Owner {
			return fmt.Errorf("%w: withdraw to %s, owner is %s", ErrReplay, w.Owner, l.Owner)
		}
		if w.Funders != len(l.funders) {
			return fmt.Errorf("%w: withdraw reset %d funders, ledger has %d", ErrReplay, w.Funders, len(l.funders))
		}
		// the contract drains its real balance, which may include transfers that bypassed fund
		if w.Amount < l.Balance {
			return fmt.Errorf("%w: withdrew %d of %d funded", ErrReplay, w.Amount, l.Balance)
		}
		l.funded = map[string]int64{}
		l.funders = nil
		l.Balance = 0
		l.TotalWithdrawn += w.Amount
		l.Withdrawals++
	}
	return nil
}

// AmountFunded is the cumulative contribution of addr since the last withdrawal.
func (l *Ledger) AmountFunded(addr string) int64 {
	return l.funded[addr]
}

// Funders returns the funder list since the last withdrawal, duplicates included.
func (l *Ledger) Funders() []string {
	return append([]string(nil), l.funders...)
}

// Check verifies that the contribution records add up to the funded balance.
func (l *Ledger) Check() error {
	var sum int64
	for _, v := range l.funded {
		sum += v
	}
	if sum != l.Balance {
		return fmt.Errorf("%w: records sum to %d, balance is %d", ErrBalanceMismatch, sum, l.Balance)
	}
	return nil
}

// Verify compares the replayed balance with one observed on chain.
func (l *Ledger) Verify(observed int64) error {
	if err := l.Check(); err != nil {
		return err
	}
	if observed != l.Balance {
		return fmt.Errorf("%w: replayed %d, observed %d", ErrBalanceMismatch, l.Balance, observed)
	}
	return nil
}

// MarshalTinyJSON writes the ledger with funded addresses sorted for stable output.
func (l *Ledger) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"owner":`)
	out.String(l.Owner)
	out.RawString(`,"priceFeed":`)
	out.String(l.PriceFeed)
	out.RawString(`,"asset":`)
	out.String(l.Asset)
	out.RawString(`,"minimumUsd":`)
	out.Uint64(l.MinimumUSD)
	out.RawString(`,"balance":`)
	out.Int64(l.Balance)
	out.RawString(`,"totalFunded":`)
	out.Int64(l.TotalFunded)
	out.RawString(`,"totalWithdrawn":`)
	out.Int64(l.TotalWithdrawn)
	out.RawString(`,"withdrawals":`)
	out.Int(l.Withdrawals)
	out.RawString(`,"funders":[`)
	for i, f := range l.funders {
		if i > 0 {
			out.RawByte(',')
		}
		out.String(f)
	}
	out.RawString(`],"funded":{`)
	addrs := make([]string, 0, len(l.funded))
	for a := range l.funded {
		addrs = append(addrs, a)
	}
	sort.Strings(addrs)
	for i, a := range addrs {
		if i > 0 {
			out.RawByte(',')
		}
		out.String(a)
		out.RawByte(':')
		out.Int64(l.funded[a])
	}
	out.RawString(`}}`)
}

// JSON renders the ledger for tooling.
func (l *Ledger) JSON() ([]byte, error) {
	return tinyjson.Marshal(l)
}
