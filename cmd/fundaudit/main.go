package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/rs/zerolog"

	"fundme/events"
)

const version = "0.1.0"

const usage = `FundMe ledger audit.

Rebuilds contributions, funders and balance from exported contract logs.

Usage:
  fundaudit replay <logfile> [--json] [--verbose]
  fundaudit check <logfile> --balance=<units> [--verbose]
  fundaudit -h | --help
  fundaudit --version

Options:
  -h --help           Show this screen.
  --version           Show version.
  --json              Print the rebuilt ledger as JSON.
  --balance=<units>   Balance observed on chain, in raw asset units.
  -v --verbose        Log every applied event.`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		panic(err)
	}
	verbose, _ := opts.Bool("--verbose")
	logger := newLogger(os.Stderr, verbose)

	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("audit failed")
		os.Exit(1)
	}
}

func newLogger(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func run(opts docopt.Opts, out io.Writer, l zerolog.Logger) error {
	path, err := opts.String("<logfile>")
	if err != nil {
		return err
	}
	lines, err := readLogLines(path)
	if err != nil {
		return err
	}
	l.Debug().Msgf("read %d lines from %s", len(lines), path)

	ledger := events.NewLedger()
	for i, line := range lines {
		ev, err := events.Parse(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		if err := ledger.Apply(ev); err != nil {
			return fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		l.Debug().Str("kind", string(ev.Kind)).Int("line", i+1).Msg("applied")
	}

	if check, _ := opts.Bool("check"); check {
		raw, err := opts.String("--balance")
		if err != nil {
			return err
		}
		observed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid --balance %q", raw)
		}
		if err := ledger.Verify(observed); err != nil {
			return err
		}
		l.Info().Msgf("ledger consistent: %d %s held for %d funders", ledger.Balance, ledger.Asset, len(ledger.Funders()))
		fmt.Fprintln(out, "ok")
		return nil
	}

	if err := ledger.Check(); err != nil {
		return err
	}
	if asJSON, _ := opts.Bool("--json"); asJSON {
		b, err := ledger.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}
	printLedger(out, ledger)
	return nil
}

// readLogLines keeps event lines only. Runner output prefixes them with "[log] "
// and interleaves other chatter, which is dropped.
func readLogLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimPrefix(line, "[log] ")
		if !strings.Contains(line, "|") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func printLedger(out io.Writer, l *events.Ledger) {
	fmt.Fprintf(out, "owner:      %s\n", l.Owner)
	fmt.Fprintf(out, "price feed: %s\n", l.PriceFeed)
	fmt.Fprintf(out, "minimum:    %d USD\n", l.MinimumUSD)
	fmt.Fprintf(out, "balance:    %d %s\n", l.Balance, l.Asset)
	fmt.Fprintf(out, "withdrawn:  %d in %d withdrawals\n", l.TotalWithdrawn, l.Withdrawals)
	funders := l.Funders()
	fmt.Fprintf(out, "funders:    %d\n", len(funders))
	seen := map[string]bool{}
	for _, f := range funders {
		if seen[f] {
			continue
		}
		seen[f] = true
		fmt.Fprintf(out, "  %s %d\n", f, l.AmountFunded(f))
	}
}
