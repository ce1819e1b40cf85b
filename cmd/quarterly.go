package cmd

import (
	"context"
	"flag"

	"github.com/etnz/heath"
	"github.com/google/subcommands"
)

type quarterCmd struct {
	reportFlags
}

func (*quarterCmd) Name() string     { return "quarter" }
func (*quarterCmd) Synopsis() string { return "display a quarterly report" }
func (*quarterCmd) Usage() string {
	return `heath quarter [-a] [-c] [-p|-P] [-r] [-s] [-o] [-w] [<quarter> [<year>]]

  Displays the days of a calendar quarter, 1 to 4, the current one by default.

Usage Examples:
$ heath quarter -P 1 2022
`
}

func (c *quarterCmd) SetFlags(f *flag.FlagSet) { c.reportFlags.SetFlags(f, "quarter") }

func (c *quarterCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := today()
	if err != nil {
		return usage(err)
	}
	year, quarter, err := quarterArgs(f.Args(), now)
	if err != nil {
		return usage(err)
	}
	return runReport(ctx, c.watch, func(ledger *heath.Ledger) string {
		return c.markdown(ledger.Quarter(year, quarter), ledger.Now())
	})
}
