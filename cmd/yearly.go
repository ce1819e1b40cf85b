package cmd

import (
	"context"
	"flag"

	"github.com/etnz/heath"
	"github.com/google/subcommands"
)

// yearCmd holds the flags for the 'year' subcommand.
type yearCmd struct {
	reportFlags
}

func (*yearCmd) Name() string     { return "year" }
func (*yearCmd) Synopsis() string { return "display a yearly report" }
func (*yearCmd) Usage() string {
	return `heath year [-a] [-c] [-p|-P] [-r] [-s] [-o] [-w] [<year>]

  Displays the days of a year, the current one by default.
`
}

func (c *yearCmd) SetFlags(f *flag.FlagSet) { c.reportFlags.SetFlags(f, "year") }

func (c *yearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := today()
	if err != nil {
		return usage(err)
	}
	year, err := yearArgs(f.Args(), now)
	if err != nil {
		return usage(err)
	}
	return runReport(ctx, c.watch, func(ledger *heath.Ledger) string {
		return c.markdown(ledger.Year(year), ledger.Now())
	})
}
