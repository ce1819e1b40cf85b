package cmd

import (
	"context"
	"flag"

	"github.com/etnz/heath"
	"github.com/google/subcommands"
)

// intervalCmd holds the flags for the 'interval' subcommand.
type intervalCmd struct {
	reportFlags
}

func (*intervalCmd) Name() string     { return "interval" }
func (*intervalCmd) Synopsis() string { return "display a report between two dates" }
func (*intervalCmd) Usage() string {
	return `heath interval [-a] [-c] [-p|-P] [-r] [-s] [-o] [-w] <from> <to>

  Displays the days from <from> to <to>, both included. Dates are written
  YYYY-MM-DD.
`
}

func (c *intervalCmd) SetFlags(f *flag.FlagSet) { c.reportFlags.SetFlags(f, "interval") }

func (c *intervalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := intervalArgs(f.Args())
	if err != nil {
		return usage(err)
	}
	return runReport(ctx, c.watch, func(ledger *heath.Ledger) string {
		return c.markdown(ledger.Interval(r.From, r.To), ledger.Now())
	})
}
