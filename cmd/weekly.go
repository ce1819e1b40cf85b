package cmd

import (
	"context"
	"flag"

	"github.com/etnz/heath"
	"github.com/google/subcommands"
)

// weekCmd holds the flags for the 'week' subcommand.
type weekCmd struct {
	reportFlags
}

func (*weekCmd) Name() string     { return "week" }
func (*weekCmd) Synopsis() string { return "display a weekly report" }
func (*weekCmd) Usage() string {
	return `heath week [-a] [-c] [-p|-P] [-r] [-s] [-o] [-w] [<week> [<year>]]

  Displays the days of an ISO week, the current one by default.
`
}

func (c *weekCmd) SetFlags(f *flag.FlagSet) { c.reportFlags.SetFlags(f, "week") }

func (c *weekCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := today()
	if err != nil {
		return usage(err)
	}
	year, week, err := weekArgs(f.Args(), now)
	if err != nil {
		return usage(err)
	}
	return runReport(ctx, c.watch, func(ledger *heath.Ledger) string {
		return c.markdown(ledger.Week(year, week), ledger.Now())
	})
}
