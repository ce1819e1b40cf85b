package cmd

import (
	"context"
	"flag"

	"github.com/etnz/heath"
	"github.com/google/subcommands"
)

// monthCmd holds the flags for the 'month' subcommand.
type monthCmd struct {
	reportFlags
}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "display a monthly report" }
func (*monthCmd) Usage() string {
	return `heath month [-a] [-c] [-p|-P] [-r] [-s] [-o] [-w] [<month> [<year>]]

  Displays the days of a month, the latest month of the ledger by default.
  The year defaults to the current one.
`
}

func (c *monthCmd) SetFlags(f *flag.FlagSet) { c.reportFlags.SetFlags(f, "month") }

func (c *monthCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := today()
	if err != nil {
		return usage(err)
	}
	year, month, given, err := monthArgs(f.Args(), now)
	if err != nil {
		return usage(err)
	}
	return runReport(ctx, c.watch, func(ledger *heath.Ledger) string {
		y, m := year, month
		if cur := ledger.CurrentMonth(); !given && cur != nil {
			y, m = cur.Year, cur.Month
		}
		return c.markdown(ledger.MonthPeriod(y, m), ledger.Now())
	})
}
