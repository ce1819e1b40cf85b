package cmd

import (
	"context"
	"flag"

	"github.com/etnz/heath"
	"github.com/etnz/heath/renderer"
	"github.com/google/subcommands"
)

// dayCmd holds the flags for the 'day' subcommand.
type dayCmd struct {
	active    bool
	comments  bool
	byProject bool
	overview  bool
	watch     bool
}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "display the shifts of a day" }
func (*dayCmd) Usage() string {
	return `heath day [-a] [-c] [-p] [-o] [-w] [<day> [<month> [<year>]]]

  Displays the shifts of a single day, today by default.

  The overview shows when the day started, its lunch and, for a day in
  progress, the time at which eight hours are reached and the time at which
  the week is back in phase.
`
}

func (c *dayCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.active, "a", false, "Show the current duration of any shift in progress")
	f.BoolVar(&c.comments, "c", false, "Show the comment of the day")
	f.BoolVar(&c.byProject, "p", false, "Sum worked hours by project")
	f.BoolVar(&c.overview, "o", false, "Brief overview of the day")
	f.BoolVar(&c.watch, "w", false, "Keep running and render again when the ledger changes")
}

func (c *dayCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := today()
	if err != nil {
		return usage(err)
	}
	on, err := dayArgs(f.Args(), now)
	if err != nil {
		return usage(err)
	}
	opts := heath.ReportOptions{IncludeActive: c.active, IncludeComments: c.comments, ByProject: c.byProject}

	return runReport(ctx, c.watch, func(ledger *heath.Ledger) string {
		day := ledger.Day(on)
		if day == nil {
			return "No information for " + on.String() + ".\n"
		}
		if c.overview {
			o, _ := ledger.DayOverview(on)
			return renderer.DayOverviewMarkdown(o)
		}
		return renderer.DayMarkdown(day.Report(opts, ledger.Now()))
	})
}
