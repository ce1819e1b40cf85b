package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/heath"
	"github.com/etnz/heath/date"
	"github.com/etnz/heath/renderer"
	"github.com/google/subcommands"
)

func liveCommands() []subcommands.Command {
	return []subcommands.Command{&startCmd{}, &lunchCmd{}, &stopCmd{}, &switchCmd{}, &alldayCmd{}, &commentCmd{}}
}

// liveFlags holds the flags shared by the commands changing the ledger.
type liveFlags struct {
	dryRun  bool
	verbose bool
}

func (l *liveFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&l.dryRun, "n", false, "Do not write the change, show the result instead")
	f.BoolVar(&l.verbose, "v", false, "Show the day after the change")
}

// change is a mutation of the ledger. It returns the month to write back,
// the day to show and a one line description of what was done.
type change func(l *heath.Ledger) (m *heath.Month, on date.Date, done string, err error)

// apply loads the ledger, applies c and writes the changed month back.
func (l *liveFlags) apply(c change) subcommands.ExitStatus {
	folder, ledger, err := openLedger()
	if err != nil {
		return fail(err)
	}
	m, on, done, err := c(ledger)
	if err != nil {
		return fail(err)
	}
	if l.dryRun {
		printInfo("dry run, not written: %s", done)
	} else {
		if err := saveMonth(folder, m); err != nil {
			return fail(err)
		}
		printDone("%s", done)
	}
	if l.verbose || l.dryRun {
		if day := ledger.Day(on); day != nil {
			printMarkdown(renderer.DayMarkdown(day.Report(heath.ReportOptions{IncludeComments: true}, ledger.Now())))
		}
	}
	return subcommands.ExitSuccess
}

type startCmd struct {
	liveFlags
	sameDay bool
}

func (*startCmd) Name() string     { return "start" }
func (*startCmd) Synopsis() string { return "start a new shift for a project" }
func (*startCmd) Usage() string {
	return `heath start [-s] [-n] [-v] <project> <H:MM>

  Starts a shift for <project> at <H:MM>. The shift opens today's day unless
  -s is given, in which case it continues the last recorded day.

Usage Examples:
$ heath start Project1 8:30
`
}

func (c *startCmd) SetFlags(f *flag.FlagSet) {
	c.liveFlags.SetFlags(f)
	f.BoolVar(&c.sameDay, "s", false, "Do not create a new day, continue the last one")
}

func (c *startCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usage(fmt.Errorf("want a project and a start time"))
	}
	key := f.Arg(0)
	h, m, err := date.ParseClock(f.Arg(1))
	if err != nil {
		return usage(err)
	}
	return c.apply(func(l *heath.Ledger) (*heath.Month, date.Date, string, error) {
		month, err := l.Start(key, h, m, c.sameDay)
		if err != nil {
			return nil, date.Date{}, "", err
		}
		s := l.CurrentShift()
		return month, s.Date, fmt.Sprintf("started %s at %s on %s", s.Project.Key, date.FormatClock(s.StartTime()), s.Date), nil
	})
}

type lunchCmd struct {
	liveFlags
}

func (*lunchCmd) Name() string     { return "lunch" }
func (*lunchCmd) Synopsis() string { return "set the lunch of the ongoing shift" }
func (*lunchCmd) Usage() string {
	return `heath lunch [-n] [-v] <H:MM>

  Sets the lunch duration of the ongoing shift.
`
}

func (c *lunchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage(fmt.Errorf("want a lunch duration"))
	}
	d, err := date.ParseDuration(f.Arg(0))
	if err != nil {
		return usage(err)
	}
	return c.apply(func(l *heath.Ledger) (*heath.Month, date.Date, string, error) {
		month, err := l.Lunch(d)
		if err != nil {
			return nil, date.Date{}, "", err
		}
		s := l.CurrentShift()
		return month, s.Date, fmt.Sprintf("lunch of %s set to %s", s.Project.Key, date.FormatDuration(d)), nil
	})
}

type stopCmd struct {
	liveFlags
}

func (*stopCmd) Name() string     { return "stop" }
func (*stopCmd) Synopsis() string { return "stop the ongoing shift" }
func (*stopCmd) Usage() string {
	return `heath stop [-n] [-v] <H:MM>

  Stops the ongoing shift at <H:MM>. A time before the start of the shift
  is read on the next day.
`
}

func (c *stopCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, m, err := clockArg(f.Args(), "stop")
	if err != nil {
		return usage(err)
	}
	return c.apply(func(l *heath.Ledger) (*heath.Month, date.Date, string, error) {
		s := l.CurrentShift()
		month, err := l.Stop(h, m)
		if err != nil {
			return nil, date.Date{}, "", err
		}
		return month, s.Date, fmt.Sprintf("stopped %s at %s, worked %s", s.Project.Key, date.FormatClock(s.StopTime()), date.FormatDuration(s.Duration())), nil
	})
}

type switchCmd struct {
	liveFlags
}

func (*switchCmd) Name() string     { return "switch" }
func (*switchCmd) Synopsis() string { return "stop the ongoing shift and start another one" }
func (*switchCmd) Usage() string {
	return `heath switch [-n] [-v] <project> <H:MM>

  Stops the ongoing shift at <H:MM> and starts a shift for <project> at the
  same time.
`
}

func (c *switchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usage(fmt.Errorf("want a project and a switch time"))
	}
	key := f.Arg(0)
	h, m, err := date.ParseClock(f.Arg(1))
	if err != nil {
		return usage(err)
	}
	return c.apply(func(l *heath.Ledger) (*heath.Month, date.Date, string, error) {
		prev := l.CurrentShift()
		month, err := l.Switch(key, h, m)
		if err != nil {
			return nil, date.Date{}, "", err
		}
		next := l.CurrentShift()
		return month, next.Date, fmt.Sprintf("switched from %s to %s at %s", prev.Project.Key, next.Project.Key, date.FormatClock(next.StartTime())), nil
	})
}

type alldayCmd struct {
	liveFlags
}

func (*alldayCmd) Name() string     { return "allday" }
func (*alldayCmd) Synopsis() string { return "fill a day with an all day project" }
func (*alldayCmd) Usage() string {
	return `heath allday [-n] [-v] <project> [<day> [<month> [<year>]]]

  Records a day, today by default, filled by the all day <project>, such as
  a vacation or a sick leave.
`
}

func (c *alldayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		return usage(fmt.Errorf("want an all day project"))
	}
	now, err := today()
	if err != nil {
		return usage(err)
	}
	on, err := dayArgs(f.Args()[1:], now)
	if err != nil {
		return usage(err)
	}
	key := f.Arg(0)
	return c.apply(func(l *heath.Ledger) (*heath.Month, date.Date, string, error) {
		month, err := l.AddAllDay(key, on)
		if err != nil {
			return nil, date.Date{}, "", err
		}
		return month, on, fmt.Sprintf("%s recorded on %s", l.Day(on).AllDayProject(), on), nil
	})
}

type commentCmd struct {
	liveFlags
	edit bool
}

func (*commentCmd) Name() string     { return "comment" }
func (*commentCmd) Synopsis() string { return "add a comment to a day" }
func (*commentCmd) Usage() string {
	return `heath comment [-e] [-n] [-v] <text> [<day> [<month> [<year>]]]

  Sets the comment of a recorded day, today by default. An existing comment
  is only replaced with -e.
`
}

func (c *commentCmd) SetFlags(f *flag.FlagSet) {
	c.liveFlags.SetFlags(f)
	f.BoolVar(&c.edit, "e", false, "Replace an existing comment")
}

func (c *commentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		return usage(fmt.Errorf("want a comment"))
	}
	text := strings.TrimSpace(f.Arg(0))
	if text == "" || strings.ContainsAny(text, "\n") {
		return usage(fmt.Errorf("a comment is a single non empty line"))
	}
	now, err := today()
	if err != nil {
		return usage(err)
	}
	on, err := dayArgs(f.Args()[1:], now)
	if err != nil {
		return usage(err)
	}
	return c.apply(func(l *heath.Ledger) (*heath.Month, date.Date, string, error) {
		month, err := l.SetComment(on, text, c.edit)
		if err != nil {
			return nil, date.Date{}, "", err
		}
		return month, on, fmt.Sprintf("comment set on %s", on), nil
	})
}
