package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/etnz/heath"
	"github.com/etnz/heath/date"
	"github.com/etnz/heath/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

const (
	watchDebounce = 300 * time.Millisecond
	watchRefresh  = time.Minute
)

func reportCommands() []subcommands.Command {
	return []subcommands.Command{&dayCmd{}, &weekCmd{}, &monthCmd{}, &quarterCmd{}, &yearCmd{}, &intervalCmd{}}
}

// reportFlags holds the flags shared by the period report commands.
type reportFlags struct {
	active         bool
	comments       bool
	byProject      bool
	byProjectTotal bool
	round          bool
	stats          bool
	overview       bool
	watch          bool
}

func (r *reportFlags) SetFlags(f *flag.FlagSet, period string) {
	f.BoolVar(&r.active, "a", false, "Show the current duration of any day in progress")
	f.BoolVar(&r.comments, "c", false, "Show the comments of the days")
	f.BoolVar(&r.byProject, "p", false, "Group by project per day")
	f.BoolVar(&r.byProjectTotal, "P", false, "Group by project for the whole "+period)
	f.BoolVar(&r.round, "r", false, "Round project durations to half hours, keeping the total unaffected")
	f.BoolVar(&r.stats, "s", false, "Show statistics")
	f.BoolVar(&r.overview, "o", false, "Brief overview of the "+period)
	f.BoolVar(&r.watch, "w", false, "Keep running and render again when the ledger changes")
}

func (r *reportFlags) options() heath.ReportOptions {
	return heath.ReportOptions{
		IncludeActive:   r.active,
		IncludeComments: r.comments,
		ByProject:       r.byProject,
		ByProjectTotal:  r.byProjectTotal,
		Round:           r.round,
	}
}

// markdown renders p: the overview and the statistics when asked for,
// the report otherwise.
func (r *reportFlags) markdown(p *heath.TimePeriod, now time.Time) string {
	var (
		report   *heath.PeriodReport
		overview *heath.PeriodOverview
		stats    *heath.StatisticsReport
	)
	if r.overview {
		o := p.Overview()
		overview = &o
	}
	if r.stats {
		s := p.StatisticsReport()
		stats = &s
	}
	if overview == nil && stats == nil {
		report = p.Report(r.options(), now)
	}
	return renderer.PeriodSections(report, overview, stats)
}

// today returns the current date, honoring $HEATH_TESTING_NOW.
func today() (date.Date, error) {
	clock, err := testingClock()
	if err != nil {
		return date.Date{}, err
	}
	if clock == nil {
		clock = date.SystemClock
	}
	return date.Of(clock()), nil
}

// runReport loads the ledger, builds the markdown with build and prints it.
// With watch it keeps printing it again whenever the ledger changes, until
// interrupted.
func runReport(ctx context.Context, watch bool, build func(*heath.Ledger) string) subcommands.ExitStatus {
	render := func() error {
		_, ledger, err := openLedger()
		if err != nil {
			return err
		}
		md := build(ledger)
		if watch {
			fmt.Print("\033[H\033[2J")
		}
		printMarkdown(md)
		return nil
	}
	if err := render(); err != nil {
		return fail(err)
	}
	if !watch {
		return subcommands.ExitSuccess
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	err := watchFolder(ctx, FolderPath(), watchDebounce, watchRefresh, func() {
		if err := render(); err != nil {
			logger.Error("could not render report", zap.Error(err))
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
