package heath

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/etnz/heath/date"
)

// ReportOptions select what a period report shows.
type ReportOptions struct {
	IncludeActive   bool // read open shifts at the report time
	IncludeComments bool // show day comments
	ByProject       bool // one entry per project instead of one per shift
	ByProjectTotal  bool // one row per project for the whole period
	Round           bool // round project durations to half hours, keeping totals
}

// ShiftRow is the table row of a shift.
type ShiftRow struct {
	Project string
	Start   time.Time // zero when not started
	Stop    time.Time // zero when not stopped
	ReadAt  time.Time // read time of an open shift in an active report
	Lunch   time.Duration
	// Duration is only meaningful when Timed is set: a timed shift that is
	// completed, or open in an active report.
	Duration time.Duration
	Timed    bool
}

// ReportData returns the table row of s. With includeActive an open shift is
// read at t.
func (s *Shift) ReportData(includeActive bool, t time.Time) ShiftRow {
	row := ShiftRow{Project: s.Project.Key, Start: s.start, Stop: s.stop, Lunch: s.lunch}
	if s.Active() && includeActive {
		row.ReadAt = t
	}
	if !s.AllDay() && (s.Completed() || includeActive) {
		row.Timed = true
		row.Duration = s.CurrentDuration(t)
	}
	return row
}

// ProjectEntry is the duration worked on a project.
type ProjectEntry struct {
	Key      string
	Duration time.Duration
}

// DayRow is the table row of a day in a period report.
type DayRow struct {
	Kind     DayKind
	Date     date.Date
	Shifts   []string       // shifts in month file form
	Projects []ProjectEntry // set instead of Shifts in by-project reports
	Duration time.Duration
	Timed    bool   // Duration is meaningful
	Comment  string // day comment, or the description of a non-working day
}

// ReportData returns the table row of the day.
func (d *Day) ReportData(opts ReportOptions, t time.Time) DayRow {
	row := DayRow{Kind: d.Kind, Date: d.Date}
	if d.Kind == NonWorkingDay {
		row.Comment = d.Comment
		return row
	}
	if opts.ByProject {
		row.Projects = sortedEntries(d.ProjectDurations(opts.IncludeActive, t))
	} else {
		for _, s := range d.shifts {
			row.Shifts = append(row.Shifts, s.String())
		}
	}
	if !d.AllDay() && (d.Completed() || opts.IncludeActive) {
		row.Timed = true
		row.Duration = d.DurationAt(t)
	}
	if opts.IncludeComments {
		row.Comment = d.Comment
	}
	return row
}

func sortedEntries(durations map[string]time.Duration) []ProjectEntry {
	entries := make([]ProjectEntry, 0, len(durations))
	for _, k := range slices.Sorted(maps.Keys(durations)) {
		entries = append(entries, ProjectEntry{Key: k, Duration: durations[k]})
	}
	return entries
}

// ProjectTotal is the summary of a project over a period.
type ProjectTotal struct {
	Project  *Project
	Duration time.Duration
	Days     int    // all-day days
	Amount   Amount // duration at the project rate, zero without a rate
}

// PeriodReport is the content of a day, week, month, year or interval report.
type PeriodReport struct {
	Title  string
	Rows   []DayRow
	Totals []ProjectTotal // by-project-total reports
	Total  time.Duration
}

// Empty reports whether there is nothing to show.
func (r *PeriodReport) Empty() bool { return len(r.Rows) == 0 && len(r.Totals) == 0 }

// Report builds the report of the period read at t.
func (p *TimePeriod) Report(opts ReportOptions, t time.Time) *PeriodReport {
	r := &PeriodReport{Title: p.Title}
	if opts.IncludeActive {
		r.Total = p.DurationAt(t)
	} else {
		r.Total = p.WorkedHours()
	}

	durations := p.ProjectDurations(opts.IncludeActive, t)
	if opts.Round {
		for key, byDate := range durations {
			durations[key] = LosslessRound(byDate)
		}
	}

	if opts.ByProjectTotal {
		for _, pr := range p.Projects() {
			if pr.AllDay {
				continue
			}
			var total time.Duration
			for _, d := range durations[pr.Key] {
				total += d
			}
			r.Totals = append(r.Totals, ProjectTotal{Project: pr, Duration: total, Amount: pr.Rate.Amount(total)})
		}
		for _, pr := range p.Projects() {
			if !pr.AllDay {
				continue
			}
			n := 0
			for _, d := range p.days {
				if d.AllDayProject() == pr.Key {
					n++
				}
			}
			r.Totals = append(r.Totals, ProjectTotal{Project: pr, Days: n})
		}
		slices.SortStableFunc(r.Totals, func(a, b ProjectTotal) int { return strings.Compare(a.Project.Key, b.Project.Key) })
		return r
	}

	for _, d := range p.AllDays() {
		row := d.ReportData(opts, t)
		if opts.ByProject && opts.Round && d.Kind == WorkingDay {
			for i, e := range row.Projects {
				row.Projects[i].Duration = durations[e.Key][d.Date]
			}
		}
		r.Rows = append(r.Rows, row)
	}
	return r
}

// DayReport is the detailed report of a single day.
type DayReport struct {
	Title    string
	Shifts   []ShiftRow
	Projects []ProjectEntry // by-project reports
	Total    time.Duration
	Comment  string
}

// Report builds the detailed report of the day read at t.
func (d *Day) Report(opts ReportOptions, t time.Time) *DayReport {
	r := &DayReport{Title: date.NewRange(d.Date, date.Daily).Title()}
	if opts.ByProject {
		durations := make(map[string]time.Duration)
		for _, s := range d.shifts {
			if opts.IncludeActive {
				durations[s.Project.Key] += s.CurrentDuration(t)
			} else {
				durations[s.Project.Key] += s.Duration()
			}
		}
		r.Projects = sortedEntries(durations)
	} else {
		for _, s := range d.shifts {
			r.Shifts = append(r.Shifts, s.ReportData(opts.IncludeActive, t))
		}
	}
	if opts.IncludeActive {
		r.Total = d.DurationAt(t)
	} else {
		r.Total = d.WorkedHours()
	}
	if opts.IncludeComments || d.Kind == NonWorkingDay {
		r.Comment = d.Comment
	}
	return r
}

// PeriodOverview is the brief summary of a period.
type PeriodOverview struct {
	Title   string
	Worked  time.Duration
	Balance time.Duration
}

// Overview returns the brief summary of the period.
func (p *TimePeriod) Overview() PeriodOverview {
	return PeriodOverview{Title: p.Title, Worked: p.WorkedHours(), Balance: p.Balance()}
}

// DayOverview is the brief summary of a day.
//
// A completed day has Start, Lunch, Stop and Worked. A day in progress has
// Start, Lunch, Worked read now, Diff to the expected day, the time EightAt
// the expected day is reached, and InPhaseAt, the time at which the week
// balance is back to zero.
type DayOverview struct {
	Title      string
	Completed  bool
	InProgress bool
	Start      time.Time
	Lunch      time.Duration
	Stop       time.Time
	Worked     time.Duration
	Diff       time.Duration // Worked - ExpectedDay
	EightAt    time.Time
	InPhaseAt  time.Time

	WeekBalance    time.Duration // balance of the week up to the day
	HasWeekBalance bool
}

// DayOverview returns the overview of the day recorded at on, read now.
func (l *Ledger) DayOverview(on date.Date) (DayOverview, bool) {
	d := l.Day(on)
	if d == nil {
		return DayOverview{}, false
	}
	o := DayOverview{Title: date.NewRange(on, date.Daily).Title()}

	year, week := on.ISOWeek()
	wr := date.Week(year, week)
	partial := l.Period(date.Range{From: wr.From, To: on})
	if len(partial.AllDays()) > 0 {
		o.WeekBalance, o.HasWeekBalance = partial.Balance(), true
	}

	switch {
	case d.Completed():
		o.Completed = true
		o.Start, o.Lunch, o.Stop, o.Worked = d.StartTime(), d.Lunch(), d.StopTime(), d.WorkedHours()
	case len(d.shifts) > 0:
		now := l.Now()
		o.InProgress = true
		o.Start, o.Lunch = d.StartTime(), d.Lunch()
		o.Worked = d.DurationAt(now)
		o.Diff = o.Worked - ExpectedDay
		o.EightAt = now.Add(-o.Diff)
		o.InPhaseAt = o.EightAt.Add(-o.WeekBalance)
	}
	return o, true
}

// StatisticsReport is the statistics of a period with its title.
type StatisticsReport struct {
	Title string
	Statistics
}

// StatisticsReport returns the statistics of the period.
func (p *TimePeriod) StatisticsReport() StatisticsReport {
	return StatisticsReport{Title: p.Title, Statistics: p.Statistics()}
}
