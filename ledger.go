package heath

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/etnz/heath/date"
)

// Ledger is the aggregate root of the work-hours model.
//
// It owns the months (sorted by year and month), the project registry and the
// non-working dates of months not added yet. Every day arriving, from a file
// or from a live action, goes through AddDay.
type Ledger struct {
	months     []*Month
	projects   map[string]*Project
	nonWorking map[int]map[date.Date]string // year -> date -> description
	clock      date.Clock
}

// NewLedger creates an empty ledger reading the system clock.
func NewLedger() *Ledger {
	return &Ledger{
		projects:   make(map[string]*Project),
		nonWorking: make(map[int]map[date.Date]string),
		clock:      date.SystemClock,
	}
}

// SetClock replaces the clock used for "now".
func (l *Ledger) SetClock(c date.Clock) { l.clock = c }

// Now is the naive local time truncated to the minute.
func (l *Ledger) Now() time.Time { return date.Naive(l.clock()) }

// TodayDate is the current calendar date.
func (l *Ledger) TodayDate() date.Date { return date.Of(l.Now()) }

// AddProject registers p, replacing any project with the same key.
func (l *Ledger) AddProject(p Project) { l.projects[p.Key] = &p }

// Projects returns the registered projects sorted by key.
func (l *Ledger) Projects() []*Project {
	keys := slices.Sorted(maps.Keys(l.projects))
	projects := make([]*Project, len(keys))
	for i, k := range keys {
		projects[i] = l.projects[k]
	}
	return projects
}

// Project looks up a project by key. An exact match wins, otherwise a unique
// case-insensitive match is accepted.
func (l *Ledger) Project(key string) (*Project, error) {
	if p, ok := l.projects[key]; ok {
		return p, nil
	}
	var found *Project
	for k, p := range l.projects {
		if strings.EqualFold(k, key) {
			if found != nil {
				return nil, fmt.Errorf("%w: %q is ambiguous", ErrUnknownProject, key)
			}
			found = p
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: project %s is not known", ErrUnknownProject, key)
	}
	return found, nil
}

// AllDayProject looks up an all-day project by key.
func (l *Ledger) AllDayProject(key string) (*Project, error) {
	p, err := l.Project(key)
	if err != nil {
		return nil, err
	}
	if !p.AllDay {
		return nil, fmt.Errorf("%w: project %s is not an all day project", ErrProject, key)
	}
	return p, nil
}

// Months returns the months in calendar order.
func (l *Ledger) Months() []*Month { return l.months }

// Month returns the month (year, month) or nil.
func (l *Ledger) Month(year int, month time.Month) *Month {
	for _, m := range l.months {
		if m.Year == year && m.Month == month {
			return m
		}
	}
	return nil
}

// CurrentMonth returns the latest month, or nil for an empty ledger.
func (l *Ledger) CurrentMonth() *Month {
	if len(l.months) == 0 {
		return nil
	}
	return l.months[len(l.months)-1]
}

// LastDay returns the latest recorded day, or nil.
func (l *Ledger) LastDay() *Day {
	for i := len(l.months) - 1; i >= 0; i-- {
		if d := l.months[i].LastDay(); d != nil {
			return d
		}
	}
	return nil
}

// Day returns the worked day or non-working placeholder at d, or nil.
func (l *Ledger) Day(d date.Date) *Day {
	if m := l.Month(d.Year(), d.Month()); m != nil {
		return m.Day(d.Day())
	}
	return nil
}

// Today returns the day recorded for the current date, or nil.
func (l *Ledger) Today() *Day { return l.Day(l.TodayDate()) }

// CurrentShift returns the open shift of the last day, or nil.
func (l *Ledger) CurrentShift() *Shift {
	if d := l.LastDay(); d != nil {
		return d.CurrentShift()
	}
	return nil
}

// NonWorkingDates returns the non-working dates registered for a year.
func (l *Ledger) NonWorkingDates(year int) map[date.Date]string { return l.nonWorking[year] }

// AddNonWorkingDate registers a holiday. Its month must not be in the ledger yet.
func (l *Ledger) AddNonWorkingDate(d date.Date, description string) error {
	if l.Month(d.Year(), d.Month()) != nil {
		return fmt.Errorf("%w: month for non working date already added to ledger: %s: %s", ErrMonthDateInconsistency, d, description)
	}
	if l.nonWorking[d.Year()] == nil {
		l.nonWorking[d.Year()] = make(map[date.Date]string)
	}
	l.nonWorking[d.Year()][d] = description
	return nil
}

// newMonth returns a month carrying the pending non-working dates.
func (l *Ledger) newMonth(year int, month time.Month) *Month {
	m := NewMonth(year, month)
	l.attachNonWorking(m)
	return m
}

func (l *Ledger) attachNonWorking(m *Month) {
	for d, desc := range l.nonWorking[m.Year] {
		if d.Month() == m.Month {
			// The date is in the month by construction.
			_ = m.AddNonWorkingDate(d, desc)
		}
	}
}

// AddMonth inserts m, attaching the pending non-working dates of its month.
func (l *Ledger) AddMonth(m *Month) error {
	if l.Month(m.Year, m.Month) != nil {
		return fmt.Errorf("%w: month %s already in ledger", ErrMonthDateInconsistency, m.Key())
	}
	l.attachNonWorking(m)
	l.insert(m)
	return nil
}

func (l *Ledger) insert(m *Month) {
	l.months = append(l.months, m)
	slices.SortFunc(l.months, func(a, b *Month) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return int(a.Month) - int(b.Month)
	})
}

// AddDay routes d to its month, creating the month when needed.
//
// A late start is only accepted for the first day of the very first month.
// Days are accepted in calendar order only, after the previous day is
// completed. On error the ledger is unchanged.
func (l *Ledger) AddDay(d *Day) error {
	if last := l.LastDay(); last != nil {
		if !d.Date.After(last.Date) {
			return fmt.Errorf("%w: added day %s is not after %s", ErrMonthDateInconsistency, d.Date, last.Date)
		}
		if !last.Completed() {
			return fmt.Errorf("%w: %s", ErrMonthPreviousDayNotCompleted, last.Date)
		}
	}
	m := l.Month(d.Date.Year(), d.Date.Month())
	created := m == nil
	if created {
		if cur := l.CurrentMonth(); cur != nil && (cur.Year > d.Date.Year() || cur.Year == d.Date.Year() && cur.Month > d.Date.Month()) {
			return fmt.Errorf("%w: %s is before month %s", ErrMonthDateInconsistency, d.Date, cur.Key())
		}
		m = l.newMonth(d.Date.Year(), d.Date.Month())
	}
	lateStart := len(m.days) == 0 && (len(l.months) == 0 || len(l.months) == 1 && !created)
	if err := m.AddDay(d, lateStart); err != nil {
		return err
	}
	if created {
		l.insert(m)
	}
	return nil
}

// NextWorkDate returns the next date expected to be worked. When the current
// month is exhausted it looks into the following month.
func (l *Ledger) NextWorkDate() (date.Date, bool) {
	cur := l.CurrentMonth()
	if cur == nil {
		return date.Date{}, false
	}
	if d, ok := cur.NextWorkDate(); ok {
		return d, true
	}
	next := date.New(cur.Year, cur.Month+1, 1)
	return l.newMonth(next.Year(), next.Month()).NextWorkDate()
}

// allDays returns every day and placeholder of the ledger in order.
func (l *Ledger) allDays() []*Day {
	var days []*Day
	for _, m := range l.months {
		days = append(days, m.AllDays()...)
	}
	return days
}

// Period returns the reporting window r over the whole ledger.
func (l *Ledger) Period(r date.Range) *TimePeriod { return NewTimePeriod(r.Title(), r, l.allDays()) }

// DayPeriod returns the single day d.
func (l *Ledger) DayPeriod(d date.Date) *TimePeriod { return l.Period(date.NewRange(d, date.Daily)) }

// Week returns the ISO week (year, week).
func (l *Ledger) Week(year, week int) *TimePeriod { return l.Period(date.Week(year, week)) }

// MonthPeriod returns the calendar month (year, month).
func (l *Ledger) MonthPeriod(year int, month time.Month) *TimePeriod {
	return l.Period(date.NewRange(date.New(year, month, 1), date.Monthly))
}

// Quarter returns the calendar quarter q (1 to 4) of year.
func (l *Ledger) Quarter(year, q int) *TimePeriod {
	return l.Period(date.NewRange(date.New(year, time.Month(3*q-2), 1), date.Quarterly))
}

// Year returns the calendar year.
func (l *Ledger) Year(year int) *TimePeriod {
	return l.Period(date.NewRange(date.New(year, time.January, 1), date.Yearly))
}

// Interval returns the custom window from..to, both included.
func (l *Ledger) Interval(from, to date.Date) *TimePeriod {
	return l.Period(date.Range{From: from, To: to})
}
