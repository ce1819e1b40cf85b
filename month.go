package heath

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/etnz/heath/date"
)

// Month is the sequence of days recorded in one calendar month, plus the
// non-working dates known for it.
//
// Days are added in calendar order without skipping a working date.
type Month struct {
	Year  int
	Month time.Month

	days       []*Day
	nonWorking map[date.Date]*Day
}

// NewMonth returns an empty month.
func NewMonth(year int, month time.Month) *Month {
	return &Month{Year: year, Month: month, nonWorking: make(map[date.Date]*Day)}
}

// Key identifies the month as "YYYY-MM".
func (m *Month) Key() string { return fmt.Sprintf("%d-%02d", m.Year, m.Month) }

// Title is the heading of the month: "February 2022".
func (m *Month) Title() string { return m.Range().Title() }

// Range returns the first to last date of the month.
func (m *Month) Range() date.Range { return date.NewRange(date.New(m.Year, m.Month, 1), date.Monthly) }

// Days returns the working days in order.
func (m *Month) Days() []*Day { return m.days }

// LastDay returns the last added day, or nil.
func (m *Month) LastDay() *Day {
	if len(m.days) == 0 {
		return nil
	}
	return m.days[len(m.days)-1]
}

// AllDays returns working days and non-working placeholders sorted by date. A
// placeholder is left out when the same date was worked.
func (m *Month) AllDays() []*Day {
	all := slices.Clone(m.days)
	for _, nw := range m.nonWorking {
		if m.worked(nw.Date) == nil {
			all = append(all, nw)
		}
	}
	slices.SortStableFunc(all, func(a, b *Day) int { return a.Date.Compare(b.Date) })
	return all
}

func (m *Month) worked(d date.Date) *Day {
	for _, day := range m.days {
		if day.Date == d {
			return day
		}
	}
	return nil
}

// Day returns the day numbered n in the month: the worked day, else the
// non-working placeholder, else nil.
func (m *Month) Day(n int) *Day {
	if n < 1 || n > date.DaysIn(m.Year, m.Month) {
		return nil
	}
	d := date.New(m.Year, m.Month, n)
	if day := m.worked(d); day != nil {
		return day
	}
	return m.nonWorking[d]
}

// NonWorkingDates returns the non-working dates of the month in order.
func (m *Month) NonWorkingDates() []date.Date {
	return slices.SortedFunc(maps.Keys(m.nonWorking), date.Date.Compare)
}

// AddNonWorkingDate registers a holiday in the month.
func (m *Month) AddNonWorkingDate(d date.Date, description string) error {
	if d.Year() != m.Year || d.Month() != m.Month {
		return fmt.Errorf("%w: non working date %s is not in %s", ErrMonthDateInconsistency, d, m.Key())
	}
	m.nonWorking[d] = NewNonWorkingDay(d, description)
	return nil
}

// NextWorkDate returns the first weekday after the last added day (or from
// the first of the month) that is not a non-working date. It returns false
// when the month is exhausted.
func (m *Month) NextWorkDate() (date.Date, bool) {
	from := date.New(m.Year, m.Month, 1)
	if last := m.LastDay(); last != nil {
		from = last.Date.Add(1)
	}
	for d := from; d.Month() == m.Month && d.Year() == m.Year; d = d.Add(1) {
		if _, ok := m.nonWorking[d]; ok {
			continue
		}
		if !d.IsWeekend() {
			return d, true
		}
	}
	return date.Date{}, false
}

// AddDay appends day to the month.
//
// Every previous day must be completed and day must be the next work date or
// earlier. The first day of an empty month may start later when
// allowLateStart is set.
func (m *Month) AddDay(day *Day, allowLateStart bool) error {
	if day.Kind != WorkingDay {
		return fmt.Errorf("%w: can't add non-working day %s", ErrMonthDateInconsistency, day.Date)
	}
	for _, d := range m.days {
		if !d.Completed() {
			return fmt.Errorf("%w: %s", ErrMonthPreviousDayNotCompleted, d.Date)
		}
	}
	if day.Date.Year() != m.Year || day.Date.Month() != m.Month {
		return fmt.Errorf("%w: added day has wrong year or month %d-%d != %d-%d", ErrMonthDateInconsistency,
			day.Date.Year(), day.Date.Month(), m.Year, m.Month)
	}
	if last := m.LastDay(); last != nil && !day.Date.After(last.Date) {
		return fmt.Errorf("%w: added day %s is not after %s", ErrMonthDateInconsistency, day.Date, last.Date)
	}
	lateStart := allowLateStart && len(m.days) == 0
	if next, ok := m.NextWorkDate(); ok && day.Date.After(next) && !lateStart {
		return fmt.Errorf("%w: added day skips a workday (%s > %s)", ErrMonthDateInconsistency, day.Date, next)
	}
	m.days = append(m.days, day)
	return nil
}

// WorkedHoursForProject sums the durations of the shifts of a project.
func (m *Month) WorkedHoursForProject(key string) time.Duration {
	var total time.Duration
	for _, d := range m.days {
		for _, s := range d.shifts {
			if s.Project.Key == key {
				total += s.Duration()
			}
		}
	}
	return total
}

// DaysForProject counts the days filled by the all-day project key.
func (m *Month) DaysForProject(key string) int {
	n := 0
	for _, d := range m.days {
		if d.AllDayProject() == key {
			n++
		}
	}
	return n
}

// Period returns the month as a reporting window.
func (m *Month) Period() *TimePeriod { return NewTimePeriod(m.Title(), m.Range(), m.AllDays()) }

// Serialize returns the month file content, one line per day.
func (m *Month) Serialize() string {
	var b strings.Builder
	for i, d := range m.days {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.String())
	}
	b.WriteByte('\n')
	return b.String()
}
