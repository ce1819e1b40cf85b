package heath

import (
	"slices"
	"time"

	"github.com/etnz/heath/date"
)

// ExpectedDay is the time expected to be worked on a completed timed day.
const ExpectedDay = 8 * time.Hour

// TimePeriod is a read-only reporting window over the days of a ledger.
type TimePeriod struct {
	Title string
	Range date.Range

	days       []*Day // working days
	nonWorking []*Day // placeholders
}

// NewTimePeriod filters days to the ones within r.
func NewTimePeriod(title string, r date.Range, days []*Day) *TimePeriod {
	p := &TimePeriod{Title: title, Range: r}
	for _, d := range days {
		if !r.Contains(d.Date) {
			continue
		}
		if d.Kind == NonWorkingDay {
			p.nonWorking = append(p.nonWorking, d)
		} else {
			p.days = append(p.days, d)
		}
	}
	return p
}

// Days returns the working days of the period in order.
func (p *TimePeriod) Days() []*Day { return p.days }

// LastDay returns the last working day of the period, or nil.
func (p *TimePeriod) LastDay() *Day {
	if len(p.days) == 0 {
		return nil
	}
	return p.days[len(p.days)-1]
}

// AllDays returns working days and non-working placeholders sorted by date.
func (p *TimePeriod) AllDays() []*Day {
	all := slices.Concat(p.days, p.nonWorking)
	slices.SortStableFunc(all, func(a, b *Day) int { return a.Date.Compare(b.Date) })
	return all
}

// CompleteDays returns the completed working days.
func (p *TimePeriod) CompleteDays() []*Day {
	var days []*Day
	for _, d := range p.days {
		if d.Completed() {
			days = append(days, d)
		}
	}
	return days
}

// Projects returns the distinct projects worked in the period in order of appearance.
func (p *TimePeriod) Projects() []*Project {
	var projects []*Project
	for _, d := range p.days {
		for _, pr := range d.Projects() {
			if !slices.Contains(projects, pr) {
				projects = append(projects, pr)
			}
		}
	}
	return projects
}

// WorkedHours sums the completed shift durations.
func (p *TimePeriod) WorkedHours() time.Duration {
	var total time.Duration
	for _, d := range p.days {
		total += d.WorkedHours()
	}
	return total
}

// DurationAt sums the worked time read at t, counting open shifts.
func (p *TimePeriod) DurationAt(t time.Time) time.Duration {
	var total time.Duration
	for _, d := range p.days {
		total += d.DurationAt(t)
	}
	return total
}

// Balance is the worked time of completed timed days minus the expected time
// for them. A positive balance is time ahead.
func (p *TimePeriod) Balance() time.Duration {
	var balance time.Duration
	for _, d := range p.CompleteDays() {
		if d.AllDay() {
			continue
		}
		balance += d.WorkedHours() - ExpectedDay
	}
	return balance
}

// ProjectDurations returns, per project key, the duration worked per date.
// Only completed shifts count unless includeActive is set.
func (p *TimePeriod) ProjectDurations(includeActive bool, t time.Time) map[string]map[date.Date]time.Duration {
	durations := make(map[string]map[date.Date]time.Duration)
	for _, d := range p.days {
		for key, dur := range d.ProjectDurations(includeActive, t) {
			if durations[key] == nil {
				durations[key] = make(map[date.Date]time.Duration)
			}
			durations[key][d.Date] += dur
		}
	}
	return durations
}
