package heath

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/heath/date"
)

// DayKind tells a worked day apart from a non-working placeholder.
type DayKind int

const (
	// WorkingDay holds shifts.
	WorkingDay DayKind = iota
	// NonWorkingDay is a holiday placeholder carrying only a date and a description.
	NonWorkingDay
)

// Day is every shift recorded on one calendar date, plus an optional comment.
//
// Shifts are kept in insertion order, which is chronological by construction.
type Day struct {
	Kind    DayKind
	Date    date.Date
	Comment string // description for a non-working day

	shifts []*Shift
}

// NewDay returns an empty working day.
func NewDay(d date.Date, comment string) (*Day, error) {
	if d.IsZero() {
		return nil, ErrMissingDate
	}
	return &Day{Kind: WorkingDay, Date: d, Comment: comment}, nil
}

// NewNonWorkingDay returns the placeholder of a non-working date.
func NewNonWorkingDay(d date.Date, description string) *Day {
	return &Day{Kind: NonWorkingDay, Date: d, Comment: description}
}

// Shifts returns the shifts of the day in order.
func (d *Day) Shifts() []*Shift { return d.shifts }

// IsWorking reports whether d is a working day.
func (d *Day) IsWorking() bool { return d.Kind == WorkingDay }

// AllDay reports whether the day holds exactly one shift of an all-day project.
func (d *Day) AllDay() bool { return len(d.shifts) == 1 && d.shifts[0].AllDay() }

// AllDayProject returns the key of the all-day project filling the day, if any.
func (d *Day) AllDayProject() string {
	if !d.AllDay() {
		return ""
	}
	return d.shifts[0].Project.Key
}

// Completed reports whether the day is all-day or all its shifts are
// completed. An empty day is not completed.
func (d *Day) Completed() bool {
	if d.AllDay() {
		return true
	}
	if len(d.shifts) == 0 {
		return false
	}
	for _, s := range d.shifts {
		if !s.Completed() {
			return false
		}
	}
	return true
}

// CurrentShift returns the last shift if it is started and not completed.
func (d *Day) CurrentShift() *Shift {
	if len(d.shifts) == 0 {
		return nil
	}
	if last := d.shifts[len(d.shifts)-1]; last.Active() {
		return last
	}
	return nil
}

// StartTime is the start of the first shift.
func (d *Day) StartTime() time.Time {
	if len(d.shifts) == 0 {
		return time.Time{}
	}
	return d.shifts[0].StartTime()
}

// StopTime is the stop of the last shift.
func (d *Day) StopTime() time.Time {
	if len(d.shifts) == 0 {
		return time.Time{}
	}
	return d.shifts[len(d.shifts)-1].StopTime()
}

// Lunch is the sum of the lunches of the day.
func (d *Day) Lunch() time.Duration {
	var total time.Duration
	for _, s := range d.shifts {
		total += s.Lunch()
	}
	return total
}

// WorkedHours is the sum of the completed shift durations.
func (d *Day) WorkedHours() time.Duration {
	var total time.Duration
	for _, s := range d.shifts {
		total += s.Duration()
	}
	return total
}

// DurationAt is the worked time read at t, counting the open shift up to t.
func (d *Day) DurationAt(t time.Time) time.Duration {
	var total time.Duration
	for _, s := range d.shifts {
		total += s.CurrentDuration(t)
	}
	return total
}

// Projects returns the distinct projects of the day in order of appearance.
func (d *Day) Projects() []*Project {
	var projects []*Project
	for _, s := range d.shifts {
		if !slices.Contains(projects, s.Project) {
			projects = append(projects, s.Project)
		}
	}
	return projects
}

// ProjectDurations sums the shift durations per project key. Only completed
// shifts count unless includeActive is set, in which case the open shift is
// read at t.
func (d *Day) ProjectDurations(includeActive bool, t time.Time) map[string]time.Duration {
	durations := make(map[string]time.Duration)
	for _, s := range d.shifts {
		switch {
		case s.Completed():
			durations[s.Project.Key] += s.Duration()
		case includeActive:
			durations[s.Project.Key] += s.DurationAt(t)
		}
	}
	return durations
}

// AddShift appends s to the day.
//
// The shift must be on the day's date. An all-day shift needs an empty day.
// A timed shift needs every existing shift to be completed, and when s is
// itself completed it must not overlap any of them.
func (d *Day) AddShift(s *Shift) error {
	if d.Kind == NonWorkingDay {
		return fmt.Errorf("%w: %s is a non-working day placeholder", ErrDay, d.Date)
	}
	if s.Date != d.Date {
		return fmt.Errorf("%w: shift and day does not share date (%s != %s)", ErrDayInconsistency, s.Date, d.Date)
	}
	if s.AllDay() {
		if len(d.shifts) > 0 {
			return fmt.Errorf("%w: all day shift can only be added to empty days", ErrDayInconsistency)
		}
		d.shifts = append(d.shifts, s)
		return nil
	}
	for _, e := range d.shifts {
		if !e.Completed() {
			return fmt.Errorf("%w: %s", ErrPreviousShiftNotCompleted, e)
		}
		if e.AllDay() {
			return fmt.Errorf("%w: day is filled by all day project %s", ErrDayInconsistency, e.Project.Key)
		}
	}
	if s.Started() {
		if e := d.overlap(s, s.start, s.stop); e != nil {
			return fmt.Errorf("%w: shift %s overlaps with %s", ErrDayInconsistency, s, e)
		}
	}
	d.shifts = append(d.shifts, s)
	return nil
}

// overlap returns the completed timed shift of d, other than s, that
// overlaps start..stop. A zero stop is an open end.
func (d *Day) overlap(s *Shift, start, stop time.Time) *Shift {
	for _, e := range d.shifts {
		if e == s || !e.Started() || !e.Stopped() {
			continue
		}
		if e.stop.After(start) && (stop.IsZero() || e.start.Before(stop)) {
			return e
		}
	}
	return nil
}

// String returns the month file line of the day: "7. KEY 8:00 - 17:00; KEY2 # comment".
func (d *Day) String() string {
	parts := []string{strconv.Itoa(d.Date.Day()) + "."}
	if len(d.shifts) > 0 {
		shifts := make([]string, len(d.shifts))
		for i, s := range d.shifts {
			shifts[i] = s.String()
		}
		parts = append(parts, strings.Join(shifts, "; "))
	}
	if d.Comment != "" {
		parts = append(parts, "# "+d.Comment)
	}
	return strings.Join(parts, " ")
}
