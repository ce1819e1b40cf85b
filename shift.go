package heath

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/heath/date"
)

// Shift is one continuous work interval, or an all-day marker, for a project
// on a date.
//
// A shift moves from unstarted to started to completed; all-day shifts are
// completed on creation and reject every transition. A failed transition
// leaves the shift unchanged.
type Shift struct {
	Project *Project
	Date    date.Date

	start time.Time // zero until started
	stop  time.Time // zero until stopped
	lunch time.Duration
}

// NewShift returns an unstarted shift for project p on day d.
func NewShift(p *Project, d date.Date) *Shift { return &Shift{Project: p, Date: d} }

// AllDay reports whether the shift belongs to an all-day project.
func (s *Shift) AllDay() bool { return s.Project.AllDay }

func (s *Shift) StartTime() time.Time { return s.start }
func (s *Shift) StopTime() time.Time  { return s.stop }
func (s *Shift) Lunch() time.Duration { return s.lunch }
func (s *Shift) Started() bool        { return !s.start.IsZero() }
func (s *Shift) Stopped() bool        { return !s.stop.IsZero() }
func (s *Shift) Completed() bool      { return s.AllDay() || (s.Started() && s.Stopped()) }
func (s *Shift) Active() bool         { return s.Started() && !s.Completed() }

// Duration is the worked time of a completed timed shift, zero otherwise.
func (s *Shift) Duration() time.Duration {
	if !s.Started() || !s.Stopped() {
		return 0
	}
	return s.stop.Sub(s.start) - s.lunch
}

// DurationAt is the time worked up to t, never negative.
func (s *Shift) DurationAt(t time.Time) time.Duration {
	if !s.Started() {
		return 0
	}
	return max(t.Sub(s.start)-s.lunch, 0)
}

// CurrentDuration is Duration for a completed shift, and DurationAt(t) otherwise.
func (s *Shift) CurrentDuration(t time.Time) time.Duration {
	if s.Completed() {
		return s.Duration()
	}
	return s.DurationAt(t)
}

// Start sets the start time of the shift.
func (s *Shift) Start(t time.Time) error {
	if s.AllDay() {
		return fmt.Errorf("%w: all day shifts can't be started", ErrShift)
	}
	if s.Started() {
		return fmt.Errorf("%w: shift already started at %s", ErrShiftConsistency, date.FormatClock(s.start))
	}
	if date.Of(t) != s.Date {
		return fmt.Errorf("%w: start %s is not on shift date %s", ErrShiftConsistency, t.Format(time.DateTime), s.Date)
	}
	s.start = t
	return nil
}

// SetLunch sets the lunch duration of a started shift.
func (s *Shift) SetLunch(d time.Duration) error {
	if s.AllDay() {
		return fmt.Errorf("%w: all day shifts can't have a lunch", ErrShift)
	}
	if !s.Started() {
		return fmt.Errorf("%w: shift must be started to have a lunch", ErrShiftConsistency)
	}
	if d < 0 {
		return fmt.Errorf("%w: negative lunch %s", ErrShiftConsistency, date.FormatDuration(d))
	}
	if s.Stopped() && s.stop.Before(s.start.Add(d)) {
		return fmt.Errorf("%w: lunch %s is longer than the shift", ErrShiftConsistency, date.FormatDuration(d))
	}
	s.lunch = d
	return nil
}

// Stop sets the stop time of a started shift. The stop time must fall on the
// shift date or the next one, and not before start plus lunch.
func (s *Shift) Stop(t time.Time) error {
	if s.AllDay() {
		return fmt.Errorf("%w: all day shifts can't be stopped", ErrShift)
	}
	if !s.Started() {
		return fmt.Errorf("%w: shift must be started to be stopped", ErrShiftConsistency)
	}
	if s.Stopped() {
		return fmt.Errorf("%w: shift already stopped at %s", ErrShiftConsistency, date.FormatClock(s.stop))
	}
	if on := date.Of(t); on != s.Date && on != s.Date.Add(1) {
		return fmt.Errorf("%w: stop date %s not in (%s, %s)", ErrShiftConsistency, on, s.Date, s.Date.Add(1))
	}
	if t.Before(s.start.Add(s.lunch)) {
		return fmt.Errorf("%w: shift can't be stopped before start plus lunch", ErrShiftConsistency)
	}
	s.stop = t
	return nil
}

// String returns the month file form: "KEY 8:00 - 17:00, Lunch 0:30".
func (s *Shift) String() string {
	var b strings.Builder
	b.WriteString(s.Project.Key)
	if s.Started() {
		fmt.Fprintf(&b, " %s -", date.FormatClock(s.start))
	}
	if s.Stopped() {
		fmt.Fprintf(&b, " %s", date.FormatClock(s.stop))
	}
	if s.lunch != 0 {
		fmt.Fprintf(&b, ", Lunch %s", date.FormatDuration(s.lunch))
	}
	return b.String()
}
