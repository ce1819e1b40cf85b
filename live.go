package heath

import (
	"fmt"
	"time"

	"github.com/etnz/heath/date"
)

// This file holds the live mutations of the ledger. They go through the same
// AddDay and AddShift paths as parsing, return the month to write back, and
// leave the ledger unchanged when they fail.

// Start opens a shift for project key at hour:min.
//
// The shift goes on today, creating the day unless sameDay is set, in which
// case it goes on the last recorded day.
func (l *Ledger) Start(key string, hour, min int, sameDay bool) (*Month, error) {
	p, err := l.Project(key)
	if err != nil {
		return nil, err
	}
	today := l.TodayDate()
	last := l.LastDay()

	if sameDay || (last != nil && last.Date == today) {
		if last == nil {
			return nil, fmt.Errorf("%w: no day to continue", ErrDay)
		}
		s := NewShift(p, last.Date)
		if err := s.Start(last.Date.At(hour, min)); err != nil {
			return nil, err
		}
		if err := last.AddShift(s); err != nil {
			return nil, err
		}
		return l.monthOf(last.Date), nil
	}

	day, err := NewDay(today, "")
	if err != nil {
		return nil, err
	}
	s := NewShift(p, today)
	if err := s.Start(today.At(hour, min)); err != nil {
		return nil, err
	}
	if err := day.AddShift(s); err != nil {
		return nil, err
	}
	if err := l.AddDay(day); err != nil {
		return nil, err
	}
	return l.monthOf(today), nil
}

// Lunch sets the lunch of the ongoing shift.
func (l *Ledger) Lunch(d time.Duration) (*Month, error) {
	s := l.CurrentShift()
	if s == nil {
		return nil, ErrNoActiveShift
	}
	if err := s.SetLunch(d); err != nil {
		return nil, err
	}
	return l.monthOf(s.Date), nil
}

// Stop closes the ongoing shift at hour:min. A clock before the start is
// read on the next day.
func (l *Ledger) Stop(hour, min int) (*Month, error) {
	s := l.CurrentShift()
	if s == nil {
		return nil, ErrNoActiveShift
	}
	t := stopTime(s, hour, min)
	if day := l.Day(s.Date); day != nil {
		if e := day.overlap(s, s.StartTime(), t); e != nil {
			return nil, fmt.Errorf("%w: stopping %s at %s overlaps with %s", ErrDayInconsistency, s.Project.Key, date.FormatClock(t), e)
		}
	}
	if err := s.Stop(t); err != nil {
		return nil, err
	}
	return l.monthOf(s.Date), nil
}

// Switch stops the ongoing shift at hour:min and starts one for project key
// at the same time.
func (l *Ledger) Switch(key string, hour, min int) (*Month, error) {
	cur := l.CurrentShift()
	if cur == nil {
		return nil, fmt.Errorf("%w: there is no ongoing shift to switch from", ErrNoActiveShift)
	}
	p, err := l.Project(key)
	if err != nil {
		return nil, err
	}
	at := stopTime(cur, hour, min)
	next := NewShift(p, cur.Date)
	// The new shift belongs to the day of the ongoing one, even past midnight.
	if date.Of(at) != cur.Date {
		return nil, fmt.Errorf("%w: can't switch on the day after the shift", ErrShiftConsistency)
	}
	if err := next.Start(at); err != nil {
		return nil, err
	}
	day := l.LastDay()
	if e := day.overlap(cur, cur.StartTime(), at); e != nil {
		return nil, fmt.Errorf("%w: stopping %s at %s overlaps with %s", ErrDayInconsistency, cur.Project.Key, date.FormatClock(at), e)
	}
	if err := cur.Stop(at); err != nil {
		return nil, err
	}
	// next starts where cur stops, after every other shift of the day.
	if err := day.AddShift(next); err != nil {
		return nil, err
	}
	return l.monthOf(cur.Date), nil
}

// AddAllDay records a day filled by the all-day project key.
func (l *Ledger) AddAllDay(key string, on date.Date) (*Month, error) {
	p, err := l.AllDayProject(key)
	if err != nil {
		return nil, err
	}
	day, err := NewDay(on, "")
	if err != nil {
		return nil, err
	}
	if err := day.AddShift(NewShift(p, on)); err != nil {
		return nil, err
	}
	if err := l.AddDay(day); err != nil {
		return nil, err
	}
	return l.monthOf(on), nil
}

// SetComment sets the comment of the day recorded on on. An existing comment
// is only replaced when edit is set.
func (l *Ledger) SetComment(on date.Date, text string, edit bool) (*Month, error) {
	day := l.Day(on)
	if day == nil || day.Kind != WorkingDay {
		return nil, fmt.Errorf("%w: no day recorded on %s", ErrDay, on)
	}
	if day.Comment != "" && !edit {
		return nil, fmt.Errorf("%w: %s already has a comment", ErrDay, on)
	}
	day.Comment = text
	return l.monthOf(on), nil
}

func (l *Ledger) monthOf(d date.Date) *Month { return l.Month(d.Year(), d.Month()) }
