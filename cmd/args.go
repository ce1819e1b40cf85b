package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/etnz/heath/date"
)

// intArg parses the positional argument name within [min, max].
func intArg(name, s string, min, max int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not a number", name, s)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("invalid %s %d: want %d to %d", name, n, min, max)
	}
	return n, nil
}

// dayArgs reads "[D [M [Y]]]". Missing parts default to today.
func dayArgs(args []string, today date.Date) (date.Date, error) {
	if len(args) > 3 {
		return date.Date{}, fmt.Errorf("too many arguments, want [day [month [year]]]")
	}
	y, m, d := today.Year(), today.Month(), today.Day()
	var err error
	if len(args) > 2 {
		if y, err = intArg("year", args[2], 1, 9999); err != nil {
			return date.Date{}, err
		}
	}
	if len(args) > 1 {
		var n int
		if n, err = intArg("month", args[1], 1, 12); err != nil {
			return date.Date{}, err
		}
		m = time.Month(n)
	}
	if len(args) > 0 {
		if d, err = intArg("day", args[0], 1, 31); err != nil {
			return date.Date{}, err
		}
		if d > date.DaysIn(y, m) {
			return date.Date{}, fmt.Errorf("invalid day %d: %s %d has %d days", d, m, y, date.DaysIn(y, m))
		}
	}
	return date.New(y, m, d), nil
}

// monthArgs reads "[M [Y]]". ok is false when no month is given.
func monthArgs(args []string, today date.Date) (year int, month time.Month, ok bool, err error) {
	if len(args) > 2 {
		return 0, 0, false, fmt.Errorf("too many arguments, want [month [year]]")
	}
	year, month = today.Year(), today.Month()
	if len(args) > 1 {
		if year, err = intArg("year", args[1], 1, 9999); err != nil {
			return 0, 0, false, err
		}
	}
	if len(args) > 0 {
		var n int
		if n, err = intArg("month", args[0], 1, 12); err != nil {
			return 0, 0, false, err
		}
		month, ok = time.Month(n), true
	}
	return year, month, ok, nil
}

// weekArgs reads "[W [Y]]". Missing parts default to the ISO week of today.
func weekArgs(args []string, today date.Date) (year, week int, err error) {
	if len(args) > 2 {
		return 0, 0, fmt.Errorf("too many arguments, want [week [year]]")
	}
	year, week = today.ISOWeek()
	if len(args) > 1 {
		if year, err = intArg("year", args[1], 1, 9999); err != nil {
			return 0, 0, err
		}
	}
	if len(args) > 0 {
		if week, err = intArg("week", args[0], 1, 53); err != nil {
			return 0, 0, err
		}
	}
	return year, week, nil
}

// yearArgs reads "[Y]".
func yearArgs(args []string, today date.Date) (int, error) {
	switch len(args) {
	case 0:
		return today.Year(), nil
	case 1:
		return intArg("year", args[0], 1, 9999)
	default:
		return 0, fmt.Errorf("too many arguments, want [year]")
	}
}

// quarterArgs reads "[Q [Y]]", defaulting to the quarter of today.
func quarterArgs(args []string, today date.Date) (year, quarter int, err error) {
	year, quarter = today.Year(), int(today.Month()-1)/3+1
	if len(args) > 2 {
		return 0, 0, fmt.Errorf("too many arguments, want [quarter [year]]")
	}
	if len(args) > 0 {
		if quarter, err = intArg("quarter", args[0], 1, 4); err != nil {
			return 0, 0, err
		}
	}
	if len(args) > 1 {
		if year, err = intArg("year", args[1], 1, 9999); err != nil {
			return 0, 0, err
		}
	}
	return year, quarter, nil
}

// intervalArgs reads "FROM TO", both dates included.
func intervalArgs(args []string) (date.Range, error) {
	if len(args) != 2 {
		return date.Range{}, fmt.Errorf("want exactly two dates: from and to")
	}
	from, err := date.Parse(args[0])
	if err != nil {
		return date.Range{}, err
	}
	to, err := date.Parse(args[1])
	if err != nil {
		return date.Range{}, err
	}
	if to.Before(from) {
		return date.Range{}, fmt.Errorf("interval ends on %s before it starts on %s", to, from)
	}
	return date.Range{From: from, To: to}, nil
}

// clockArg reads an "H:MM" wall clock.
func clockArg(args []string, what string) (hour, min int, err error) {
	if len(args) == 0 {
		return 0, 0, fmt.Errorf("missing %s time, want H:MM", what)
	}
	return date.ParseClock(args[0])
}
