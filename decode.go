package heath

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/heath/date"
)

// The month file grammar:
//
//	line  ::= D "." [ shift { ";" shift } ] [ "#" comment ]
//	shift ::= KEY [ H:MM [ "-" [ H:MM ] ] ] [ "," [ "Lunch" [ H:MM ] ] ]
var (
	dayPattern   = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)
	shiftPattern = regexp.MustCompile(`(?i)^([\p{L}\p{N}_]+)(?:\s+(\d+:\d+)(?:\s*-\s*(\d+:\d+)?)?)?\s*(?:,\s*(?:lunch\s*(\d+:\d+)?)?)?$`)
)

// Diagnostic reports a month file line that was skipped.
type Diagnostic struct {
	Line   int    // 1-based line number
	Text   string // the line as read
	Reason string
}

func (d Diagnostic) String() string { return fmt.Sprintf("line %d: %s: %q", d.Line, d.Reason, d.Text) }

// LoadProjects parses a projects file and registers its projects.
func (l *Ledger) LoadProjects(text string) error {
	projects, err := ParseProjects(text)
	if err != nil {
		return err
	}
	for _, p := range projects {
		l.AddProject(p)
	}
	return nil
}

// ParseYear is DecodeYear on a string.
func (l *Ledger) ParseYear(year int, text string) error {
	return l.DecodeYear(year, strings.NewReader(text))
}

// DecodeYear reads the non-working dates of a year file.
//
// Each line is "YYYY-MM-DD: description"; "#" starts a comment anywhere on a
// line and blank lines are ignored. Nothing is registered if any line fails.
func (l *Ledger) DecodeYear(year int, r io.Reader) error {
	type entry struct {
		on   date.Date
		desc string
	}
	var entries []entry

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		if strings.TrimSpace(line) == "" {
			continue
		}
		ds, desc, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("%w: year %d line %d: missing ':' in %q", ErrSyntax, year, n, line)
		}
		on, err := date.Parse(strings.TrimSpace(ds))
		if err != nil {
			return fmt.Errorf("%w: year %d line %d: %v", ErrSyntax, year, n, err)
		}
		if on.Year() != year {
			return fmt.Errorf("%w: non working date in year file is outside year: %s not in %d", ErrDateInconsistency, on, year)
		}
		entries = append(entries, entry{on, strings.TrimSpace(desc)})
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	for _, e := range entries {
		if err := l.AddNonWorkingDate(e.on, e.desc); err != nil {
			return err
		}
	}
	return nil
}

// ParseMonth is DecodeMonth on a string.
func (l *Ledger) ParseMonth(year int, month time.Month, text string) ([]Diagnostic, error) {
	return l.DecodeMonth(year, month, strings.NewReader(text))
}

// DecodeMonth adds the month (year, month) to the ledger and replays every day
// line of r through AddDay.
//
// Blank and comment-only lines are skipped. Lines without a day number are
// skipped too, and reported as diagnostics.
func (l *Ledger) DecodeMonth(year int, month time.Month, r io.Reader) ([]Diagnostic, error) {
	m := NewMonth(year, month)
	if err := l.AddMonth(m); err != nil {
		return nil, err
	}

	var diags []Diagnostic
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		day, reason, err := l.decodeDay(year, month, line)
		if err != nil {
			return diags, fmt.Errorf("month %s line %d: %w", m.Key(), n, err)
		}
		if reason != "" {
			diags = append(diags, Diagnostic{Line: n, Text: line, Reason: reason})
			continue
		}
		if day == nil {
			continue
		}
		if err := l.AddDay(day); err != nil {
			return diags, fmt.Errorf("month %s line %d: %w", m.Key(), n, err)
		}
	}
	return diags, scanner.Err()
}

// ParseDay reads a single month file line for (year, month) and adds it to
// the ledger. Skipped lines return a non empty reason.
func (l *Ledger) ParseDay(year int, month time.Month, line string) (reason string, err error) {
	day, reason, err := l.decodeDay(year, month, line)
	if err != nil || day == nil {
		return reason, err
	}
	return "", l.AddDay(day)
}

// decodeDay parses a line into a day. It returns a nil day for lines to skip.
func (l *Ledger) decodeDay(year int, month time.Month, line string) (*Day, string, error) {
	data, comment, _ := strings.Cut(line, "#")
	data = strings.TrimSpace(data)
	if data == "" {
		return nil, "", nil
	}
	match := dayPattern.FindStringSubmatch(data)
	if match == nil {
		return nil, "no day number", nil
	}
	n, err := strconv.Atoi(match[1])
	if err != nil || n < 1 || n > date.DaysIn(year, month) {
		return nil, "", fmt.Errorf("%w: day %s is not in %d-%02d", ErrDateInconsistency, match[1], year, month)
	}
	on := date.New(year, month, n)
	day, err := NewDay(on, strings.TrimSpace(comment))
	if err != nil {
		return nil, "", err
	}
	if match[2] == "" {
		return day, "", nil
	}
	for _, text := range strings.Split(match[2], ";") {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		s, err := l.decodeShift(on, text)
		if err != nil {
			return nil, "", err
		}
		if err := day.AddShift(s); err != nil {
			return nil, "", err
		}
	}
	return day, "", nil
}

// decodeShift parses "KEY 8:00 - 17:00, Lunch 0:30" on day on. A stop clock
// earlier than the start clock is read on the next day.
func (l *Ledger) decodeShift(on date.Date, text string) (*Shift, error) {
	match := shiftPattern.FindStringSubmatch(text)
	if match == nil {
		return nil, fmt.Errorf("%w: invalid shift %q", ErrSyntax, text)
	}
	key, start, stop, lunch := match[1], match[2], match[3], match[4]
	p, err := l.Project(key)
	if err != nil {
		return nil, err
	}
	s := NewShift(p, on)
	if start != "" {
		h, m, err := date.ParseClock(start)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		if err := s.Start(on.At(h, m)); err != nil {
			return nil, err
		}
	}
	if lunch != "" {
		d, err := date.ParseDuration(lunch)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		if err := s.SetLunch(d); err != nil {
			return nil, err
		}
	}
	if stop != "" {
		h, m, err := date.ParseClock(stop)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		if err := s.Stop(stopTime(s, h, m)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// stopTime returns the instant of a stop clock for s: on the shift date, or
// on the next day when the clock is before the start.
func stopTime(s *Shift, hour, min int) time.Time {
	t := s.Date.At(hour, min)
	if t.Before(s.StartTime()) {
		t = s.Date.Add(1).At(hour, min)
	}
	return t
}
