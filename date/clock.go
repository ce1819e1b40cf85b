package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock returns the current instant. Tests replace it with a fixed value.
type Clock func() time.Time

// SystemClock reads the local wall clock.
func SystemClock() time.Time { return time.Now() }

// Fixed returns a Clock that always returns t.
func Fixed(t time.Time) Clock { return func() time.Time { return t } }

// Naive drops the location of t, keeping its wall clock, truncated to the minute.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// ParseClock reads an "H:MM" wall-clock reading, hours in [0, 23].
func ParseClock(s string) (hour, min int, err error) {
	h, m, err := splitHM(s)
	if err != nil {
		return 0, 0, err
	}
	if h > 23 || m > 59 {
		return 0, 0, fmt.Errorf("invalid clock %q: out of range", s)
	}
	return h, m, nil
}

// ParseDuration reads an "H:MM" duration; hours are unbounded.
func ParseDuration(s string) (time.Duration, error) {
	h, m, err := splitHM(s)
	if err != nil {
		return 0, err
	}
	if m > 59 {
		return 0, fmt.Errorf("invalid duration %q: minutes out of range", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

func splitHM(s string) (int, int, error) {
	hs, ms, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q want format H:MM", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 {
		return 0, 0, fmt.Errorf("invalid time %q want format H:MM", s)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 {
		return 0, 0, fmt.Errorf("invalid time %q want format H:MM", s)
	}
	return h, m, nil
}

// FormatClock writes the wall clock of t as "H:MM" with no leading zero on the hour.
func FormatClock(t time.Time) string { return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute()) }

// FormatDuration writes d as "H:MM", with ":SS" only when seconds are present.
// Negative durations are prefixed with "-".
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign, d = "-", -d
	}
	secs := int64(d / time.Second)
	h, rest := secs/3600, secs%3600
	m, s := rest/60, rest%60
	if s != 0 {
		return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%d:%02d", sign, h, m)
}

// FormatSigned writes d as FormatDuration does but always carries a sign,
// except for zero.
func FormatSigned(d time.Duration) string {
	if d > 0 {
		return "+" + FormatDuration(d)
	}
	return FormatDuration(d)
}
