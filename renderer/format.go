package renderer

import (
	"fmt"
	"time"

	"github.com/etnz/heath/date"
)

// clock formats a wall clock reading, empty for the zero time.
func clock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return date.FormatClock(t)
}

func duration(d time.Duration) string { return date.FormatDuration(d) }

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
