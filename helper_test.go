package heath

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/heath/date"
	"github.com/stretchr/testify/require"
)

// newTestLedger returns a ledger knowing the timed projects keys, plus the
// all-day projects Vacation and SickLeave.
func newTestLedger(t *testing.T, keys ...string) *Ledger {
	t.Helper()
	l := NewLedger()
	for _, k := range keys {
		l.AddProject(Project{Key: k})
	}
	l.AddProject(Project{Key: "Vacation", AllDay: true})
	l.AddProject(Project{Key: "SickLeave", AllDay: true})
	return l
}

// dedent removes the common leading tabs of a raw string literal, and its
// first line when empty.
func dedent(s string) string {
	s = strings.TrimPrefix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimLeft(l, "\t")
	}
	return strings.Join(lines, "\n")
}

// at returns the naive instant of "2006-01-02 15:04".
func at(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02 15:04", s)
	require.NoError(t, err)
	return v
}

func hm(h, m int) time.Duration { return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute }

func completedShift(t *testing.T, p *Project, on date.Date, start, stop string, lunch time.Duration) *Shift {
	t.Helper()
	s := NewShift(p, on)
	sh, sm, err := date.ParseClock(start)
	require.NoError(t, err)
	require.NoError(t, s.Start(on.At(sh, sm)))
	require.NoError(t, s.SetLunch(lunch))
	eh, em, err := date.ParseClock(stop)
	require.NoError(t, err)
	require.NoError(t, s.Stop(stopTime(s, eh, em)))
	return s
}

const exampleMonth = `
	1. Project1 9:00 - 17:30, Lunch 0:30
	2. Project1 8:00 - 17:30, Lunch 0:30
	3. Project1 8:30 - 17:00, Lunch 1:00
	4. Project1 9:00 - 18:00, Lunch 0:30

	7. Project2 9:15 - 16:45, Lunch 0:30
	8. Vacation  # Needed a break 
	9. Vacation
	10. Project2 9:05 - 17:30, Lunch 0:30
	11. Project1 9:00 - 13:00, Lunch 0:30; Project2 13:00 - 15:00; Project3 15:00-17:30

	14. Project1 9:00 - 13:00, Lunch 0:30; Project2 13:00 - 17:30
	15. Project2 9:00 - 13:00, Lunch 1:30; Project1 13:00 - 17:15
	16. Project1 9:00 - 14:00, Lunch 0:30; Project3 15:00 - 17:30
	17. SickLeave
	18. Project1 9:00 - 11:00; Project2 11:00 - 17:30, Lunch 0:30

	# Working from home this week
	21. Project3 9:00 - 17:15, Lunch 0:30
	22. Project2 9:00 - 17:50, Lunch 0:30
	23. Project1 10:00 - 18:10, Lunch 1:00 ### Doctor's visit ###
	24. Project2 8:45 - 17:55, Lunch 0:40
	25. Project1 8:00 - 16:05, Lunch 0:30 # Project1 8:30 - 17:00; Lunch 0:30 

	28. Project2 9:00 - 17:30, Lunch 0:30
`

const exampleYear = `
	# January
	2022-01-17: Blue Monday

	# May
	2022-05-04: May the fourth
	2022-05-07: Naked Gardening Day   # It's a thing #

	# September
	2022-09-19: Talk Like a Pirate Day   # Arrrrrrr!

	# October
	2022-10-31: Base-n Jokes Day        # Merry Christmas!
`
