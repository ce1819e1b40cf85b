package heath

import (
	"testing"
	"time"

	"github.com/etnz/heath/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay_OneShift(t *testing.T) {
	on := date.New(2021, time.December, 1)
	testCases := []struct {
		line      string
		project   string
		start     time.Time
		stop      time.Time
		lunch     time.Duration
		duration  time.Duration
		completed bool
	}{
		{line: "1. Project1", project: "Project1"},
		{line: "1. Project2 8:00", project: "Project2", start: on.At(8, 0)},
		{line: "1. Project3 7:30,", project: "Project3", start: on.At(7, 30)},
		{line: "1. MonkeyBusiness 8:15 -, Lunch", project: "MonkeyBusiness", start: on.At(8, 15)},
		{line: "1. ACME 8:30 , Lunch 0:50", project: "ACME", start: on.At(8, 30), lunch: hm(0, 50)},
		{line: "1. Something 9:00 - 17:00", project: "Something", start: on.At(9, 0), stop: on.At(17, 0), duration: hm(8, 0), completed: true},
		{line: "1. SomethingElse 8:00 - 16:00, Lunch 0:30", project: "SomethingElse", start: on.At(8, 0), stop: on.At(16, 0), lunch: hm(0, 30), duration: hm(7, 30), completed: true},
		{line: "1. Night 22:00 - 3:50, lunch 0:00", project: "Night", start: on.At(22, 0), stop: on.Add(1).At(3, 50), duration: hm(5, 50), completed: true},
	}
	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			l := newTestLedger(t, tc.project)
			require.NoError(t, l.AddMonth(NewMonth(2021, time.December)))

			reason, err := l.ParseDay(2021, time.December, tc.line)
			require.NoError(t, err)
			require.Empty(t, reason)

			m := l.Month(2021, time.December)
			require.Len(t, m.Days(), 1)
			day := m.Days()[0]
			assert.Equal(t, on, day.Date)
			require.Len(t, day.Shifts(), 1)

			s := day.Shifts()[0]
			assert.Equal(t, tc.project, s.Project.Key)
			assert.Equal(t, tc.start, s.StartTime())
			assert.Equal(t, tc.stop, s.StopTime())
			assert.Equal(t, tc.lunch, s.Lunch())
			assert.Equal(t, tc.duration, s.Duration())
			assert.Equal(t, tc.completed, day.Completed())
			assert.Equal(t, tc.duration, day.WorkedHours())
		})
	}
}

func TestParseDay_MultipleShifts(t *testing.T) {
	testCases := []struct {
		name   string
		line   string
		worked time.Duration
		shifts []time.Duration
	}{
		{"open second shift", "1. Project1 8:00 - 13:00, Lunch 0:30; Project2", hm(4, 30), []time.Duration{hm(4, 30), 0}},
		{"started second shift", "1. Project1 8:00 - 13:00, Lunch 0:30; Project2 13:00", hm(4, 30), []time.Duration{hm(4, 30), 0}},
		{"lunch in the first shift", "1. Project1 9:00-13:00, Lunch 0:30; Project1 13:00-17:00", hm(7, 30), []time.Duration{hm(3, 30), hm(4, 0)}},
		{"two projects", "1. Project1 8:00 - 13:00, Lunch 0:30; Project2 13:00 - 17:00", hm(8, 30), []time.Duration{hm(4, 30), hm(4, 0)}},
		{"same project twice", "1. Project1 8:00 - 14:00, Lunch 0:45; Project1 16:00 - 17:00", hm(6, 15), []time.Duration{hm(5, 15), hm(1, 0)}},
		{"three projects", "1. Project1 8:00 - 10:00; Project2 10:00 - 14:00, Lunch 1:00; Project3 14:00 - 17:00", hm(8, 0), []time.Duration{hm(2, 0), hm(3, 0), hm(3, 0)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t, "Project1", "Project2", "Project3")
			_, err := l.ParseDay(2021, time.December, tc.line)
			require.NoError(t, err)

			day := l.LastDay()
			require.NotNil(t, day)
			require.Len(t, day.Shifts(), len(tc.shifts))
			for i, s := range day.Shifts() {
				assert.Equal(t, tc.shifts[i], s.Duration(), "shift %d", i)
			}
			assert.Equal(t, tc.worked, day.WorkedHours())
		})
	}
}

func TestParseDay_Comment(t *testing.T) {
	l := newTestLedger(t, "Work")
	_, err := l.ParseDay(2021, time.December, "1. Work 9:00 - 17:00 # What a way to make a living!")
	require.NoError(t, err)
	assert.Equal(t, "What a way to make a living!", l.LastDay().Comment)
}

func TestParseDay_Errors(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want error
	}{
		{"unknown project", "1. ProjectX 8:00 - 17:00, Lunch 1:00", ErrUnknownProject},
		{"bad shift", "1. Work 8:00 to 17:00", ErrSyntax},
		{"bad clock", "1. Work 25:00", ErrSyntax},
		{"day out of month", "32. Work", ErrDateInconsistency},
		{"overlap", "1. Work 7:30 - 13:00; Work 12:00 - 14:00", ErrDayInconsistency},
		{"shift after open shift", "1. Work 7:30; Work 12:00 - 14:00", ErrPreviousShiftNotCompleted},
		{"all day with others", "1. Work 8:00 - 9:00; Vacation", ErrDayInconsistency},
		{"stop before lunch end", "1. Work 8:00 - 8:20, Lunch 0:30", ErrShiftConsistency},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t, "Work")
			_, err := l.ParseDay(2021, time.December, tc.line)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, l.LastDay())
		})
	}
}

func TestParseDay_CaseInsensitiveProject(t *testing.T) {
	l := NewLedger()
	l.AddProject(Project{Key: "project"})
	_, err := l.ParseMonth(2022, time.January, "3. Project 8:00-17:00, lunch 1:00")
	require.NoError(t, err)
	assert.Equal(t, hm(8, 0), l.CurrentMonth().Period().WorkedHours())
	assert.Equal(t, "project", l.LastDay().Shifts()[0].Project.Key)
}

func TestParseMonth_Various(t *testing.T) {
	testCases := []struct {
		name   string
		month  time.Month
		text   string
		dates  []date.Date
		worked time.Duration
	}{
		{
			name:   "two days",
			month:  time.January,
			text:   "3. Project1 8:00-17:00, lunch 1:00\n4. Project1 8:00-13:00, lunch 1:00; Project2 13:00-16:00",
			dates:  []date.Date{date.New(2022, 1, 3), date.New(2022, 1, 4)},
			worked: hm(15, 0),
		},
		{
			name:   "with an all day project",
			month:  time.March,
			text:   "1. Project1 8:00-17:00, lunch 0:45\n2. Project2 9:00-17:00, lunch 0:30\n3. Vacation\n4. Project1 10:00-12:30, lunch 0:30; Project2 12:30-15:00",
			dates:  []date.Date{date.New(2022, 3, 1), date.New(2022, 3, 2), date.New(2022, 3, 3), date.New(2022, 3, 4)},
			worked: hm(20, 15),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t, "Project1", "Project2")
			diags, err := l.ParseMonth(2022, tc.month, tc.text)
			require.NoError(t, err)
			assert.Empty(t, diags)

			var dates []date.Date
			for _, d := range l.CurrentMonth().Days() {
				dates = append(dates, d.Date)
			}
			assert.Equal(t, tc.dates, dates)
			assert.Equal(t, tc.worked, l.CurrentMonth().Period().WorkedHours())
		})
	}
}

func TestParseMonth_Example(t *testing.T) {
	l := newTestLedger(t, "Project1", "Project2", "Project3")
	diags, err := l.ParseMonth(2022, time.February, dedent(exampleMonth))
	require.NoError(t, err)
	assert.Empty(t, diags)

	require.Len(t, l.Months(), 1)
	m := l.CurrentMonth()
	assert.Len(t, m.Days(), 20)
	assert.Len(t, m.Period().Projects(), 5)
	assert.Equal(t, 2, m.DaysForProject("Vacation"))
	assert.Equal(t, 1, m.DaysForProject("SickLeave"))

	assert.Equal(t, "Needed a break", m.Day(8).Comment)
	assert.Equal(t, "## Doctor's visit ###", m.Day(23).Comment)
	assert.Equal(t, "Project1 8:30 - 17:00; Lunch 0:30", m.Day(25).Comment)

	assert.Equal(t, hm(12, 45), m.WorkedHoursForProject("Project3"))
	assert.Equal(t, hm(133, 0), m.Period().WorkedHours())
}

func TestParseMonth_Diagnostics(t *testing.T) {
	l := newTestLedger(t, "Work")
	text := "1. Work 8:00 - 16:00\nnot a day\n\n# comment only\n2. Work 8:00 - 16:00\n"
	diags, err := l.ParseMonth(2022, time.February, text)
	require.NoError(t, err)
	assert.Equal(t, []Diagnostic{{Line: 2, Text: "not a day", Reason: "no day number"}}, diags)
	assert.Len(t, l.CurrentMonth().Days(), 2)
}

func TestParseMonth_SkippedWorkday(t *testing.T) {
	l := newTestLedger(t, "Work")
	_, err := l.ParseMonth(2022, time.February, "1. Work 8:00 - 16:00\n3. Work 8:00 - 16:00\n")
	assert.ErrorIs(t, err, ErrMonthDateInconsistency)
	assert.ErrorContains(t, err, "line 2")
}

func TestParseMonth_Roundtrip(t *testing.T) {
	testCases := []string{
		"\n",
		"1.\n",
		"1. # A comment.\n",
		"1. Project\n",
		"1. Project 8:00 -\n",
		"1. Project 8:00 - 17:00\n",
		"1. Project 8:00 - 17:00, Lunch 0:30\n",
		"1. Project 8:00 - 17:00, Lunch 0:30 # A comment.\n",
		"1. Project 22:15 - 5:10, Lunch 1:05\n",
		"1. Project 22:15 - 5:10, Lunch 1:05\n2. Project 8:00 - 12:00\n",
		"1. ProjectA 8:00 - 13:00, Lunch 0:30; ProjectB\n",
		"1. ProjectA 8:00 - 13:00, Lunch 0:30; ProjectB 13:00 - 17:00\n",
		"1. ProjectA 8:00 - 13:00, Lunch 0:30; ProjectB 13:00 - 17:00 # A comment.\n",
		dedent(`
			1. Project 8:00 - 17:00, Lunch 1:00
			2. Project 8:30 -
			`),
		dedent(`
			1. ProjectA 8:00 - 10:00; ProjectB 10:00 - 16:30, Lunch 1:00
			2. ProjectA 5:30 - 13:00 # Early bird catches the worm
			3. ProjectA 10:00 - 17:00
			4. ProjectB 8:00 - 13:00, Lunch 0:30; ProjectC 13:00 - 15:00; ProjectA 15:00 - 16:30
			7. Vacation # Finally!
			8. Vacation
			`),
	}
	for _, text := range testCases {
		t.Run(text, func(t *testing.T) {
			l := newTestLedger(t, "Project", "ProjectA", "ProjectB", "ProjectC")
			_, err := l.ParseMonth(2022, time.February, text)
			require.NoError(t, err)
			if got := l.CurrentMonth().Serialize(); got != text {
				t.Errorf("Serialize() = %q, want %q", got, text)
			}
		})
	}
}

func TestParseYear(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.ParseYear(2022, dedent(exampleYear)))

	want := map[date.Date]string{
		date.New(2022, 1, 17):  "Blue Monday",
		date.New(2022, 5, 4):   "May the fourth",
		date.New(2022, 5, 7):   "Naked Gardening Day",
		date.New(2022, 9, 19):  "Talk Like a Pirate Day",
		date.New(2022, 10, 31): "Base-n Jokes Day",
	}
	assert.Equal(t, want, l.NonWorkingDates(2022))
	assert.Empty(t, l.Months())
}

func TestParseYear_Empty(t *testing.T) {
	for _, text := range []string{"", "# only a comment\n\n   # another\n"} {
		l := NewLedger()
		require.NoError(t, l.ParseYear(2022, text))
		assert.Empty(t, l.NonWorkingDates(2022))
		assert.Empty(t, l.Months())
	}
}

func TestParseYear_Errors(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want error
	}{
		{"out of year", "2023-01-06: Epiphany", ErrDateInconsistency},
		{"missing colon", "2022-01-06 Epiphany", ErrSyntax},
		{"bad date", "2022-13-06: Epiphany", ErrSyntax},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			err := l.ParseYear(2022, "2022-01-01: New year\n"+tc.text)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, l.NonWorkingDates(2022), "nothing is registered on error")
		})
	}
}

func TestParseYear_AttachedToMonth(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.ParseYear(2022, "2022-01-06: Epiphany"))
	require.NoError(t, l.AddMonth(NewMonth(2022, time.January)))

	day := l.Months()[0].Day(6)
	require.NotNil(t, day)
	assert.Equal(t, NonWorkingDay, day.Kind)
	assert.Equal(t, "Epiphany", day.Comment)
}
