package heath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_Equal(t *testing.T) {
	for _, allDay := range []bool{true, false} {
		for _, name := range []string{"", "Project A"} {
			p := Project{Key: "A", Name: name, Report: "P-A", AllDay: allDay}
			q := Project{Key: "A", Name: name, Report: "P-A", AllDay: allDay}
			if !p.Equal(q) {
				t.Errorf("%v.Equal(%v) = false, want true", p, q)
			}
		}
	}
	if (Project{Key: "A"}).Equal(Project{Key: "A", AllDay: true}) {
		t.Errorf("projects differing by AllDay are equal")
	}
}

func TestParseProjects_Roundtrip(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []Project
	}{
		{"empty", "", nil},
		{
			"one project",
			`
			[P1]
			Name: Project 1
			Report: Project-123456
			AllDay: False
			`,
			[]Project{{Key: "P1", Name: "Project 1", Report: "Project-123456"}},
		},
		{
			"file order is kept",
			`
			[P2]
			Name: Project 2
			Report: Project-654321
			AllDay: True

			[P1]
			Name: Project 1
			Report: Project-123456
			AllDay: False
			`,
			[]Project{
				{Key: "P2", Name: "Project 2", Report: "Project-654321", AllDay: true},
				{Key: "P1", Name: "Project 1", Report: "Project-123456"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text := dedent(tc.text)
			got, err := ParseProjects(text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			var b strings.Builder
			require.NoError(t, EncodeProjects(&b, got))
			if strings.TrimSpace(b.String()) != strings.TrimSpace(text) {
				t.Errorf("EncodeProjects() = %q, want %q", b.String(), text)
			}
		})
	}
}

func TestParseProjects_LegacyKeys(t *testing.T) {
	text := dedent(`
		[ADP]
		name: All Day Project
		description: All day long!
		all_day: true

		[Job]
		name: The job project
		description: Work work work
		all_day: false
		rate: 950 sek
		`)
	l := NewLedger()
	require.NoError(t, l.LoadProjects(text))
	require.Len(t, l.Projects(), 2)

	adp, err := l.Project("ADP")
	require.NoError(t, err)
	assert.True(t, adp.AllDay)
	assert.Equal(t, "All Day Project", adp.Name)
	assert.Equal(t, "All day long!", adp.Report)

	job, err := l.Project("Job")
	require.NoError(t, err)
	assert.False(t, job.AllDay)
	assert.Equal(t, "Work work work", job.Report)
	assert.Equal(t, "950 SEK", job.Rate.String())
}

func TestParseProjects_Errors(t *testing.T) {
	testCases := []string{
		"[P]\nAllDay: maybe\n",
		"[P]\nRate: ten EUR\n",
		"[P]\nRate: 10 XXXX\n",
	}
	for _, text := range testCases {
		t.Run(text, func(t *testing.T) {
			_, err := ParseProjects(text)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}
