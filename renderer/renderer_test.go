package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/heath"
	"github.com/etnz/heath/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// document is the structure of a rendered markdown: its headings and the
// cells of its tables, header row first.
type document struct {
	Headings   []string
	Tables     [][][]string
	Paragraphs []string
}

func parse(t *testing.T, markdown string) document {
	t.Helper()
	source := []byte(markdown)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var doc document
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			doc.Headings = append(doc.Headings, textOf(n, source))
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			doc.Paragraphs = append(doc.Paragraphs, textOf(n, source))
			return ast.WalkSkipChildren, nil
		case *east.Table:
			var table [][]string
			for row := n.FirstChild(); row != nil; row = row.NextSibling() {
				var cells []string
				for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
					cells = append(cells, textOf(cell, source))
				}
				table = append(table, cells)
			}
			doc.Tables = append(doc.Tables, table)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk markdown: %v", err)
	}
	return doc
}

// textOf concatenates the text segments below n, dropping emphasis markers.
func textOf(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func newLedger(t *testing.T, month string) *heath.Ledger {
	t.Helper()
	l := heath.NewLedger()
	rate, err := heath.ParseRate("100 EUR")
	if err != nil {
		t.Fatal(err)
	}
	l.AddProject(heath.Project{Key: "P", Name: "Project P", Report: "P-1", Rate: rate})
	l.AddProject(heath.Project{Key: "Q"})
	l.AddProject(heath.Project{Key: "Vacation", AllDay: true})
	if err := l.ParseYear(2022, "2022-02-03: Holiday"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.ParseMonth(2022, time.February, month); err != nil {
		t.Fatal(err)
	}
	l.SetClock(date.Fixed(time.Date(2022, time.February, 7, 12, 0, 0, 0, time.UTC)))
	return l
}

const month = `1. P 8:00 - 12:00, Lunch 0:30; Q 12:00 - 16:30 # Busy
2. P 8:00 - 16:10
4. Vacation
7. Q 8:00 -
`

func TestPeriodMarkdown(t *testing.T) {
	l := newLedger(t, month)
	p := l.MonthPeriod(2022, time.February)

	testCases := []struct {
		name string
		opts heath.ReportOptions
		want [][]string
	}{
		{
			name: "shifts",
			want: [][]string{
				{"Date", "Work", "Worked"},
				{"Tue 1 Feb", "P 8:00 - 12:00, Lunch 0:30; Q 12:00 - 16:30", "8:00"},
				{"Wed 2 Feb", "P 8:00 - 16:10", "8:10"},
				{"Thu 3 Feb", "Holiday", ""},
				{"Fri 4 Feb", "Vacation", ""},
				{"Mon 7 Feb", "Q 8:00 -", ""},
				{"Total", "", "16:10"},
			},
		},
		{
			name: "active with comments",
			opts: heath.ReportOptions{IncludeActive: true, IncludeComments: true},
			want: [][]string{
				{"Date", "Work", "Worked", "Comment"},
				{"Tue 1 Feb", "P 8:00 - 12:00, Lunch 0:30; Q 12:00 - 16:30", "8:00", "Busy"},
				{"Wed 2 Feb", "P 8:00 - 16:10", "8:10", ""},
				{"Thu 3 Feb", "Holiday", "", ""},
				{"Fri 4 Feb", "Vacation", "", ""},
				{"Mon 7 Feb", "Q 8:00 -", "4:00", ""},
				{"Total", "", "20:10", ""},
			},
		},
		{
			name: "by project",
			opts: heath.ReportOptions{ByProject: true},
			want: [][]string{
				{"Date", "Work", "Worked"},
				{"Tue 1 Feb", "P 3:30, Q 4:30", "8:00"},
				{"Wed 2 Feb", "P 8:10", "8:10"},
				{"Thu 3 Feb", "Holiday", ""},
				{"Fri 4 Feb", "Vacation 0:00", ""},
				{"Mon 7 Feb", "", ""},
				{"Total", "", "16:10"},
			},
		},
		{
			name: "by project total",
			opts: heath.ReportOptions{ByProjectTotal: true},
			want: [][]string{
				{"Project", "Report as", "Worked", "Amount"},
				{"P", "P-1", "11:40", heath.NewRate(decimal.NewFromInt(100), "EUR").Amount(11*time.Hour + 40*time.Minute).String()},
				{"Q", "", "4:30", ""},
				{"Vacation", "", "1 day", ""},
				{"Total", "", "16:10", ""},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := parse(t, PeriodMarkdown(p.Report(tc.opts, l.Now())))
			if diff := cmp.Diff([]string{"February 2022"}, got.Headings); diff != "" {
				t.Errorf("PeriodMarkdown() headings mismatch (-want +got):\n%s", diff)
			}
			if len(got.Tables) != 1 {
				t.Fatalf("PeriodMarkdown() has %d tables, want 1", len(got.Tables))
			}
			if diff := cmp.Diff(tc.want, got.Tables[0]); diff != "" {
				t.Errorf("PeriodMarkdown() table mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPeriodMarkdown_Empty(t *testing.T) {
	l := newLedger(t, month)
	got := parse(t, PeriodMarkdown(l.MonthPeriod(2022, time.March).Report(heath.ReportOptions{}, l.Now())))
	want := document{Headings: []string{"March 2022"}, Paragraphs: []string{"No data for March 2022."}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PeriodMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestDayMarkdown(t *testing.T) {
	l := newLedger(t, month)

	got := parse(t, DayMarkdown(l.Day(date.New(2022, 2, 1)).Report(heath.ReportOptions{IncludeComments: true}, l.Now())))
	want := document{
		Headings: []string{"Tuesday 1 February, 2022"},
		Tables: [][][]string{{
			{"Project", "Start", "Stop", "Lunch", "Worked"},
			{"P", "8:00", "12:00", "0:30", "3:30"},
			{"Q", "12:00", "16:30", "", "4:30"},
			{"Total", "", "", "", "8:00"},
		}},
		Paragraphs: []string{"Busy"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DayMarkdown() mismatch (-want +got):\n%s", diff)
	}

	got = parse(t, DayMarkdown(l.Day(date.New(2022, 2, 7)).Report(heath.ReportOptions{IncludeActive: true}, l.Now())))
	want = document{
		Headings: []string{"Monday 7 February, 2022"},
		Tables: [][][]string{{
			{"Project", "Start", "Stop", "Lunch", "Worked"},
			{"Q", "8:00", "12:00", "", "4:00"},
			{"Total", "", "", "", "4:00"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DayMarkdown() active mismatch (-want +got):\n%s", diff)
	}
}

func TestDayOverviewMarkdown(t *testing.T) {
	l := newLedger(t, month)
	o, ok := l.DayOverview(date.New(2022, 2, 7))
	if !ok {
		t.Fatal("DayOverview() found no day")
	}
	got := parse(t, DayOverviewMarkdown(o))
	want := document{
		Headings: []string{"Monday 7 February, 2022"},
		Tables: [][][]string{{
			{"Start", "8:00"},
			{"Worked so far", "4:00"},
			{"Difference", "-4:00"},
			{"8 hours at", "16:00"},
			{"In phase at", "16:00"},
			{"Week balance", "0:00"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DayOverviewMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestOverviewAndStatistics(t *testing.T) {
	l := newLedger(t, month)
	p := l.MonthPeriod(2022, time.February)
	o := p.Overview()
	s := p.StatisticsReport()

	got := parse(t, PeriodSections(nil, &o, &s))
	want := document{
		Headings: []string{"February 2022", "February 2022"},
		Tables: [][][]string{
			{
				{"Worked", "16:10"},
				{"Balance", "+0:10"},
			},
			{
				{"", "Mean", "Median", "Std. dev."},
				{"Start", "8:00", "8:00", "0:00"},
				{"Stop", "16:20", "16:20", "0:14:09"},
				{"Lunch", "-", "-", "-"},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PeriodSections() mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectsMarkdown(t *testing.T) {
	l := newLedger(t, month)
	got := parse(t, ProjectsMarkdown(l.Projects()))
	want := document{
		Headings: []string{"Projects"},
		Tables: [][][]string{{
			{"Project", "Name", "Report as", "All day", "Rate"},
			{"P", "Project P", "P-1", "No", "100 EUR"},
			{"Q", "", "", "No", ""},
			{"Vacation", "", "", "Yes", ""},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ProjectsMarkdown() mismatch (-want +got):\n%s", diff)
	}
}
