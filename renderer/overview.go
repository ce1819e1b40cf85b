package renderer

import (
	"bytes"

	"github.com/etnz/heath"
	"github.com/etnz/heath/date"
	md "github.com/nao1215/markdown"
)

// OverviewMarkdown renders the brief summary of a period.
func OverviewMarkdown(o heath.PeriodOverview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(o.Title)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Worked"), md.Bold(duration(o.Worked))},
		Rows: [][]string{
			{"Balance", date.FormatSigned(o.Balance)},
		},
	})
	return doc.String()
}

// DayOverviewMarkdown renders the brief summary of a day.
func DayOverviewMarkdown(o heath.DayOverview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(o.Title)
	if !o.Completed && !o.InProgress {
		doc.PlainText("Nothing recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Start", clock(o.Start)},
	}
	if o.Lunch != 0 {
		table.Rows = append(table.Rows, []string{"Lunch", duration(o.Lunch)})
	}
	if o.Completed {
		table.Rows = append(table.Rows,
			[]string{"Stop", clock(o.Stop)},
			[]string{md.Bold("Worked"), md.Bold(duration(o.Worked))},
		)
	} else {
		table.Rows = append(table.Rows,
			[]string{md.Bold("Worked so far"), md.Bold(duration(o.Worked))},
			[]string{"Difference", date.FormatSigned(o.Diff)},
			[]string{"8 hours at", clock(o.EightAt)},
		)
		if o.HasWeekBalance {
			table.Rows = append(table.Rows, []string{"In phase at", clock(o.InPhaseAt)})
		}
	}
	if o.HasWeekBalance {
		table.Rows = append(table.Rows, []string{"Week balance", date.FormatSigned(o.WeekBalance)})
	}
	doc.Table(table)
	return doc.String()
}

// StatisticsMarkdown renders the start, stop and lunch habits of a period.
func StatisticsMarkdown(s heath.StatisticsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(s.Title)
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"", "Mean", "Median", "Std. dev."},
	}
	for _, row := range []struct {
		name    string
		summary *heath.Summary
	}{
		{"Start", s.Start},
		{"Stop", s.Stop},
		{"Lunch", s.Lunch},
	} {
		if row.summary == nil {
			table.Rows = append(table.Rows, []string{row.name, "-", "-", "-"})
			continue
		}
		table.Rows = append(table.Rows, []string{
			row.name,
			duration(row.summary.Mean),
			duration(row.summary.Median),
			duration(row.summary.StdDev),
		})
	}
	doc.Table(table)
	return doc.String()
}

// ProjectsMarkdown renders the project registry.
func ProjectsMarkdown(projects []*heath.Project) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Projects")
	if len(projects) == 0 {
		doc.PlainText("No projects.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Project", "Name", "Report as", "All day", "Rate"},
	}
	for _, p := range projects {
		allDay := "No"
		if p.AllDay {
			allDay = "Yes"
		}
		table.Rows = append(table.Rows, []string{p.Key, p.Name, p.Report, allDay, p.Rate.String()})
	}
	doc.Table(table)
	return doc.String()
}
