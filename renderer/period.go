package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/heath"
	md "github.com/nao1215/markdown"
)

// PeriodMarkdown renders the report of a day, week, month, year or interval.
func PeriodMarkdown(r *heath.PeriodReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(r.Title)
	if r.Empty() {
		doc.PlainText(fmt.Sprintf("No data for %s.", r.Title))
		return doc.String()
	}

	if len(r.Totals) > 0 {
		doc.Table(totalsTable(r))
		return doc.String()
	}

	withComments := false
	for _, row := range r.Rows {
		if row.Comment != "" && row.Kind == heath.WorkingDay {
			withComments = true
		}
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Work", "Worked"},
	}
	if withComments {
		table.Alignment = append(table.Alignment, md.AlignLeft)
		table.Header = append(table.Header, "Comment")
	}
	for _, row := range r.Rows {
		cells := []string{row.Date.Format("Mon 2 Jan"), work(row), ""}
		if row.Timed {
			cells[2] = duration(row.Duration)
		}
		if withComments {
			comment := ""
			if row.Kind == heath.WorkingDay {
				comment = row.Comment
			}
			cells = append(cells, comment)
		}
		table.Rows = append(table.Rows, cells)
	}
	total := []string{md.Bold("Total"), "", md.Bold(duration(r.Total))}
	if withComments {
		total = append(total, "")
	}
	table.Rows = append(table.Rows, total)
	doc.Table(table)

	return doc.String()
}

// work is the content of the work cell of a day row.
func work(row heath.DayRow) string {
	if row.Kind == heath.NonWorkingDay {
		return md.Italic(row.Comment)
	}
	if row.Projects != nil {
		entries := make([]string, len(row.Projects))
		for i, e := range row.Projects {
			entries[i] = e.Key + " " + duration(e.Duration)
		}
		return strings.Join(entries, ", ")
	}
	return strings.Join(row.Shifts, "; ")
}

func totalsTable(r *heath.PeriodReport) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Project", "Report as", "Worked", "Amount"},
	}
	for _, t := range r.Totals {
		worked := duration(t.Duration)
		if t.Project.AllDay {
			worked = days(t.Days)
		}
		table.Rows = append(table.Rows, []string{t.Project.Key, t.Project.Report, worked, t.Amount.String()})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), "", md.Bold(duration(r.Total)), ""})
	return table
}
