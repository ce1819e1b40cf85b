package renderer

import (
	"bytes"

	"github.com/etnz/heath"
	md "github.com/nao1215/markdown"
)

// DayMarkdown renders the detailed report of a day.
func DayMarkdown(r *heath.DayReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(r.Title)

	switch {
	case r.Projects != nil:
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Project", "Worked"},
		}
		for _, e := range r.Projects {
			table.Rows = append(table.Rows, []string{e.Key, duration(e.Duration)})
		}
		table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(duration(r.Total))})
		doc.Table(table)

	case len(r.Shifts) > 0:
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Project", "Start", "Stop", "Lunch", "Worked"},
		}
		for _, s := range r.Shifts {
			stop := clock(s.Stop)
			if !s.ReadAt.IsZero() {
				// Open shift read at the report time.
				stop = md.Italic(clock(s.ReadAt))
			}
			lunch := ""
			if s.Lunch != 0 {
				lunch = duration(s.Lunch)
			}
			worked := ""
			if s.Timed {
				worked = duration(s.Duration)
			}
			table.Rows = append(table.Rows, []string{s.Project, clock(s.Start), stop, lunch, worked})
		}
		table.Rows = append(table.Rows, []string{md.Bold("Total"), "", "", "", md.Bold(duration(r.Total))})
		doc.Table(table)
	}

	if r.Comment != "" {
		doc.PlainText(md.Italic(r.Comment))
	}
	return doc.String()
}
