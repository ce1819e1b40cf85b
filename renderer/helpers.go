package renderer

import (
	"bytes"
	"io"
	"strings"

	"github.com/etnz/heath"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// PeriodSections renders the sections of a period that are not nil, in
// order: the report, the overview and the statistics.
func PeriodSections(r *heath.PeriodReport, o *heath.PeriodOverview, s *heath.StatisticsReport) string {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		if r == nil {
			return false
		}
		io.WriteString(w, PeriodMarkdown(r)+"\n")
		return true
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		if o == nil {
			return false
		}
		io.WriteString(w, OverviewMarkdown(*o)+"\n")
		return true
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		if s == nil {
			return false
		}
		io.WriteString(w, StatisticsMarkdown(*s)+"\n")
		return true
	})
	return b.String()
}
