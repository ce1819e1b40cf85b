package date

import (
	"fmt"
	"iter"
	"time"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange return a well known period
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Week returns the ISO week (year, week) as a Range from Monday to Sunday.
func Week(year, week int) Range { return NewRange(FirstOfISOWeek(year, week), Weekly) }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days iterates over every date of the range in order.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Period returns the period of this range if it's a standard one.
func (r Range) Period() (p Period, ok bool) {
	switch {
	case r.From == r.To:
		return Daily, true
	case r.From.Weekday() == time.Monday && r.From.EndOf(Weekly) == r.To:
		return Weekly, true
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return Monthly, true
	case r.From.StartOf(Quarterly) == r.From && r.From.EndOf(Quarterly) == r.To:
		return Quarterly, true
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return Yearly, true
	default:
		return Daily, false
	}
}

// Title is the human heading of the range: "Monday 7 February, 2022",
// "Week 6, 2022", "February 2022", "Q1 2022", "2022", or "2022-02-01 - 2022-02-10"
// for non standard ranges.
func (r Range) Title() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s - %s", r.From, r.To)
	}
	switch p {
	case Daily:
		return r.From.Format("Monday 2 January, 2006")
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("Week %d, %d", week, year)
	case Monthly:
		return r.From.Format("January 2006")
	case Quarterly:
		return fmt.Sprintf("Q%d %d", (r.From.Month()-1)/3+1, r.From.Year())
	default:
		return r.From.Format("2006")
	}
}
