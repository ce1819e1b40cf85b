package date

import (
	"slices"
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	// 2022-02-09 is a Wednesday.
	d := New(2022, time.February, 9)
	testCases := []struct {
		period Period
		want   Range
	}{
		{Daily, Range{From: d, To: d}},
		{Weekly, Range{From: New(2022, time.February, 7), To: New(2022, time.February, 13)}},
		{Monthly, Range{From: New(2022, time.February, 1), To: New(2022, time.February, 28)}},
		{Quarterly, Range{From: New(2022, time.January, 1), To: New(2022, time.March, 31)}},
		{Yearly, Range{From: New(2022, time.January, 1), To: New(2022, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			if got := NewRange(d, tc.period); got != tc.want {
				t.Errorf("NewRange(%v) = %v, want %v", tc.period, got, tc.want)
			}
		})
	}
}

func TestRange_Title(t *testing.T) {
	d := New(2022, time.February, 7)
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"day", NewRange(d, Daily), "Monday 7 February, 2022"},
		{"week", Week(2022, 6), "Week 6, 2022"},
		{"month", NewRange(d, Monthly), "February 2022"},
		{"quarter", NewRange(d, Quarterly), "Q1 2022"},
		{"year", NewRange(d, Yearly), "2022"},
		{"custom", Range{From: New(2022, time.February, 1), To: New(2022, time.February, 10)}, "2022-02-01 - 2022-02-10"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Title(); got != tc.want {
				t.Errorf("Title() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRange_Days(t *testing.T) {
	r := Range{From: New(2022, time.February, 27), To: New(2022, time.March, 2)}
	got := slices.Collect(r.Days())
	want := []Date{New(2022, 2, 27), New(2022, 2, 28), New(2022, 3, 1), New(2022, 3, 2)}
	if !slices.Equal(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
	if !r.Contains(New(2022, 3, 1)) || r.Contains(New(2022, 3, 3)) {
		t.Errorf("Contains() mismatch on %v", r)
	}
}
