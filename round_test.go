package heath

import (
	"testing"
	"time"

	"github.com/etnz/heath/date"
	"github.com/google/go-cmp/cmp"
)

func TestLosslessRound(t *testing.T) {
	d := func(day int) date.Date { return date.New(2023, time.September, day) }
	testCases := []struct {
		name  string
		given map[date.Date]time.Duration
		want  map[date.Date]time.Duration
	}{
		{"empty", map[date.Date]time.Duration{}, map[date.Date]time.Duration{}},
		{
			"already rounded",
			map[date.Date]time.Duration{d(6): hm(8, 0), d(7): hm(8, 30)},
			map[date.Date]time.Duration{d(6): hm(8, 0), d(7): hm(8, 30)},
		},
		{
			"largest remainder first",
			map[date.Date]time.Duration{d(4): hm(8, 5), d(5): hm(8, 5), d(6): hm(8, 10), d(7): hm(8, 5), d(8): hm(8, 5)},
			map[date.Date]time.Duration{d(4): hm(8, 0), d(5): hm(8, 0), d(6): hm(8, 30), d(7): hm(8, 0), d(8): hm(8, 0)},
		},
		{
			"latest date among equals",
			map[date.Date]time.Duration{d(4): hm(8, 10), d(5): hm(8, 10), d(6): hm(8, 10)},
			map[date.Date]time.Duration{d(4): hm(8, 0), d(5): hm(8, 0), d(6): hm(8, 30)},
		},
		{
			"quarters",
			map[date.Date]time.Duration{d(4): hm(7, 45), d(5): hm(8, 15), d(6): hm(7, 45), d(7): hm(8, 15)},
			map[date.Date]time.Duration{d(4): hm(7, 30), d(5): hm(8, 0), d(6): hm(8, 0), d(7): hm(8, 30)},
		},
		{
			"small values may vanish",
			map[date.Date]time.Duration{d(4): hm(0, 20), d(5): hm(8, 20), d(6): hm(8, 25), d(7): hm(8, 25)},
			map[date.Date]time.Duration{d(4): 0, d(5): hm(8, 30), d(6): hm(8, 30), d(7): hm(8, 30)},
		},
		{
			"single day not on a half hour",
			map[date.Date]time.Duration{d(6): hm(8, 35)},
			map[date.Date]time.Duration{d(6): hm(8, 35)},
		},
		{
			"total not on a half hour",
			map[date.Date]time.Duration{d(6): hm(8, 20), d(7): hm(8, 20)},
			map[date.Date]time.Duration{d(6): hm(8, 20), d(7): hm(8, 20)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := LosslessRound(tc.given)
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(date.Date{})); diff != "" {
				t.Errorf("LosslessRound() mismatch (-want +got):\n%s", diff)
			}
			var in, out time.Duration
			for _, v := range tc.given {
				in += v
			}
			for _, v := range got {
				out += v
			}
			if in != out {
				t.Errorf("LosslessRound() total = %v, want %v", out, in)
			}
		})
	}
}
