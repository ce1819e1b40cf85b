package heath

import (
	"math"
	"slices"
	"time"
)

// Summary holds the mean, median and sample standard deviation of a series.
type Summary struct {
	Mean, Median, StdDev time.Duration
}

// Statistics describes the habits of a period.
//
// Start and Stop are offsets from midnight. A summary is nil when it has
// fewer than two samples.
type Statistics struct {
	Start, Stop, Lunch *Summary
}

// Statistics summarizes the start time, stop time and lunch of the days.
func (p *TimePeriod) Statistics() Statistics {
	var starts, stops, lunches []time.Duration
	for _, d := range p.days {
		if t := d.StartTime(); !t.IsZero() {
			starts = append(starts, sinceMidnight(t))
		}
		if t := d.StopTime(); !t.IsZero() {
			stops = append(stops, sinceMidnight(t))
		}
		if l := d.Lunch(); l != 0 {
			lunches = append(lunches, l)
		}
	}
	return Statistics{Start: summarize(starts), Stop: summarize(stops), Lunch: summarize(lunches)}
}

func sinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second
}

func summarize(samples []time.Duration) *Summary {
	n := len(samples)
	if n < 2 {
		return nil
	}
	sorted := slices.Sorted(slices.Values(samples))

	var sum float64
	for _, s := range sorted {
		sum += s.Seconds()
	}
	mean := sum / float64(n)

	median := sorted[n/2].Seconds()
	if n%2 == 0 {
		median = (sorted[n/2-1].Seconds() + median) / 2
	}

	var sq float64
	for _, s := range sorted {
		sq += (s.Seconds() - mean) * (s.Seconds() - mean)
	}
	stddev := math.Sqrt(sq / float64(n-1))

	return &Summary{Mean: seconds(mean), Median: seconds(median), StdDev: seconds(stddev)}
}

// seconds rounds a float number of seconds to the nearest second.
func seconds(s float64) time.Duration { return time.Duration(math.Round(s)) * time.Second }
