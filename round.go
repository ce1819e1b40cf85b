package heath

import (
	"sort"
	"time"

	"github.com/etnz/heath/date"
)

// RoundingStep is the granularity of rounded project durations.
const RoundingStep = 30 * time.Minute

// LosslessRound rounds every duration to a multiple of RoundingStep while
// keeping the total unchanged.
//
// Durations are floored and the half hours freed by the remainders are given
// back to the largest remainders first, later dates first among equals. When
// the remainders do not add up to whole half hours the input is returned as
// is.
func LosslessRound(durations map[date.Date]time.Duration) map[date.Date]time.Duration {
	type remainder struct {
		rest time.Duration
		on   date.Date
	}
	rounded := make(map[date.Date]time.Duration, len(durations))
	rests := make([]remainder, 0, len(durations))
	var total time.Duration
	for on, d := range durations {
		rest := d % RoundingStep
		rounded[on] = d - rest
		rests = append(rests, remainder{rest, on})
		total += rest
	}
	if total%RoundingStep != 0 {
		return durations
	}
	credits := int(total / RoundingStep)

	sort.Slice(rests, func(i, j int) bool {
		if rests[i].rest != rests[j].rest {
			return rests[i].rest < rests[j].rest
		}
		return rests[i].on.Before(rests[j].on)
	})
	for ; credits > 0; credits-- {
		last := rests[len(rests)-1]
		rests = rests[:len(rests)-1]
		rounded[last.on] += RoundingStep
	}
	return rounded
}
