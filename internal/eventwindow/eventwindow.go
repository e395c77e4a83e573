// Package eventwindow predicts the minute of the hour at which the daily
// timed event opens.
package eventwindow

import (
	"github.com/appengine-ltd/reward-oracle/internal/calendar"
	"github.com/appengine-ltd/reward-oracle/internal/lagrand"
)

const (
	// SkipMinute is returned by StartMinute on days with no window.
	SkipMinute = 60
	// Length is the number of minutes a window stays open.
	Length = 4
)

// StartMinute returns the opening minute for d in [1, 60]. It fits an int8
// only because the range is 1..60; the cast is not safe for wider ranges.
func StartMinute(d calendar.Date) int8 {
	seed := uint32(d.Year)*365 + uint32(d.YearDay0())
	e := lagrand.New(seed)
	return int8(e.DrawRange(1, SkipMinute))
}

// Minutes returns the open minutes for d in ascending order. It is empty on
// skip days and shorter than Length when the window runs past minute 59.
func Minutes(d calendar.Date) []int8 {
	start := StartMinute(d)
	out := make([]int8, 0, Length)
	for m := int(start); m < int(start)+Length && m <= 59; m++ {
		out = append(out, int8(m))
	}
	return out
}

// IsSkipDay reports whether d has no window.
func IsSkipDay(d calendar.Date) bool {
	return StartMinute(d) == SkipMinute
}
