package chart

import (
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
)

const (
	maxCountIntervals    = 8
	maxIsolevelIntervals = 10
)

// Vertex counts are integers, so the count axis never steps by 2.5.
var wholeSteps = []float64{1, 2, 5}

// wholeStep returns the smallest 1, 2 or 5 x 10^k step (k >= 0) that
// splits span into at most maxIntervals intervals.
func wholeStep(span float64, maxIntervals int) float64 {
	for mag := 1.0; ; mag *= 10 {
		for _, s := range wholeSteps {
			if span/(s*mag) <= float64(maxIntervals) {
				return s * mag
			}
		}
	}
}

// countTicks covers [0, maxCount] with the top tick rounded up to the next step.
func countTicks(maxCount float64) []gochart.Tick {
	step := wholeStep(maxCount, maxCountIntervals)
	n := int(math.Ceil(maxCount / step))
	if n < 1 {
		n = 1
	}
	return stepTicks(0, step, n)
}

// isolevelTicks places ticks on whole isolevels from floor(first) past last.
func isolevelTicks(first, last float64) []gochart.Tick {
	start := math.Floor(first)
	span := last - start
	step := wholeStep(span, maxIsolevelIntervals)
	n := int(math.Ceil(span / step))
	if n < 1 {
		n = 1
	}
	return stepTicks(start, step, n)
}

func stepTicks(start, step float64, intervals int) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, intervals+1)
	for i := 0; i <= intervals; i++ {
		v := start + float64(i)*step
		ticks = append(ticks, gochart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ticks
}
