// Package montecarlo runs repeated sampling and evaluation of the
// calibration formula and summarizes the tracked output.
package montecarlo

import (
	"fmt"

	"golang.org/x/time/rate"

	"github.com/haskel/flowcal/internal/sensor"
)

// Source supplies one fresh input sample per call.
type Source interface {
	Draw() sensor.Inputs
}

// Progress reports loop state to an observer.
type Progress struct {
	Done        int
	Total       int
	RunningMean float64
}

// Result holds the outcome of a Monte Carlo run. Samples contains the
// tracked value of every iteration, in order. LastOutputs holds the
// outputs of the final iteration (useful when reporting both outputs).
type Result struct {
	Samples     []float64
	Stats       Stats
	LastOutputs sensor.Outputs
}

// progressEventsPerSecond caps observer callbacks so a slow consumer
// (e.g. a terminal UI) cannot stall the iteration loop.
const progressEventsPerSecond = 30

// Run executes n sequential draw-and-evaluate iterations and computes
// statistics over the tracked values. The iterations share no state
// beyond appends into a buffer preallocated to exactly n.
//
// The observer, if non-nil, is invoked rate-limited during the loop and
// always once for the final iteration.
func Run(c sensor.Constants, src Source, sel sensor.Output, n int, observer func(Progress)) (*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("iterations must be at least 1, got %d", n)
	}

	var limiter *rate.Limiter
	if observer != nil {
		limiter = rate.NewLimiter(rate.Limit(progressEventsPerSecond), 1)
	}

	samples := make([]float64, n)
	var sum float64
	var last sensor.Outputs

	for i := 0; i < n; i++ {
		in := src.Draw()
		out, value := sensor.Evaluate(c, in, sel)

		samples[i] = value
		sum += value
		last = out

		if observer != nil && (i == n-1 || limiter.Allow()) {
			observer(Progress{
				Done:        i + 1,
				Total:       n,
				RunningMean: sum / float64(i+1),
			})
		}
	}

	return &Result{
		Samples:     samples,
		Stats:       Summarize(samples),
		LastOutputs: last,
	}, nil
}
