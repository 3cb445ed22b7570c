// Package report renders evaluation results in the formats the tool
// supports: plain text with a probability summary, JSON, CSV, a raw
// samples dump, and a compact benchmark line.
package report

import (
	"fmt"
	"io"

	"github.com/haskel/flowcal/internal/montecarlo"
	"github.com/haskel/flowcal/internal/sensor"
)

// Report is the renderer-independent result of a run. Value is the
// tracked output: in Monte Carlo mode it is the mean over all
// iterations, otherwise the directly evaluated value. Stats is nil for
// single-point runs.
type Report struct {
	Select  sensor.Output
	Outputs sensor.Outputs
	Value   float64
	Stats   *montecarlo.Stats
}

type entry struct {
	output sensor.Output
	value  float64
}

// entries lists the outputs selected for reporting. With the All
// selector both outputs are listed at their evaluated values; with a
// single selector the tracked value is used, which in Monte Carlo mode
// is the mean.
func (r *Report) entries() []entry {
	switch r.Select {
	case sensor.MassFlow:
		return []entry{{sensor.MassFlow, r.Value}}
	case sensor.DiffPressure:
		return []entry{{sensor.DiffPressure, r.Value}}
	}
	return []entry{
		{sensor.MassFlow, r.Outputs.MassFlow},
		{sensor.DiffPressure, r.Outputs.DiffPressure},
	}
}

// WriteText writes the human-readable report.
func WriteText(w io.Writer, r *Report) error {
	for _, e := range r.entries() {
		if _, err := fmt.Fprintf(w, "%s: %g %s\n", e.output.Name(), e.value, e.output.Unit()); err != nil {
			return err
		}
	}

	if r.Stats == nil {
		return nil
	}

	st := r.Stats
	fmt.Fprintf(w, "\n=== Probability Summary ===\n")
	fmt.Fprintf(w, "Samples:   %d\n", st.N)
	fmt.Fprintf(w, "Mean:      %g\n", st.Mean)
	fmt.Fprintf(w, "Variance:  %g\n", st.Variance)
	fmt.Fprintf(w, "Std dev:   %g\n", st.StdDev)
	fmt.Fprintf(w, "Min:       %g\n", st.Min)
	fmt.Fprintf(w, "P05:       %g\n", st.P05)
	fmt.Fprintf(w, "P25:       %g\n", st.P25)
	fmt.Fprintf(w, "Median:    %g\n", st.Median)
	fmt.Fprintf(w, "P75:       %g\n", st.P75)
	fmt.Fprintf(w, "P95:       %g\n", st.P95)
	_, err := fmt.Fprintf(w, "Max:       %g\n", st.Max)
	return err
}

// WriteBenchLine writes the benchmark format: the tracked value and the
// loop's CPU time in microseconds, space-separated on one line.
func WriteBenchLine(w io.Writer, value float64, micros uint64) error {
	_, err := fmt.Fprintf(w, "%f %d\n", value, micros)
	return err
}
