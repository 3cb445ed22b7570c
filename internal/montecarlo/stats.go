package montecarlo

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a set of Monte Carlo samples. Variance is the
// population variance: a single-sample run has variance zero rather
// than an undefined unbiased estimate.
type Stats struct {
	N        int     `json:"n"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	P05      float64 `json:"p05"`
	P25      float64 `json:"p25"`
	Median   float64 `json:"median"`
	P75      float64 `json:"p75"`
	P95      float64 `json:"p95"`
}

// Summarize computes statistics over the samples. The caller must
// guarantee len(samples) >= 1; Run enforces this at its boundary.
func Summarize(samples []float64) Stats {
	mean, variance := stat.PopMeanVariance(samples, nil)

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	q := func(p float64) float64 {
		return stat.Quantile(p, stat.Empirical, sorted, nil)
	}

	return Stats{
		N:        len(samples),
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		P05:      q(0.05),
		P25:      q(0.25),
		Median:   q(0.50),
		P75:      q(0.75),
		P95:      q(0.95),
	}
}
