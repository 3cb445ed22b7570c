package montecarlo

import (
	"math"
	"testing"

	"github.com/haskel/flowcal/internal/sampler"
	"github.com/haskel/flowcal/internal/sensor"
)

// fixedSource always returns the same inputs, removing sampling noise.
type fixedSource struct {
	in sensor.Inputs
}

func (f fixedSource) Draw() sensor.Inputs { return f.in }

func midpointInputs(r sampler.Ranges) sensor.Inputs {
	mid := func(rg sampler.Range) float64 { return (rg.Low + rg.High) / 2 }
	return sensor.Inputs{
		HeatTransfer: mid(r.HeatTransfer),
		FlowTemp:     mid(r.FlowTemp),
		RefTemp:      mid(r.RefTemp),
		FlowPressure: mid(r.FlowPressure),
		RefPressure:  mid(r.RefPressure),
	}
}

func TestRun_RejectsNonPositiveIterations(t *testing.T) {
	src := fixedSource{in: midpointInputs(sampler.DefaultRanges())}

	for _, n := range []int{0, -1} {
		if _, err := Run(sensor.DefaultConstants(), src, sensor.MassFlow, n, nil); err == nil {
			t.Errorf("n=%d: expected error", n)
		}
	}
}

func TestRun_SingleIteration(t *testing.T) {
	c := sensor.DefaultConstants()
	s := sampler.New(sampler.DefaultRanges(), 11)
	check := sampler.New(sampler.DefaultRanges(), 11)

	res, err := Run(c, s, sensor.DiffPressure, 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With one iteration the mean is exactly the single evaluated value
	// and the variance is zero.
	_, want := sensor.Evaluate(c, check.Draw(), sensor.DiffPressure)
	if res.Stats.Mean != want {
		t.Errorf("mean %v should equal the single sample %v", res.Stats.Mean, want)
	}
	if res.Stats.Variance != 0 {
		t.Errorf("variance should be exactly 0, got %v", res.Stats.Variance)
	}
	if len(res.Samples) != 1 {
		t.Errorf("expected 1 sample, got %d", len(res.Samples))
	}
}

func TestRun_BufferSizedExactly(t *testing.T) {
	s := sampler.New(sampler.DefaultRanges(), 3)

	res, err := Run(sensor.DefaultConstants(), s, sensor.MassFlow, 500, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Samples) != 500 || cap(res.Samples) != 500 {
		t.Errorf("expected buffer of exactly 500, got len=%d cap=%d", len(res.Samples), cap(res.Samples))
	}
}

func TestRun_MeanConvergesNearMidpoint(t *testing.T) {
	c := sensor.DefaultConstants()
	r := sampler.DefaultRanges()
	s := sampler.New(r, 99)

	res, err := Run(c, s, sensor.MassFlow, 100000, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, atMidpoint := sensor.Evaluate(c, midpointInputs(r), sensor.MassFlow)

	// The polynomial is nonlinear, so the expectation does not land
	// exactly on the midpoint evaluation; 1% covers the curvature bias
	// plus sampling noise at this N.
	relErr := math.Abs(res.Stats.Mean-atMidpoint) / atMidpoint
	if relErr > 0.01 {
		t.Errorf("mean %v too far from midpoint value %v (rel err %v)", res.Stats.Mean, atMidpoint, relErr)
	}
}

func TestRun_FixedInputsHaveZeroVariance(t *testing.T) {
	src := fixedSource{in: midpointInputs(sampler.DefaultRanges())}

	res, err := Run(sensor.DefaultConstants(), src, sensor.All, 1000, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stats.Variance != 0 {
		t.Errorf("fixed inputs should yield zero variance, got %v", res.Stats.Variance)
	}
	if res.Stats.Mean != res.Samples[0] {
		t.Errorf("mean %v should equal the repeated sample %v", res.Stats.Mean, res.Samples[0])
	}
}

func TestRun_ObserverSeesFinalIteration(t *testing.T) {
	src := fixedSource{in: midpointInputs(sampler.DefaultRanges())}

	var last Progress
	calls := 0
	_, err := Run(sensor.DefaultConstants(), src, sensor.MassFlow, 2000, func(p Progress) {
		last = p
		calls++
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls == 0 {
		t.Fatal("observer was never invoked")
	}
	if last.Done != 2000 || last.Total != 2000 {
		t.Errorf("final progress should be 2000/2000, got %d/%d", last.Done, last.Total)
	}
}

func TestSummarize(t *testing.T) {
	samples := []float64{1, 2, 3, 4}

	st := Summarize(samples)

	if st.N != 4 {
		t.Errorf("N = %d, want 4", st.N)
	}
	if st.Mean != 2.5 {
		t.Errorf("mean = %v, want 2.5", st.Mean)
	}
	// Population variance: ((1.5^2)*2 + (0.5^2)*2) / 4 = 1.25
	if st.Variance != 1.25 {
		t.Errorf("variance = %v, want 1.25", st.Variance)
	}
	if math.Abs(st.StdDev-math.Sqrt(1.25)) > 1e-12 {
		t.Errorf("std dev = %v, want %v", st.StdDev, math.Sqrt(1.25))
	}
	if st.Min != 1 || st.Max != 4 {
		t.Errorf("min/max = %v/%v, want 1/4", st.Min, st.Max)
	}
	if st.Median < 1 || st.Median > 4 {
		t.Errorf("median %v outside sample range", st.Median)
	}
}

func TestSummarize_SingleSample(t *testing.T) {
	st := Summarize([]float64{3.25})

	if st.Mean != 3.25 || st.Variance != 0 {
		t.Errorf("single sample: mean=%v variance=%v", st.Mean, st.Variance)
	}
	if st.Min != 3.25 || st.Max != 3.25 || st.Median != 3.25 {
		t.Errorf("single sample: min=%v max=%v median=%v", st.Min, st.Max, st.Median)
	}
}
