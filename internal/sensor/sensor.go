// Package sensor implements the FLS110 calibration formulas: a cubic
// polynomial converting heat-transfer power to mass flow, and a
// temperature/pressure ratio correction deriving differential pressure.
package sensor

import "fmt"

// Constants are the fixed calibration coefficients of the mass-flow
// polynomial. They are immutable for the lifetime of a run.
type Constants struct {
	C1 float64 `yaml:"c1" json:"c1"`
	C2 float64 `yaml:"c2" json:"c2"`
	C3 float64 `yaml:"c3" json:"c3"`
}

// DefaultConstants returns the FLS110 example coefficients.
func DefaultConstants() Constants {
	return Constants{
		C1: 2499.26,
		C2: 117682.20,
		C3: -314364.00,
	}
}

// Inputs is one sample of the five raw physical inputs.
type Inputs struct {
	HeatTransfer float64 // W
	FlowTemp     float64 // K
	RefTemp      float64 // K
	FlowPressure float64 // Pa
	RefPressure  float64 // Pa
}

// Outputs holds the calibrated sensor outputs. Only the fields selected
// for computation are populated.
type Outputs struct {
	MassFlow     float64 // sccm
	DiffPressure float64 // Pa
}

// Output selects which calibrated value(s) Evaluate computes.
type Output int

const (
	MassFlow Output = iota
	DiffPressure
	All
)

// ParseOutput parses a selector from its CLI/config spelling.
func ParseOutput(s string) (Output, error) {
	switch s {
	case "massflow":
		return MassFlow, nil
	case "diffpressure":
		return DiffPressure, nil
	case "all":
		return All, nil
	}
	return 0, fmt.Errorf("invalid output selector: %s (valid: massflow, diffpressure, all)", s)
}

func (o Output) String() string {
	switch o {
	case MassFlow:
		return "massflow"
	case DiffPressure:
		return "diffpressure"
	case All:
		return "all"
	}
	return "unknown"
}

// Name returns the human-readable output name.
func (o Output) Name() string {
	switch o {
	case MassFlow:
		return "Calibrated Mass Flow"
	case DiffPressure:
		return "Calibrated Differential Pressure"
	}
	return "unknown"
}

// Unit returns the unit of measurement for the output.
func (o Output) Unit() string {
	switch o {
	case MassFlow:
		return "sccm"
	case DiffPressure:
		return "Pa"
	}
	return ""
}

// Evaluate applies the calibration formulas to one input sample.
//
// Mass flow is always computed since the differential-pressure formula
// depends on it. The second return value is the one tracked for the
// requested selector; for All it is the differential pressure.
//
// Precondition: RefTemp and FlowPressure are strictly positive (the
// default sampling ranges guarantee this). Division by a near-zero
// value is not guarded, and NaN/Inf propagate unchecked.
func Evaluate(c Constants, in Inputs, sel Output) (Outputs, float64) {
	h := in.HeatTransfer
	m := c.C3*h*h*h + c.C2*h*h + c.C1

	var out Outputs
	value := m

	if sel == MassFlow || sel == All {
		out.MassFlow = m
	}
	if sel == DiffPressure || sel == All {
		value = m * (in.FlowTemp / in.RefTemp) * (in.RefPressure / in.FlowPressure)
		out.DiffPressure = value
	}

	return out, value
}
