// Package sampler draws independent uniform samples for the five raw
// sensor inputs. It stands in for the native uncertainty-tracking
// runtime of the original hardware: each input becomes a pseudorandom
// uniform variate instead of a true distributional value.
package sampler

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/haskel/flowcal/internal/sensor"
)

// Range is a closed uniform sampling interval.
type Range struct {
	Low  float64 `yaml:"low" json:"low"`
	High float64 `yaml:"high" json:"high"`
}

// Validate checks the interval is well-formed.
func (r Range) Validate() error {
	if r.Low >= r.High {
		return fmt.Errorf("low (%v) must be less than high (%v)", r.Low, r.High)
	}
	return nil
}

// Ranges holds the per-input sampling intervals.
type Ranges struct {
	HeatTransfer Range `yaml:"heat_transfer" json:"heat_transfer"`
	FlowTemp     Range `yaml:"flow_temp" json:"flow_temp"`
	RefTemp      Range `yaml:"ref_temp" json:"ref_temp"`
	FlowPressure Range `yaml:"flow_pressure" json:"flow_pressure"`
	RefPressure  Range `yaml:"ref_pressure" json:"ref_pressure"`
}

// DefaultRanges returns the FLS110 demo input distributions.
func DefaultRanges() Ranges {
	return Ranges{
		HeatTransfer: Range{Low: 0.010, High: 0.050},
		FlowTemp:     Range{Low: 293.0, High: 294.0},
		RefTemp:      Range{Low: 273.0, High: 273.5},
		FlowPressure: Range{Low: 420000.0, High: 425000.0},
		RefPressure:  Range{Low: 400000.0, High: 405000.0},
	}
}

// Sampler draws one sensor.Inputs per call, each field independently
// uniform within its range. Not safe for concurrent use; the Monte
// Carlo loop is strictly sequential.
type Sampler struct {
	heat     distuv.Uniform
	flowTemp distuv.Uniform
	refTemp  distuv.Uniform
	flowPres distuv.Uniform
	refPres  distuv.Uniform
}

// New creates a Sampler over the given ranges. A zero seed picks a
// time-derived one; any other seed makes the draw sequence
// reproducible.
func New(r Ranges, seed uint64) *Sampler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewSource(seed)
	uniform := func(rg Range) distuv.Uniform {
		return distuv.Uniform{Min: rg.Low, Max: rg.High, Src: src}
	}
	return &Sampler{
		heat:     uniform(r.HeatTransfer),
		flowTemp: uniform(r.FlowTemp),
		refTemp:  uniform(r.RefTemp),
		flowPres: uniform(r.FlowPressure),
		refPres:  uniform(r.RefPressure),
	}
}

// Draw returns a fresh independent input sample.
func (s *Sampler) Draw() sensor.Inputs {
	return sensor.Inputs{
		HeatTransfer: s.heat.Rand(),
		FlowTemp:     s.flowTemp.Rand(),
		RefTemp:      s.refTemp.Rand(),
		FlowPressure: s.flowPres.Rand(),
		RefPressure:  s.refPres.Rand(),
	}
}
