package sensor

import (
	"math"
	"testing"
)

func TestEvaluate_ZeroHeatTransfer(t *testing.T) {
	c := DefaultConstants()
	in := Inputs{
		HeatTransfer: 0,
		FlowTemp:     293.5,
		RefTemp:      273.25,
		FlowPressure: 422500,
		RefPressure:  402500,
	}

	out, value := Evaluate(c, in, MassFlow)

	if out.MassFlow != c.C1 {
		t.Errorf("expected mass flow %v at zero heat transfer, got %v", c.C1, out.MassFlow)
	}
	if value != c.C1 {
		t.Errorf("expected tracked value %v, got %v", c.C1, value)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	c := DefaultConstants()
	in := Inputs{
		HeatTransfer: 0.0314159,
		FlowTemp:     293.7,
		RefTemp:      273.1,
		FlowPressure: 421337,
		RefPressure:  404010,
	}

	first, firstValue := Evaluate(c, in, All)
	for i := 0; i < 100; i++ {
		out, value := Evaluate(c, in, All)
		if out != first {
			t.Fatalf("iteration %d: outputs differ: %+v vs %+v", i, out, first)
		}
		if value != firstValue {
			t.Fatalf("iteration %d: tracked value differs: %v vs %v", i, value, firstValue)
		}
	}
}

func TestEvaluate_SelectorBehavior(t *testing.T) {
	c := DefaultConstants()
	in := Inputs{
		HeatTransfer: 0.03,
		FlowTemp:     293.5,
		RefTemp:      273.25,
		FlowPressure: 422500,
		RefPressure:  402500,
	}

	tests := []struct {
		name         string
		sel          Output
		wantMass     bool
		wantPressure bool
	}{
		{"mass flow only", MassFlow, true, false},
		{"diff pressure only", DiffPressure, false, true},
		{"all outputs", All, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, value := Evaluate(c, in, tt.sel)

			if tt.wantMass && out.MassFlow == 0 {
				t.Error("expected mass flow to be computed")
			}
			if !tt.wantMass && out.MassFlow != 0 {
				t.Error("mass flow should not be populated")
			}
			if tt.wantPressure && out.DiffPressure == 0 {
				t.Error("expected differential pressure to be computed")
			}
			if !tt.wantPressure && out.DiffPressure != 0 {
				t.Error("differential pressure should not be populated")
			}

			switch tt.sel {
			case MassFlow:
				if value != out.MassFlow {
					t.Errorf("tracked value %v should equal mass flow %v", value, out.MassFlow)
				}
			case DiffPressure, All:
				// All tracks the differential pressure.
				if value != out.DiffPressure {
					t.Errorf("tracked value %v should equal diff pressure %v", value, out.DiffPressure)
				}
			}
		})
	}
}

func TestEvaluate_RatioScaling(t *testing.T) {
	c := DefaultConstants()
	base := Inputs{
		HeatTransfer: 0.03,
		FlowTemp:     293.0,
		RefTemp:      273.0,
		FlowPressure: 420000,
		RefPressure:  400000,
	}
	_, baseValue := Evaluate(c, base, DiffPressure)

	// Doubling the flow temperature doubles the differential pressure.
	doubled := base
	doubled.FlowTemp *= 2
	_, v := Evaluate(c, doubled, DiffPressure)
	if !closeTo(v, 2*baseValue, 1e-9) {
		t.Errorf("doubled flow temp: expected %v, got %v", 2*baseValue, v)
	}

	// Doubling the flow pressure halves it.
	doubled = base
	doubled.FlowPressure *= 2
	_, v = Evaluate(c, doubled, DiffPressure)
	if !closeTo(v, baseValue/2, 1e-9) {
		t.Errorf("doubled flow pressure: expected %v, got %v", baseValue/2, v)
	}

	// Doubling the reference pressure doubles it.
	doubled = base
	doubled.RefPressure *= 2
	_, v = Evaluate(c, doubled, DiffPressure)
	if !closeTo(v, 2*baseValue, 1e-9) {
		t.Errorf("doubled ref pressure: expected %v, got %v", 2*baseValue, v)
	}
}

func TestEvaluate_PolynomialValue(t *testing.T) {
	c := DefaultConstants()
	h := 0.05
	want := c.C3*h*h*h + c.C2*h*h + c.C1

	_, value := Evaluate(c, Inputs{HeatTransfer: h}, MassFlow)
	if !closeTo(value, want, 1e-9) {
		t.Errorf("expected %v, got %v", want, value)
	}
}

func TestParseOutput(t *testing.T) {
	tests := []struct {
		in      string
		want    Output
		wantErr bool
	}{
		{"massflow", MassFlow, false},
		{"diffpressure", DiffPressure, false},
		{"all", All, false},
		{"", 0, true},
		{"pressure", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseOutput(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseOutput(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOutput(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutput(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputMetadata(t *testing.T) {
	if MassFlow.Unit() != "sccm" {
		t.Errorf("mass flow unit: got %s", MassFlow.Unit())
	}
	if DiffPressure.Unit() != "Pa" {
		t.Errorf("diff pressure unit: got %s", DiffPressure.Unit())
	}
	if MassFlow.Name() == "" || DiffPressure.Name() == "" {
		t.Error("output names should not be empty")
	}
}

func closeTo(got, want, relTol float64) bool {
	if want == 0 {
		return math.Abs(got) < relTol
	}
	return math.Abs(got-want)/math.Abs(want) < relTol
}
