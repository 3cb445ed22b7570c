package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.validateInputs(); err != nil {
		errs = append(errs, fmt.Errorf("inputs: %w", err))
	}

	if err := c.MonteCarlo.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("montecarlo: %w", err))
	}

	if err := c.Output.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

func (c *Config) validateInputs() error {
	var errs []error

	ranges := []struct {
		name string
		r    interface{ Validate() error }
	}{
		{"heat_transfer", c.Inputs.HeatTransfer},
		{"flow_temp", c.Inputs.FlowTemp},
		{"ref_temp", c.Inputs.RefTemp},
		{"flow_pressure", c.Inputs.FlowPressure},
		{"ref_pressure", c.Inputs.RefPressure},
	}
	for _, rg := range ranges {
		if err := rg.r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rg.name, err))
		}
	}

	// The evaluator divides by ref temp and flow pressure; keep their
	// ranges strictly positive.
	if c.Inputs.RefTemp.Low <= 0 {
		errs = append(errs, fmt.Errorf("ref_temp.low must be strictly positive, got %v", c.Inputs.RefTemp.Low))
	}
	if c.Inputs.FlowPressure.Low <= 0 {
		errs = append(errs, fmt.Errorf("flow_pressure.low must be strictly positive, got %v", c.Inputs.FlowPressure.Low))
	}

	return errors.Join(errs...)
}

func (m *MonteCarloConfig) Validate() error {
	var errs []error

	if m.Iterations < 1 {
		errs = append(errs, fmt.Errorf("iterations must be at least 1, got %d", m.Iterations))
	}
	if m.SamplesFile == "" {
		errs = append(errs, fmt.Errorf("samples_file cannot be empty"))
	}

	return errors.Join(errs...)
}

func (o *OutputConfig) Validate() error {
	validSelects := map[string]bool{
		"massflow":     true,
		"diffpressure": true,
		"all":          true,
	}
	if !validSelects[o.Select] {
		return fmt.Errorf("invalid output select: %s (valid: massflow, diffpressure, all)", o.Select)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, text)", l.Format)
	}

	return nil
}
