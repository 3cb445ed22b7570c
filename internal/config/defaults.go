package config

import (
	"github.com/haskel/flowcal/internal/sampler"
	"github.com/haskel/flowcal/internal/sensor"
)

func Default() *Config {
	return &Config{
		Calibration: sensor.DefaultConstants(),
		Inputs:      sampler.DefaultRanges(),
		MonteCarlo: MonteCarloConfig{
			Iterations:  10000,
			Seed:        0,
			SamplesFile: "data.out",
		},
		Output: OutputConfig{
			Select: "all",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
