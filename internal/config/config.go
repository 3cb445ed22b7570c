package config

import (
	"github.com/haskel/flowcal/internal/sampler"
	"github.com/haskel/flowcal/internal/sensor"
)

type Config struct {
	Calibration sensor.Constants `yaml:"calibration"`
	Inputs      sampler.Ranges   `yaml:"inputs"`
	MonteCarlo  MonteCarloConfig `yaml:"montecarlo"`
	Output      OutputConfig     `yaml:"output"`
	Logging     LoggingConfig    `yaml:"logging"`
}

// MonteCarloConfig holds Monte Carlo mode defaults.
type MonteCarloConfig struct {
	// Iterations is the number of sampling+evaluation passes.
	Iterations int `yaml:"iterations"`

	// Seed for the input sampler. Zero picks a time-derived seed on
	// every run.
	Seed uint64 `yaml:"seed"`

	// SamplesFile is where raw Monte Carlo samples are dumped.
	SamplesFile string `yaml:"samples_file"`
}

// OutputConfig selects which calibrated output is tracked.
type OutputConfig struct {
	// Select: massflow, diffpressure, or all
	Select string `yaml:"select"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputSelect returns the parsed output selector.
func (c *Config) OutputSelect() (sensor.Output, error) {
	return sensor.ParseOutput(c.Output.Select)
}
