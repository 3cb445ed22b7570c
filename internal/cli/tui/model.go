package tui

import (
	"github.com/haskel/flowcal/internal/montecarlo"
	"github.com/haskel/flowcal/internal/sensor"
)

// Config holds TUI configuration
type Config struct {
	Iterations int
	Output     sensor.Output

	// Run executes the Monte Carlo loop, invoking the observer with
	// progress updates, and returns the final result.
	Run func(observer func(montecarlo.Progress)) (*montecarlo.Result, error)
}

// Model represents the TUI state
type Model struct {
	config Config

	// Loop state
	progress montecarlo.Progress
	result   *montecarlo.Result
	err      error
	done     bool

	// UI state
	width  int
	height int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	return Model{
		config: cfg,
		progress: montecarlo.Progress{
			Total: cfg.Iterations,
		},
	}
}
