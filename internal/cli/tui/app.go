package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/flowcal/internal/montecarlo"
)

// Run starts the TUI application and the Monte Carlo loop behind it.
func Run(cfg Config) error {
	model := NewModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	go func() {
		res, err := cfg.Run(func(pr montecarlo.Progress) {
			p.Send(progressMsg(pr))
		})
		p.Send(doneMsg{result: res, err: err})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
