package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/flowcal/internal/montecarlo"
)

type progressMsg montecarlo.Progress

type doneMsg struct {
	result *montecarlo.Result
	err    error
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.done {
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case progressMsg:
		m.progress = montecarlo.Progress(msg)
		return m, nil

	case doneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, nil
	}

	return m, nil
}
