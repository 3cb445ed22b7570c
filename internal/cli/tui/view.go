package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderTitleBar())

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		sections = append(sections, helpStyle.Render("q:quit"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections, "", m.renderProgress())

	if m.done && m.result != nil {
		sections = append(sections, "", m.renderStats())
	}

	sections = append(sections, "", m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("FLOWCAL MONTE CARLO")
	target := fmt.Sprintf("%s, %d iterations", m.config.Output.Name(), m.config.Iterations)

	spacing := m.width - lipgloss.Width(title) - len(target) - 2
	if spacing < 1 {
		spacing = 1
	}

	return fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", spacing), helpStyle.Render(target))
}

func (m Model) renderProgress() string {
	total := m.progress.Total
	done := m.progress.Done
	percent := 0.0
	if total > 0 {
		percent = float64(done) / float64(total) * 100
	}

	bar := m.renderProgressBar(percent, 30)
	mean := fmt.Sprintf("running mean: %.4f %s", m.progress.RunningMean, m.config.Output.Unit())

	return fmt.Sprintf("  %s  %s", bar, valueStyle.Render(mean))
}

func (m Model) renderProgressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	filledBar := progressBarFillStyle.Render(strings.Repeat("█", filled))
	emptyBar := progressBarEmptyStyle.Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("[%s%s] %5.1f%%", filledBar, emptyBar, percent)
}

func (m Model) renderStats() string {
	st := m.result.Stats

	rows := []struct {
		label string
		value string
	}{
		{"Mean", fmt.Sprintf("%.6f %s", st.Mean, m.config.Output.Unit())},
		{"Variance", fmt.Sprintf("%.6f", st.Variance)},
		{"Std dev", fmt.Sprintf("%.6f", st.StdDev)},
		{"Min", fmt.Sprintf("%.6f", st.Min)},
		{"Median", fmt.Sprintf("%.6f", st.Median)},
		{"Max", fmt.Sprintf("%.6f", st.Max)},
	}

	lines := []string{sectionHeaderStyle.Render("  Result")}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("  %s %s",
			labelStyle.Render(fmt.Sprintf("%-9s", r.label)),
			valueStyle.Render(r.value),
		))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	if m.done {
		return helpStyle.Render("  enter/q:quit")
	}
	return helpStyle.Render("  q:abort")
}
