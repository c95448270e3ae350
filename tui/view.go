package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	s := m.snapshot
	var b strings.Builder

	b.WriteString(titleStyle.Render(s.Title))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  seed=%d", s.Seed)))
	b.WriteString("\n\n")

	pct := 0.0
	if s.TotalTrials > 0 {
		pct = float64(s.DoneTrials) / float64(s.TotalTrials)
	}
	b.WriteString(m.progress.ViewAs(pct))
	b.WriteString("\n\n")

	eta := "-"
	if s.ETA > 0 {
		eta = s.ETA.Truncate(time.Second).String()
	}
	status := fmt.Sprintf("%s %s   %s %s   %s %.0f/s   %s %s   %s %s",
		labelStyle.Render("experiment:"), valueStyle.Render(s.Experiment),
		labelStyle.Render("generator:"), valueStyle.Render(s.Generator),
		labelStyle.Render("rate:"), s.RatePerSec,
		labelStyle.Render("elapsed:"), time.Since(s.StartTime).Truncate(time.Second),
		labelStyle.Render("eta:"), eta,
	)
	b.WriteString(boxStyle.Render(status))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("events"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("q to quit"))

	return b.String()
}
