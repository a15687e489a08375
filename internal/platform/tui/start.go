package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder())
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	startStyle    = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 2)
)

// startView renders the placeholder shown until the player presses start.
func (m Model) startView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("P  O  N  G"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("You: left paddle  |  CPU: right paddle"))
	b.WriteString("\n\n")
	b.WriteString(startStyle.Render("START"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	block := lipgloss.JoinVertical(lipgloss.Center, strings.Split(b.String(), "\n")...)
	if m.width <= 0 || m.height <= 0 {
		return block
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}
