package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// panelWidth is the total width of the info panel including its border.
const panelWidth = 26

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	panelLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStateStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	panelHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// PanelInfo is what the info panel shows next to the playfield.
type PanelInfo struct {
	Nickname string
	Age      string
	Score    int
	Best     int
	Paused   bool
	Over     bool
}

// renderPanel draws the info panel at the given height.
func renderPanel(info PanelInfo, keys GameKeyMap, height int) string {
	inner := panelWidth - 4 // border + padding

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(panelLabelStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(panelValueStyle.Render(truncate(value, inner)))
		b.WriteString("\n\n")
	}

	row("Nickname", info.Nickname)
	row("Age", info.Age)
	row("Score", fmt.Sprintf("%d", info.Score))
	row("Best", fmt.Sprintf("%d", max(info.Best, info.Score)))

	switch {
	case info.Over:
		b.WriteString(panelStateStyle.Render("GAME OVER"))
		b.WriteString("\n\n")
	case info.Paused:
		b.WriteString(panelStateStyle.Render("PAUSED"))
		b.WriteString("\n\n")
	}

	for _, group := range keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(panelHelpStyle.Render(helpLine(binding, inner)))
			b.WriteString("\n")
		}
	}

	style := panelStyle.Width(panelWidth - 2)
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

// helpLine formats a binding as "key  description".
func helpLine(b key.Binding, width int) string {
	h := b.Help()
	return truncate(fmt.Sprintf("%-8s %s", h.Key, h.Desc), width)
}

// truncate shortens s to at most width cells.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
