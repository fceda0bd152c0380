package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 50

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ccff"))

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffaa00"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ff88")).
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

func Rule(ch string) string {
	return strings.Repeat(ch, ruleWidth)
}
