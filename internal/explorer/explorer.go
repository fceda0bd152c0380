// Package explorer is an interactive terminal view of projectile launches.
package explorer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/kinelab/internal/config"
	"github.com/san-kum/kinelab/internal/formula"
	"github.com/san-kum/kinelab/internal/plot"
)

const (
	angleStep   = 1.0
	speedStep   = 1.0
	pathSamples = 60
	minSpeed    = 0.0
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type Model struct {
	speed, angle  float64
	presets       []string
	preset        int
	initSpeed     float64
	initAngle     float64
	width, height int
}

// New starts the explorer at the given launch. An unknown preset starts on
// earth.
func New(speed, angle float64, preset string) Model {
	m := Model{
		speed:     speed,
		angle:     angle,
		presets:   config.ListPresets(),
		initSpeed: speed,
		initAngle: angle,
		width:     plot.DefaultWidth,
		height:    24,
	}
	m.preset = m.indexOf("earth")
	if i := m.indexOf(preset); i >= 0 {
		m.preset = i
	}
	if m.preset < 0 {
		m.preset = 0
	}
	return m
}

func (m Model) indexOf(name string) int {
	for i, p := range m.presets {
		if p == name {
			return i
		}
	}
	return -1
}

func (m Model) Gravity() float64 {
	p, _ := config.GetPreset(m.presets[m.preset])
	return p.Gravity
}

func (m Model) Trajectory() formula.Trajectory {
	tr, err := formula.ProjectileWithGravity(m.speed, m.angle, m.Gravity())
	if err != nil {
		// presets are all positive
		return formula.Projectile(m.speed, m.angle)
	}
	return tr
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.angle -= angleStep
		case "right", "l":
			m.angle += angleStep
		case "up", "k":
			m.speed += speedStep
		case "down", "j":
			m.speed = max(minSpeed, m.speed-speedStep)
		case "g":
			m.preset = (m.preset + 1) % len(m.presets)
		case "r":
			m.speed, m.angle = m.initSpeed, m.initAngle
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	tr := m.Trajectory()

	b.WriteString(cyan.Render("projectile explorer"))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %-16s %s\n", dim.Render(label), white.Render(value)))
	}
	row("speed", fmt.Sprintf("%.1f m/s", tr.Speed))
	row("angle", fmt.Sprintf("%.0f°", tr.AngleDeg))
	row("gravity", fmt.Sprintf("%.2f m/s² (%s)", tr.Gravity, m.presets[m.preset]))
	b.WriteString("\n")
	row("v_x", fmt.Sprintf("%.2f m/s", tr.VX))
	row("v_y", fmt.Sprintf("%.2f m/s", tr.VY))
	row("time of flight", fmt.Sprintf("%.2f s", tr.TimeOfFlight))
	row("max height", fmt.Sprintf("%.2f m", tr.MaxHeight))
	row("range", fmt.Sprintf("%.2f m", tr.Range))
	b.WriteString("\n")

	if tr.TimeOfFlight > 0 {
		heights := make([]float64, 0, pathSamples)
		for _, p := range tr.Path(pathSamples) {
			heights = append(heights, p.Y)
		}
		graphWidth := max(20, m.width-12)
		b.WriteString(plot.ASCII(heights, "height over flight", graphWidth, 8))
	} else {
		b.WriteString(yellow.Render("  launch points below the horizon"))
	}

	b.WriteString("\n\n")
	b.WriteString(dim.Render("  ←/→ angle  ↑/↓ speed  g gravity  r reset  q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run blocks until the user quits.
func Run(speed, angle float64, preset string) error {
	_, err := tea.NewProgram(New(speed, angle, preset)).Run()
	return err
}
