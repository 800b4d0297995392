// Package ui renders dctl output for the terminal.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kris-hansen/dctl/internal/status"
)

var (
	ColorGreen  = lipgloss.Color("#00cc6a")
	ColorOrange = lipgloss.Color("#ff9f1a")
	ColorRed    = lipgloss.Color("#ff4d4d")
	ColorCyan   = lipgloss.Color("#00a0cc")
	ColorMuted  = lipgloss.Color("#737373")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	stateStyles = map[status.State]lipgloss.Style{
		status.Running:        lipgloss.NewStyle().Foreground(ColorGreen),
		status.PartialRunning: lipgloss.NewStyle().Foreground(ColorOrange),
		status.Stopped:        lipgloss.NewStyle().Foreground(ColorRed),
		status.ConfigError:    lipgloss.NewStyle().Foreground(ColorRed).Bold(true),
	}
)

// StateLabel returns the icon and text shown for a state. Unknown states
// render as stopped.
func StateLabel(s status.State) string {
	switch s {
	case status.Running:
		return "🟢 Running"
	case status.PartialRunning:
		return "🟠 Partially running"
	case status.ConfigError:
		return "❌ Config error"
	default:
		return "🔴 Stopped"
	}
}

// StyledStateLabel is StateLabel with the state's color applied.
func StyledStateLabel(s status.State) string {
	style, ok := stateStyles[s]
	if !ok {
		style = stateStyles[status.Stopped]
	}
	return style.Render(StateLabel(s))
}

// Mark returns a check or cross.
func Mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
