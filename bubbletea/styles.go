package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/neochat"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Self    lipgloss.Style
	System  lipgloss.Style
	Default lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t neochat.Theme) Styles {
	return Styles{
		Self:    lipgloss.NewStyle().Foreground(ansiColor(t.Self)).Bold(true),
		System:  lipgloss.NewStyle().Foreground(ansiColor(t.System)),
		Default: lipgloss.NewStyle(),
		Info:    lipgloss.NewStyle().Foreground(ansiColor(t.Info)),
		Success: lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Error:   lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Muted:   lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

// ForClass returns the style for a transcript line class.
func (s Styles) ForClass(c neochat.Class) lipgloss.Style {
	switch c {
	case neochat.ClassSelf:
		return s.Self
	case neochat.ClassSystem:
		return s.System
	default:
		return s.Default
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
