package bubbletea

import (
	"strconv"

	"github.com/banterhq/banter"
	"github.com/charmbracelet/lipgloss"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	UserMsg       lipgloss.Style
	Error         lipgloss.Style
	Success       lipgloss.Style
	Muted         lipgloss.Style
	Accent        lipgloss.Style
	SidebarTitle  lipgloss.Style
	SidebarActive lipgloss.Style
	Sidebar       lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t banter.Theme) Styles {
	return Styles{
		UserMsg:       lipgloss.NewStyle().Foreground(ansiColor(t.UserMsg)).Bold(true),
		Error:         lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:       lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:         lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:        lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		SidebarTitle:  lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true).Underline(true),
		SidebarActive: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Sidebar:       lipgloss.NewStyle().Foreground(ansiColor(t.Muted)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
