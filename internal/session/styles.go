package session

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/keyline/internal/ui"
)

var (
	echoStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary)

	footerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(ui.ColorInfo)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			PaddingLeft(2)
)
