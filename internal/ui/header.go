package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the session header.
type HeaderInfo struct {
	Version string // Version string (e.g., "v0.4.0")
	Source  string // Where the bindings came from, a config path or "defaults"
	Hint    string // Optional one-line usage hint
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders the title block shown at the top of a session.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorInfo).
		Bold(true)

	versionStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary)

	dividerStyle := lipgloss.NewStyle().
		Foreground(ColorMuted)

	var output strings.Builder

	output.WriteString(titleStyle.Render("keyline"))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(versionStyle.Render(info.Version))
	}
	output.WriteString("\n")

	if info.Source != "" {
		output.WriteString(MutedStyle().Render("bindings: " + info.Source))
		output.WriteString("\n")
	}

	if info.Hint != "" {
		output.WriteString(MutedStyle().Render(info.Hint))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}
