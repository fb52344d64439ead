package ui

import "github.com/charmbracelet/lipgloss"

// DefaultPromptCharacter marks the line-command prompt.
const DefaultPromptCharacter = "[?]"

// RenderPrompt returns the styled prompt marker followed by text and a
// trailing space, e.g. "[?] " with the marker in cyan.
func RenderPrompt(character, text string) string {
	if character == "" {
		character = DefaultPromptCharacter
	}
	out := InfoStyle().Bold(true).Render(character) + " "
	if text != "" {
		out += text + " "
	}
	return out
}

// RenderError renders an error message in red.
func RenderError(msg string) string {
	return ErrorStyle().Render(msg)
}

// RenderHint renders a muted one-line hint.
func RenderHint(msg string) string {
	return MutedStyle().Render(msg)
}

// RenderTitle renders a bold section title.
func RenderTitle(title string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Render(title)
}
