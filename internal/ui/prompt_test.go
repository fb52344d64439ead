package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestRenderPrompt(t *testing.T) {
	restoreProfile(t)
	lipgloss.SetColorProfile(termenv.Ascii)

	tests := []struct {
		name      string
		character string
		text      string
		want      string
	}{
		{name: "default marker", character: "", text: "", want: "[?] "},
		{name: "custom marker", character: ">", text: "", want: "> "},
		{name: "with text", character: "[?]", text: "command:", want: "[?] command: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderPrompt(tt.character, tt.text))
		})
	}
}

func TestRenderHelpers(t *testing.T) {
	restoreProfile(t)
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "boom", RenderError("boom"))
	assert.Equal(t, "esc to quit", RenderHint("esc to quit"))
	assert.Equal(t, "Bindings", RenderTitle("Bindings"))
}
