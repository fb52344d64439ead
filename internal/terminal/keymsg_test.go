package terminal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/keyline/internal/keys"
	"github.com/stretchr/testify/assert"
)

func TestFromKeyMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want keys.RawEvent
	}{
		{
			name: "lower-case rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}},
			want: keys.RawEvent{Name: "x"},
		},
		{
			name: "upper-case rune sets shift",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'K'}},
			want: keys.RawEvent{Name: "k", Shift: true},
		},
		{
			name: "punctuation",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{':'}},
			want: keys.RawEvent{Name: ":"},
		},
		{
			name: "alt rune sets meta",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true},
			want: keys.RawEvent{Name: "f", Meta: true},
		},
		{
			name: "ctrl+c",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlC},
			want: keys.RawEvent{Name: "c", Ctrl: true},
		},
		{
			name: "ctrl+a",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlA},
			want: keys.RawEvent{Name: "a", Ctrl: true},
		},
		{
			name: "ctrl+z",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlZ},
			want: keys.RawEvent{Name: "z", Ctrl: true},
		},
		{
			name: "alt+ctrl+e",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlE, Alt: true},
			want: keys.RawEvent{Name: "e", Ctrl: true, Meta: true},
		},
		{
			name: "tab is not ctrl+i",
			msg:  tea.KeyMsg{Type: tea.KeyTab},
			want: keys.RawEvent{Name: "tab"},
		},
		{
			name: "shift+tab",
			msg:  tea.KeyMsg{Type: tea.KeyShiftTab},
			want: keys.RawEvent{Name: "tab", Shift: true},
		},
		{
			name: "carriage return",
			msg:  tea.KeyMsg{Type: tea.KeyEnter},
			want: keys.RawEvent{Name: "return"},
		},
		{
			name: "line feed",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlJ},
			want: keys.RawEvent{Name: "enter"},
		},
		{
			name: "escape",
			msg:  tea.KeyMsg{Type: tea.KeyEsc},
			want: keys.RawEvent{Name: "escape"},
		},
		{
			name: "backspace",
			msg:  tea.KeyMsg{Type: tea.KeyBackspace},
			want: keys.RawEvent{Name: "backspace"},
		},
		{
			name: "space key",
			msg:  tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			want: keys.RawEvent{Name: "space"},
		},
		{
			name: "space rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}},
			want: keys.RawEvent{Name: "space"},
		},
		{
			name: "arrow",
			msg:  tea.KeyMsg{Type: tea.KeyUp},
			want: keys.RawEvent{Name: "up"},
		},
		{
			name: "ctrl+shift arrow",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlShiftLeft},
			want: keys.RawEvent{Name: "left", Ctrl: true, Shift: true},
		},
		{
			name: "page down",
			msg:  tea.KeyMsg{Type: tea.KeyPgDown},
			want: keys.RawEvent{Name: "pagedown"},
		},
		{
			name: "function key",
			msg:  tea.KeyMsg{Type: tea.KeyF5},
			want: keys.RawEvent{Name: "f5"},
		},
		{
			name: "multi-rune paste keeps text as name",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello"), Paste: true},
			want: keys.RawEvent{Name: "hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromKeyMsg(tt.msg))
		})
	}
}

func TestFromKeyMsg_MatchesParsedDescriptors(t *testing.T) {
	tests := []struct {
		descriptor string
		msg        tea.KeyMsg
	}{
		{descriptor: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
		{descriptor: "shift + tab", msg: tea.KeyMsg{Type: tea.KeyShiftTab}},
		{descriptor: "meta+x", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}},
		{descriptor: "shift+g", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}},
		{descriptor: "return", msg: tea.KeyMsg{Type: tea.KeyEnter}},
		{descriptor: "ctrl+up", msg: tea.KeyMsg{Type: tea.KeyCtrlUp}},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			assert.Equal(t, keys.Parse(tt.descriptor), FromKeyMsg(tt.msg).Descriptor())
		})
	}
}
