// Package terminal adapts the Bubble Tea terminal driver to keyline's raw
// keystroke events.
package terminal

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/keyline/internal/keys"
)

// Key names follow the readline keypress conventions.
const (
	NameReturn    = "return"
	NameEnter     = "enter"
	NameTab       = "tab"
	NameBackspace = "backspace"
	NameSpace     = "space"
)

// specialKeys covers every non-rune key type that is not a plain ctrl+letter.
var specialKeys = map[tea.KeyType]keys.RawEvent{
	tea.KeyEnter:     {Name: NameReturn},
	tea.KeyCtrlJ:     {Name: NameEnter},
	tea.KeyTab:       {Name: NameTab},
	tea.KeyShiftTab:  {Name: NameTab, Shift: true},
	tea.KeyEsc:       {Name: keys.EscapeName},
	tea.KeyBackspace: {Name: NameBackspace},
	tea.KeyCtrlH:     {Name: NameBackspace},
	tea.KeySpace:     {Name: NameSpace},

	tea.KeyCtrlAt:           {Name: "@", Ctrl: true},
	tea.KeyCtrlBackslash:    {Name: "\\", Ctrl: true},
	tea.KeyCtrlCloseBracket: {Name: "]", Ctrl: true},
	tea.KeyCtrlCaret:        {Name: "^", Ctrl: true},
	tea.KeyCtrlUnderscore:   {Name: "_", Ctrl: true},

	tea.KeyUp:     {Name: "up"},
	tea.KeyDown:   {Name: "down"},
	tea.KeyRight:  {Name: "right"},
	tea.KeyLeft:   {Name: "left"},
	tea.KeyHome:   {Name: "home"},
	tea.KeyEnd:    {Name: "end"},
	tea.KeyPgUp:   {Name: "pageup"},
	tea.KeyPgDown: {Name: "pagedown"},
	tea.KeyDelete: {Name: "delete"},
	tea.KeyInsert: {Name: "insert"},

	tea.KeyCtrlUp:     {Name: "up", Ctrl: true},
	tea.KeyCtrlDown:   {Name: "down", Ctrl: true},
	tea.KeyCtrlRight:  {Name: "right", Ctrl: true},
	tea.KeyCtrlLeft:   {Name: "left", Ctrl: true},
	tea.KeyCtrlHome:   {Name: "home", Ctrl: true},
	tea.KeyCtrlEnd:    {Name: "end", Ctrl: true},
	tea.KeyCtrlPgUp:   {Name: "pageup", Ctrl: true},
	tea.KeyCtrlPgDown: {Name: "pagedown", Ctrl: true},

	tea.KeyShiftUp:    {Name: "up", Shift: true},
	tea.KeyShiftDown:  {Name: "down", Shift: true},
	tea.KeyShiftRight: {Name: "right", Shift: true},
	tea.KeyShiftLeft:  {Name: "left", Shift: true},
	tea.KeyShiftHome:  {Name: "home", Shift: true},
	tea.KeyShiftEnd:   {Name: "end", Shift: true},

	tea.KeyCtrlShiftUp:    {Name: "up", Ctrl: true, Shift: true},
	tea.KeyCtrlShiftDown:  {Name: "down", Ctrl: true, Shift: true},
	tea.KeyCtrlShiftLeft:  {Name: "left", Ctrl: true, Shift: true},
	tea.KeyCtrlShiftRight: {Name: "right", Ctrl: true, Shift: true},
	tea.KeyCtrlShiftHome:  {Name: "home", Ctrl: true, Shift: true},
	tea.KeyCtrlShiftEnd:   {Name: "end", Ctrl: true, Shift: true},

	tea.KeyF1:  {Name: "f1"},
	tea.KeyF2:  {Name: "f2"},
	tea.KeyF3:  {Name: "f3"},
	tea.KeyF4:  {Name: "f4"},
	tea.KeyF5:  {Name: "f5"},
	tea.KeyF6:  {Name: "f6"},
	tea.KeyF7:  {Name: "f7"},
	tea.KeyF8:  {Name: "f8"},
	tea.KeyF9:  {Name: "f9"},
	tea.KeyF10: {Name: "f10"},
	tea.KeyF11: {Name: "f11"},
	tea.KeyF12: {Name: "f12"},
	tea.KeyF13: {Name: "f13"},
	tea.KeyF14: {Name: "f14"},
	tea.KeyF15: {Name: "f15"},
	tea.KeyF16: {Name: "f16"},
	tea.KeyF17: {Name: "f17"},
	tea.KeyF18: {Name: "f18"},
	tea.KeyF19: {Name: "f19"},
	tea.KeyF20: {Name: "f20"},
}

// FromKeyMsg converts a Bubble Tea key message into a RawEvent.
//
// Control codes become ctrl+<letter>, upper-case letters become the
// lower-case name with Shift set, and an Alt prefix sets Meta. Keys the
// driver cannot name come through with an empty Name and match nothing.
func FromKeyMsg(msg tea.KeyMsg) keys.RawEvent {
	var ev keys.RawEvent

	switch {
	case msg.Type == tea.KeyRunes:
		ev = fromRunes(msg.Runes)
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ && !isSpecial(msg.Type):
		ev = keys.RawEvent{
			Name: string(rune('a' + int(msg.Type-tea.KeyCtrlA))),
			Ctrl: true,
		}
	default:
		ev = specialKeys[msg.Type]
	}

	if msg.Alt {
		ev.Meta = true
	}
	return ev
}

func isSpecial(t tea.KeyType) bool {
	_, ok := specialKeys[t]
	return ok
}

func fromRunes(runes []rune) keys.RawEvent {
	if len(runes) != 1 {
		return keys.RawEvent{Name: string(runes)}
	}

	r := runes[0]
	switch {
	case r == ' ':
		return keys.RawEvent{Name: NameSpace}
	case unicode.IsUpper(r):
		return keys.RawEvent{Name: strings.ToLower(string(r)), Shift: true}
	default:
		return keys.RawEvent{Name: string(r)}
	}
}
