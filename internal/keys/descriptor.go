package keys

import "strings"

// Modifier tokens recognized in descriptor strings. Matching is case-sensitive.
const (
	TokenCtrl  = "ctrl"
	TokenShift = "shift"
	TokenMeta  = "meta"
)

// Descriptor is the canonical shape of a key combination.
// Two descriptors are equal iff all four fields are equal.
type Descriptor struct {
	Name  string
	Ctrl  bool
	Shift bool
	Meta  bool
}

// Parse converts a descriptor string like "ctrl+shift+k" into a Descriptor.
//
// The string is split on "+" and every token trimmed. Tokens other than
// ctrl, shift and meta are concatenated, without separator,
// into Name, so "a+b" yields Name "ab". Parse never fails: an empty string
// yields the zero Descriptor.
func Parse(s string) Descriptor {
	var d Descriptor
	var name strings.Builder

	for _, tok := range strings.Split(s, "+") {
		tok = strings.TrimSpace(tok)
		switch tok {
		case TokenCtrl:
			d.Ctrl = true
		case TokenShift:
			d.Shift = true
		case TokenMeta:
			d.Meta = true
		default:
			name.WriteString(tok)
		}
	}

	d.Name = name.String()
	return d
}

// String renders the descriptor in canonical form: modifiers in the fixed
// order ctrl, shift, meta, followed by the name.
func (d Descriptor) String() string {
	parts := make([]string, 0, 4)
	if d.Ctrl {
		parts = append(parts, TokenCtrl)
	}
	if d.Shift {
		parts = append(parts, TokenShift)
	}
	if d.Meta {
		parts = append(parts, TokenMeta)
	}
	parts = append(parts, d.Name)
	return strings.Join(parts, "+")
}

// IsModified returns true if any modifier flag is set.
func (d Descriptor) IsModified() bool {
	return d.Ctrl || d.Shift || d.Meta
}
