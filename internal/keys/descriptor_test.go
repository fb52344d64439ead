package keys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Descriptor
	}{
		{
			name: "ctrl combo",
			in:   "ctrl+c",
			want: Descriptor{Name: "c", Ctrl: true},
		},
		{
			name: "whitespace around plus is trimmed",
			in:   "shift + tab",
			want: Descriptor{Name: "tab", Shift: true},
		},
		{
			name: "all modifiers",
			in:   "ctrl+shift+meta+k",
			want: Descriptor{Name: "k", Ctrl: true, Shift: true, Meta: true},
		},
		{
			name: "modifier order does not matter",
			in:   "k+meta+ctrl",
			want: Descriptor{Name: "k", Ctrl: true, Meta: true},
		},
		{
			name: "plain key",
			in:   "x",
			want: Descriptor{Name: "x"},
		},
		{
			name: "named key",
			in:   "  return ",
			want: Descriptor{Name: "return"},
		},
		{
			name: "empty string",
			in:   "",
			want: Descriptor{},
		},
		{
			name: "modifiers only",
			in:   "ctrl+shift",
			want: Descriptor{Name: "", Ctrl: true, Shift: true},
		},
		{
			name: "multiple names are concatenated",
			in:   "ctrl+a+b",
			want: Descriptor{Name: "ab", Ctrl: true},
		},
		{
			name: "modifier tokens are case sensitive",
			in:   "Ctrl+c",
			want: Descriptor{Name: "Ctrlc"},
		},
		{
			name: "trailing plus",
			in:   "ctrl+",
			want: Descriptor{Name: "", Ctrl: true},
		},
		{
			name: "repeated modifier",
			in:   "ctrl+ctrl+x",
			want: Descriptor{Name: "x", Ctrl: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestParse_NoModifierTokens(t *testing.T) {
	token := rapid.StringMatching(`[a-z0-9]{1,8}`).Filter(func(s string) bool {
		return s != TokenCtrl && s != TokenShift && s != TokenMeta
	})
	pad := rapid.StringMatching(` {0,2}`)

	rapid.Check(t, func(rt *rapid.T) {
		tokens := rapid.SliceOfN(token, 1, 4).Draw(rt, "tokens")

		var b strings.Builder
		for i, tok := range tokens {
			if i > 0 {
				b.WriteString("+")
			}
			b.WriteString(pad.Draw(rt, "left"))
			b.WriteString(tok)
			b.WriteString(pad.Draw(rt, "right"))
		}

		got := Parse(b.String())

		if got != (Descriptor{Name: strings.Join(tokens, "")}) {
			rt.Fatalf("Parse(%q) = %+v, want name %q with no modifiers", b.String(), got, strings.Join(tokens, ""))
		}
	})
}

func TestParse_StringRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := Descriptor{
			Name:  rapid.StringMatching(`[a-z]{1,6}`).Filter(func(s string) bool { return s != TokenCtrl && s != TokenShift && s != TokenMeta }).Draw(rt, "name"),
			Ctrl:  rapid.Bool().Draw(rt, "ctrl"),
			Shift: rapid.Bool().Draw(rt, "shift"),
			Meta:  rapid.Bool().Draw(rt, "meta"),
		}

		if got := Parse(d.String()); got != d {
			rt.Fatalf("Parse(%q) = %+v, want %+v", d.String(), got, d)
		}
	})
}

func TestDescriptor_String(t *testing.T) {
	assert.Equal(t, "ctrl+c", Descriptor{Name: "c", Ctrl: true}.String())
	assert.Equal(t, "ctrl+shift+meta+k", Descriptor{Name: "k", Meta: true, Shift: true, Ctrl: true}.String())
	assert.Equal(t, "tab", Descriptor{Name: "tab"}.String())
	assert.Equal(t, "", Descriptor{}.String())
}

func TestDescriptor_IsModified(t *testing.T) {
	assert.False(t, Descriptor{Name: "x"}.IsModified())
	assert.True(t, Descriptor{Name: "x", Meta: true}.IsModified())
}
