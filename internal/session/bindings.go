package session

import (
	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/keys"
	"github.com/rileyhilliard/keyline/internal/ui"
)

// Describe labels a binding's action for listings, e.g. "exec: env".
func Describe(b config.BindingConfig) string {
	if b.Action == config.ActionExec && b.Line != "" {
		return b.Action + ": " + b.Line
	}
	return b.Action
}

// Rows builds the binding listing in match order, flagging bindings an
// earlier one shadows.
func Rows(bindings []config.BindingConfig) []ui.BindingRow {
	kb := make([]keys.Binding, len(bindings))
	for i, b := range bindings {
		kb[i] = keys.Binding{Descriptor: b.Key}
	}
	reg := keys.NewRegistry(kb)

	shadowed := make(map[int]bool)
	for _, i := range reg.Shadowed() {
		shadowed[i] = true
	}

	rows := make([]ui.BindingRow, len(bindings))
	for i, e := range reg.Entries() {
		rows[i] = ui.BindingRow{
			Key:       e.Source,
			Canonical: e.Descriptor.String(),
			Action:    Describe(bindings[i]),
			Shadowed:  shadowed[i],
		}
	}
	return rows
}
