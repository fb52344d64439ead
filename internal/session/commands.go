package session

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/keyline/internal/command"
	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/envfile"
	"github.com/rileyhilliard/keyline/internal/ui"
)

// Commands returns the line-command table for cfg: the builtins plus keys,
// which lists cfg's bindings. Command output goes to out.
func Commands(cfg *config.Config, out io.Writer) *command.Table {
	t := command.Builtins(cfg.Env.Vars, out)
	t.MustRegister(command.Command{
		Name:    "keys",
		Usage:   "keys",
		Summary: "List key bindings",
		Action: func(_ *envfile.File, _ []string) error {
			fmt.Fprint(out, ui.RenderBindingTable(Rows(cfg.Bindings)))
			return nil
		},
	})
	return t
}
