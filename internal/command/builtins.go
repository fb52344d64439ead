package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/keyline/internal/envfile"
	"github.com/rileyhilliard/keyline/internal/ui"
	"github.com/rileyhilliard/keyline/internal/util"
)

// EnvCommand writes the env file from defaults merged with KEY=VALUE
// arguments; arguments win over defaults.
func EnvCommand(defaults map[string]string, out io.Writer) Command {
	return Command{
		Name:    "env",
		Usage:   "env [KEY=VALUE ...]",
		Summary: "Create the environment file",
		Action: func(file *envfile.File, args []string) error {
			overrides, err := envfile.ParseAssignments(args)
			if err != nil {
				return err
			}

			vars := envfile.Merge(defaults, overrides)
			if err := file.Write(vars); err != nil {
				return err
			}

			fmt.Fprintf(out, "%s Wrote %d %s to %s\n",
				ui.SymbolSuccess, len(vars), util.Pluralize(len(vars), "variable", "variables"), file.Path)
			return nil
		},
	}
}

// HelpCommand lists the commands of t. It reads the table at call time, so
// commands registered after it are listed too.
func HelpCommand(t *Table, out io.Writer) Command {
	return Command{
		Name:    "help",
		Usage:   "help",
		Summary: "List available commands",
		Action: func(_ *envfile.File, _ []string) error {
			width := 0
			for _, c := range t.Commands() {
				if len(usage(c)) > width {
					width = len(usage(c))
				}
			}
			for _, c := range t.Commands() {
				u := usage(c)
				fmt.Fprintf(out, "  %s%s  %s\n", u, strings.Repeat(" ", width-len(u)), c.Summary)
			}
			return nil
		},
	}
}

// Builtins returns a table holding env and help.
func Builtins(envDefaults map[string]string, out io.Writer) *Table {
	t := NewTable()
	t.MustRegister(
		EnvCommand(envDefaults, out),
		HelpCommand(t, out),
	)
	return t
}

func usage(c Command) string {
	if c.Usage != "" {
		return c.Usage
	}
	return c.Name
}
