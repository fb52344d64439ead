package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/errors"
	"github.com/rileyhilliard/keyline/internal/terminal"
	"github.com/rileyhilliard/keyline/internal/ui"
	"github.com/spf13/cobra"
)

var initForce bool

// initCmd creates a new .keyline.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .keyline.yaml configuration",
	Long: `Create a .keyline.yaml file in the current directory with the default
bindings, ready to edit.

Examples:
  keyline init
  keyline init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(cmd.OutOrStdout(), initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config without asking")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string    // Directory to create the config in
	Overwrite      bool      // Overwrite existing config without asking
	NonInteractive bool      // Never prompt
	Out            io.Writer // Where to report progress
}

// Init creates a new .keyline.yaml configuration file.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	configPath := filepath.Join(opts.Dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := config.Write(configPath, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  keyline            - Start a session (: opens the prompt)")
	fmt.Fprintln(out, "  keyline keys       - List the bindings")
	fmt.Fprintln(out, "  keyline exec env   - Write the env file")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(out io.Writer, force bool) error {
	return Init(InitOptions{
		Dir:            ".",
		Overwrite:      force,
		NonInteractive: !terminal.IsTerminal(os.Stdin),
		Out:            out,
	})
}
