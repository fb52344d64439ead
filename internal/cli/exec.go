package cli

import (
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/envfile"
	"github.com/rileyhilliard/keyline/internal/session"
	"github.com/spf13/cobra"
)

// execCmd runs a single line command without starting the session
var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run one line command and exit",
	Long: `Run a line command exactly as if it had been typed at the [?] prompt.

Examples:
  keyline exec env
  keyline exec env APP_ENV=test DEBUG=1
  keyline exec help`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		return execLine(cmd.OutOrStdout(), cfg, config.Dir(path), strings.Join(args, " "))
	},
}

func init() {
	// Everything after the command name belongs to the line command.
	execCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(execCmd)
}

// execLine runs line against the session command table. dir resolves the
// env file path.
func execLine(out io.Writer, cfg *config.Config, dir, line string) error {
	if out == nil {
		out = os.Stdout
	}
	log := newLogger("[exec]")
	file := envfile.New(dir, cfg.Env.File)
	log.Debug("running %q with env file %s", line, file.Path)
	return session.Commands(cfg, out).Execute(file, line)
}
