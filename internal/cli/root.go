package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/errors"
	"github.com/rileyhilliard/keyline/internal/logger"
	"github.com/rileyhilliard/keyline/internal/session"
	"github.com/rileyhilliard/keyline/internal/terminal"
	"github.com/rileyhilliard/keyline/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile   string
	verbose   bool
	noColor   bool
	watchFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "keyline",
	Short: "Bind keystrokes to actions and run line commands",
	Long: `keyline reads raw keystrokes from the terminal and runs the action bound
to each one. Bindings live in .keyline.yaml and are matched top to bottom.

Press the prompt key (":" by default) to type a line command such as
"env APP_ENV=test". Escape always quits.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionCommand(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .keyline.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "reload bindings when the config file changes")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

// renderError formats err for the terminal. Structured errors render
// themselves; anything else (usually from cobra) gets the same leading mark.
func renderError(err error) string {
	if klErr, ok := errors.As(err); ok {
		return klErr.Error()
	}
	return fmt.Sprintf("%s %s\n", ui.SymbolFail, err.Error())
}

// newLogger returns a logger honoring --verbose and KEYLINE_DEBUG.
func newLogger(prefix string) logger.Logger {
	if verbose {
		return logger.NewVerboseLogger(prefix)
	}
	return logger.NewEnvLogger(prefix)
}

// loadConfig finds, loads and validates the config, applying its color
// mode unless --no-color was given.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, path, err
	}
	if !noColor {
		ui.ApplyColorMode(cfg.Output.Color)
	}
	return cfg, path, nil
}

func sessionCommand(cmd *cobra.Command) error {
	if err := terminal.RequireInteractive(os.Stdin, os.Stdout); err != nil {
		return err
	}

	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	if watchFlag && path == "" {
		warnf(cmd.ErrOrStderr(), "No config file to watch, running on defaults")
	}

	log := newLogger("[session]")
	if path != "" {
		log.Debug("using config %s", path)
	}

	return session.Run(cmd.Context(), session.Options{
		Config:     cfg,
		ConfigPath: path,
		Watch:      watchFlag,
		Debug:      verbose,
		Version:    formatVersion(version),
		Logger:     log,
	})
}

func warnf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, ui.WarningStyle().Render(ui.SymbolWarning+" "+fmt.Sprintf(format, args...)))
}
