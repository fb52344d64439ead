// Package session runs the interactive keyline terminal session. Keystrokes
// are routed through a keys.Dispatcher built from the configured bindings;
// the prompt action opens a "[?]" line editor whose lines run against the
// command table. Escape always ends the session.
package session

import (
	"context"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/errors"
	"github.com/rileyhilliard/keyline/internal/logger"
	"github.com/rileyhilliard/keyline/internal/ui"
)

// LogFileName is written next to the config while debug logging is on.
const LogFileName = "keyline.log"

// Options configures a session.
type Options struct {
	// Config is the loaded configuration. Defaults are used when nil.
	Config *config.Config
	// ConfigPath is where Config came from; empty when running on defaults.
	ConfigPath string
	// Watch reloads bindings whenever the config file changes.
	Watch bool
	// Debug sends log output to LogFileName instead of stderr.
	Debug bool
	// Version is shown in the session header.
	Version string

	Input  io.Reader
	Output io.Writer
	Logger logger.Logger
}

// Run starts the session and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	dir := config.Dir(opts.ConfigPath)

	// The TUI owns stderr, so log lines go to a file.
	if opts.Debug || logger.DebugEnabled() {
		f, err := tea.LogToFile(filepath.Join(dir, LogFileName), "keyline")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrTerminal,
				"Couldn't open the debug log",
				"Check that "+dir+" is writable, or unset "+logger.DebugEnv)
		}
		defer f.Close()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(cfg, dir, log)
	source := opts.ConfigPath
	if source == "" {
		source = "defaults"
	}
	model.header = ui.RenderHeader(ui.HeaderInfo{
		Version: opts.Version,
		Source:  source,
		Hint:    "Press a bound key, or esc to quit",
	})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	program := tea.NewProgram(model, programOpts...)

	if opts.Watch && opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, config.DefaultDebounce, log)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't watch the config file",
				"Run without --watch to skip live reload")
		}
		defer watcher.Stop()

		changes, err := watcher.Start()
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't watch the config file",
				"Run without --watch to skip live reload")
		}

		bridge := NewBridge(program, opts.ConfigPath, log)
		go bridge.Forward(ctx, changes)
		log.Debug("watching %s for binding changes", opts.ConfigPath)
	}

	if _, err := program.Run(); err != nil {
		// A cancelled ctx kills the program; that's a normal exit.
		if ctx.Err() != nil {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Terminal session failed",
			"Make sure keyline is running in an interactive terminal")
	}
	return nil
}
