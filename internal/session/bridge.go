package session

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/logger"
)

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge turns config file changes into ReloadMsg values and forwards them
// to the Bubble Tea program via Send. This is goroutine-safe.
type Bridge struct {
	program Sender
	path    string
	log     logger.Logger
}

// NewBridge creates a bridge that reloads path and sends the result to program.
func NewBridge(program Sender, path string, log logger.Logger) *Bridge {
	if log == nil {
		log = logger.Noop()
	}
	return &Bridge{program: program, path: path, log: log}
}

// Reload loads and validates the config and forwards the outcome.
func (b *Bridge) Reload() {
	cfg, err := config.Load(b.path)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		b.log.Warn("config reload failed: %v", err)
		b.program.Send(ReloadMsg{Err: err})
		return
	}
	b.log.Debug("reloaded %s (%d bindings)", b.path, len(cfg.Bindings))
	b.program.Send(ReloadMsg{Config: cfg})
}

// Forward reloads once per signal on changes until changes is closed or ctx
// is done.
func (b *Bridge) Forward(ctx context.Context, changes <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			b.Reload()
		}
	}
}
