package keys

import (
	"context"

	"github.com/rileyhilliard/keyline/internal/logger"
)

// EscapeName is the reserved key name that always terminates input handling.
const EscapeName = "escape"

// RawEvent is a keystroke as reported by the terminal driver.
// Zero values stand in for fields the driver did not report.
type RawEvent struct {
	Name  string
	Ctrl  bool
	Shift bool
	Meta  bool
}

// Descriptor returns the candidate descriptor used for matching.
func (e RawEvent) Descriptor() Descriptor {
	return Descriptor{
		Name:  e.Name,
		Ctrl:  e.Ctrl,
		Shift: e.Shift,
		Meta:  e.Meta,
	}
}

// IsEscape reports whether the event is the reserved escape key.
func (e RawEvent) IsEscape() bool {
	return e.Name == EscapeName
}

// Result is the outcome of dispatching one keystroke.
type Result int

const (
	// Ignored means no binding matched.
	Ignored Result = iota
	// Handled means exactly one action ran.
	Handled
	// Terminate means the reserved escape key was pressed.
	Terminate
)

func (r Result) String() string {
	switch r {
	case Ignored:
		return "ignored"
	case Handled:
		return "handled"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// Dispatcher routes raw keystrokes to the actions of a Registry.
type Dispatcher struct {
	registry *Registry
	log      logger.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for per-keystroke debug output.
func WithLogger(l logger.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDispatcher creates a dispatcher over reg. A nil registry behaves as an
// empty one.
func NewDispatcher(reg *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		log:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the registry this dispatcher matches against.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch handles a single keystroke. Escape returns Terminate without
// consulting the registry. Otherwise the first matching entry's action runs
// synchronously and Handled is returned; with no match the keystroke is
// dropped and Ignored is returned.
func (d *Dispatcher) Dispatch(ev RawEvent) Result {
	if ev.IsEscape() {
		d.log.Debug("escape pressed, terminating")
		return Terminate
	}

	candidate := ev.Descriptor()
	entry, ok := d.registry.Lookup(candidate)
	if !ok {
		d.log.Debug("no binding for %s", candidate)
		return Ignored
	}

	d.log.Debug("%s matched binding %q", candidate, entry.Source)
	if entry.Action != nil {
		entry.Action()
	}
	return Handled
}

// Run consumes events one at a time until escape is pressed, the channel is
// closed, or ctx is done. The next event is not received until the current
// action returns.
func (d *Dispatcher) Run(ctx context.Context, events <-chan RawEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if d.Dispatch(ev) == Terminate {
				return nil
			}
		}
	}
}
