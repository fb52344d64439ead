package terminal

import (
	"os"

	"github.com/rileyhilliard/keyline/internal/errors"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// RequireInteractive returns a TERMINAL error unless both in and out are
// terminals. Raw keystroke input needs a real TTY on both ends.
func RequireInteractive(in, out *os.File) error {
	if !IsTerminal(in) {
		return errors.New(errors.ErrTerminal,
			"stdin is not a terminal",
			"Run keyline from an interactive shell, or use 'keyline exec <command>' for scripts")
	}
	if !IsTerminal(out) {
		return errors.New(errors.ErrTerminal,
			"stdout is not a terminal",
			"Don't pipe keyline's output when running the interactive session")
	}
	return nil
}
