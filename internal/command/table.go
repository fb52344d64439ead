package command

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/keyline/internal/envfile"
	"github.com/rileyhilliard/keyline/internal/errors"
)

// Action runs a line command against the shared env file handle.
type Action func(file *envfile.File, args []string) error

// Command is a named entry in a Table.
type Command struct {
	Name    string
	Usage   string
	Summary string
	Action  Action
}

// Table maps command names to actions. It is built once at startup and
// handed to whatever reads prompt lines.
type Table struct {
	commands []Command
	index    map[string]int
}

// NewTable creates an empty command table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Register adds a command. Names must be non-empty, contain no spaces, and
// be unique within the table.
func (t *Table) Register(cmd Command) error {
	if cmd.Name == "" || strings.ContainsAny(cmd.Name, " \t") {
		return errors.New(errors.ErrCommand,
			fmt.Sprintf("Invalid command name %q", cmd.Name),
			"Command names are single words without spaces")
	}
	if _, exists := t.index[cmd.Name]; exists {
		return errors.New(errors.ErrCommand,
			fmt.Sprintf("Command '%s' is registered twice", cmd.Name),
			"Register each command name once")
	}
	if cmd.Action == nil {
		return errors.New(errors.ErrCommand,
			fmt.Sprintf("Command '%s' has no action", cmd.Name),
			"Provide an Action when registering the command")
	}
	t.index[cmd.Name] = len(t.commands)
	t.commands = append(t.commands, cmd)
	return nil
}

// MustRegister is Register for static tables; it panics on error.
func (t *Table) MustRegister(cmds ...Command) *Table {
	for _, cmd := range cmds {
		if err := t.Register(cmd); err != nil {
			panic(err)
		}
	}
	return t
}

// Lookup returns the command registered under name.
func (t *Table) Lookup(name string) (Command, bool) {
	i, ok := t.index[name]
	if !ok {
		return Command{}, false
	}
	return t.commands[i], true
}

// Commands returns the registered commands in registration order.
func (t *Table) Commands() []Command {
	out := make([]Command, len(t.commands))
	copy(out, t.commands)
	return out
}

// Names returns the registered command names in registration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.commands))
	for i, c := range t.commands {
		names[i] = c.Name
	}
	return names
}

// Execute parses line and runs the matching command with file and the
// parsed arguments. An empty command name is a no-op. An unknown name
// returns a COMMAND error ("<name> is not a valid command") and runs
// nothing. Errors are never fatal to the caller's input loop.
func (t *Table) Execute(file *envfile.File, line string) error {
	parsed := Parse(line)
	if parsed.IsEmpty() {
		return nil
	}

	cmd, ok := t.Lookup(parsed.Name)
	if !ok {
		return errors.NewInvalidCommand(parsed.Name)
	}
	return cmd.Action(file, parsed.Args)
}
