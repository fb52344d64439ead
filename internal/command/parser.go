// Package command parses prompt lines and runs them against a command table.
package command

import "strings"

// Line is a parsed prompt line.
type Line struct {
	Name string
	Args []string
}

// Parse splits a line on single spaces. The first token is the command name
// and the remaining tokens are passed through verbatim, so consecutive
// spaces produce empty arguments and a leading space produces an empty name.
// There is no quoting. Args is never nil.
func Parse(line string) Line {
	tokens := strings.Split(line, " ")
	args := make([]string, 0, len(tokens)-1)
	args = append(args, tokens[1:]...)
	return Line{Name: tokens[0], Args: args}
}

// IsEmpty reports whether the line names no command.
func (l Line) IsEmpty() bool {
	return l.Name == ""
}
