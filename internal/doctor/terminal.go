package doctor

import (
	"os"

	"github.com/rileyhilliard/keyline/internal/terminal"
)

// TerminalCheck verifies stdin and stdout are terminals, which the
// interactive session needs.
type TerminalCheck struct {
	In  *os.File
	Out *os.File
}

func (c *TerminalCheck) Name() string     { return "terminal" }
func (c *TerminalCheck) Category() string { return CategoryTerminal }

func (c *TerminalCheck) Run() CheckResult {
	if err := terminal.RequireInteractive(c.In, c.Out); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    firstLine(err) + ", the interactive session won't start",
			Suggestion: "Use 'keyline exec <command>' from scripts",
		}
	}
	return pass(c.Name(), "Interactive terminal")
}

func (c *TerminalCheck) Fix() error {
	return nil
}
