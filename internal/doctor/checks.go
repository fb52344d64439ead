// Package doctor runs diagnostic checks over a keyline setup: the config
// file, its bindings, the env file, and the terminal.
package doctor

import (
	"fmt"

	"github.com/rileyhilliard/keyline/internal/util"
)

// CheckStatus represents the result status of a check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusWarn
	StatusFail
)

// String returns a human-readable status string.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Check categories, in report order.
const (
	CategoryConfig   = "CONFIG"
	CategoryBindings = "BINDINGS"
	CategoryEnv      = "ENV"
	CategoryTerminal = "TERMINAL"
)

// Categories lists every category in the order reports show them.
var Categories = []string{CategoryConfig, CategoryBindings, CategoryEnv, CategoryTerminal}

// CheckResult contains the outcome of running a check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Fixable    bool        `json:"fixable,omitempty"` // Whether --fix can address this
}

// Check defines the interface for diagnostic checks.
type Check interface {
	// Name returns the check's identifier.
	Name() string

	// Category returns one of the Category constants.
	Category() string

	// Run executes the check and returns the result.
	Run() CheckResult

	// Fix attempts to repair the issue. Checks that can't fix anything
	// return nil.
	Fix() error
}

// RunAll executes checks in order and returns their results.
func RunAll(checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	for i, check := range checks {
		results[i] = check.Run()
	}
	return results
}

// FixAll runs Fix for every fixable failure or warning and re-runs the check.
// Results whose fix errors are left as they were.
func FixAll(checks []Check, results []CheckResult) []CheckResult {
	fixed := make([]CheckResult, len(results))
	copy(fixed, results)

	for i, r := range results {
		if !r.Fixable || r.Status == StatusPass {
			continue
		}
		if err := checks[i].Fix(); err == nil {
			fixed[i] = checks[i].Run()
		}
	}
	return fixed
}

// CountByStatus counts results by status.
func CountByStatus(results []CheckResult) map[CheckStatus]int {
	counts := make(map[CheckStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// HasFailures returns true if any result has a fail status.
func HasFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// HasIssues returns true if any result has a fail or warn status.
func HasIssues(results []CheckResult) bool {
	for _, r := range results {
		if r.Status != StatusPass {
			return true
		}
	}
	return false
}

// FixableCount returns the number of issues that can be fixed automatically.
func FixableCount(results []CheckResult) int {
	count := 0
	for _, r := range results {
		if r.Fixable && r.Status != StatusPass {
			count++
		}
	}
	return count
}

// Summary returns a one-line summary of the results.
func Summary(results []CheckResult) string {
	counts := CountByStatus(results)
	total := counts[StatusWarn] + counts[StatusFail]

	if total == 0 {
		return "Everything looks good"
	}
	return fmt.Sprintf("%d %s found", total, util.Pluralize(total, "issue", "issues"))
}

func pass(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusPass, Message: message}
}
