package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/doctor"
	"github.com/rileyhilliard/keyline/internal/envfile"
	"github.com/rileyhilliard/keyline/internal/errors"
	"github.com/rileyhilliard/keyline/internal/ui"
	"github.com/spf13/cobra"
)

var (
	doctorJSON bool
	doctorFix  bool
)

// doctorCmd diagnoses config, binding and terminal problems
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the config, bindings, env file and terminal",
	Long: `Run diagnostic checks and report anything that would stop keyline
from working as configured.

Examples:
  keyline doctor
  keyline doctor --fix
  keyline doctor --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(cmd.OutOrStdout())
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput is the --json report.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput groups results under one category.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput counts results by status.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

func doctorCommand(w io.Writer) error {
	checks := collectChecks(cfgFile, ".")
	results := doctor.RunAll(checks)

	if doctorFix {
		results = doctor.FixAll(checks, results)
	}

	if doctorJSON {
		if err := outputDoctorJSON(w, checks, results); err != nil {
			return err
		}
	} else {
		outputDoctorText(w, checks, results, doctorFix)
	}

	if doctor.HasFailures(results) {
		return errors.New(errors.ErrConfig,
			"Doctor found problems",
			"Fix the failed checks above and run 'keyline doctor' again")
	}
	return nil
}

// collectChecks builds every check. Config load errors are reported by the
// schema check, so a broken config still yields a full report.
func collectChecks(cfgPath, dir string) []doctor.Check {
	cfg, path, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		cfg = nil
	}

	checks := doctor.NewConfigChecks(cfgPath, dir, cfg)

	envCfg := cfg
	if envCfg == nil {
		envCfg = config.DefaultConfig()
	}
	checks = append(checks, doctor.NewEnvChecks(envfile.New(config.Dir(path), envCfg.Env.File))...)
	checks = append(checks, &doctor.TerminalCheck{In: os.Stdin, Out: os.Stdout})

	return checks
}

func groupResults(checks []doctor.Check, results []doctor.CheckResult) map[string][]doctor.CheckResult {
	grouped := make(map[string][]doctor.CheckResult)
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], results[i])
	}
	return grouped
}

func outputDoctorJSON(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	grouped := groupResults(checks, results)

	output := DoctorOutput{Categories: []CategoryOutput{}}
	for _, cat := range doctor.Categories {
		if len(grouped[cat]) == 0 {
			continue
		}
		output.Categories = append(output.Categories, CategoryOutput{Name: cat, Results: grouped[cat]})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Fixable:  doctor.FixableCount(results),
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputDoctorText(w io.Writer, checks []doctor.Check, results []doctor.CheckResult, fixed bool) {
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("keyline diagnostic report"))
	fmt.Fprintln(w)

	grouped := groupResults(checks, results)
	for _, category := range doctor.Categories {
		if len(grouped[category]) == 0 {
			continue
		}
		fmt.Fprintln(w, headerStyle.Render(category))
		for _, result := range grouped[category] {
			renderCheckResult(w, result)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("━", 60))
	fmt.Fprintln(w)

	if !doctor.HasIssues(results) {
		fmt.Fprintf(w, "%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), doctor.Summary(results))
	} else {
		fmt.Fprintf(w, "%s %s\n", ui.ErrorStyle().Render(ui.SymbolFail), doctor.Summary(results))
		if doctor.FixableCount(results) > 0 && !fixed {
			fmt.Fprintf(w, "\n  Run with %s to attempt automatic fixes where possible.\n",
				ui.MutedStyle().Render("--fix"))
		}
	}
	fmt.Fprintln(w)
}

func renderCheckResult(w io.Writer, result doctor.CheckResult) {
	var symbol string
	var style lipgloss.Style

	switch result.Status {
	case doctor.StatusPass:
		symbol, style = ui.SymbolSuccess, ui.SuccessStyle()
	case doctor.StatusWarn:
		symbol, style = ui.SymbolWarning, ui.WarningStyle()
	default:
		symbol, style = ui.SymbolFail, ui.ErrorStyle()
	}

	fmt.Fprintf(w, "  %s %s\n", style.Render(symbol), result.Message)

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Fprintf(w, "    %s\n", ui.MutedStyle().Render(line))
		}
	}
}
