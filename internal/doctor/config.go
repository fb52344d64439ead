package doctor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/keys"
	"github.com/rileyhilliard/keyline/internal/util"
)

// ConfigFileCheck verifies that a config file exists. Without one keyline
// runs on the default bindings, so a missing file is only a warning.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
	Dir        string // Where Fix writes a default config
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return CategoryConfig }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Config file not found: " + c.ConfigPath,
			Suggestion: "Check the --config path",
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No config file found, using default bindings",
			Suggestion: "Run 'keyline init' to create a .keyline.yaml you can edit",
			Fixable:    true,
		}
	}

	return pass(c.Name(), "Config file: "+path)
}

// Fix writes the default config when none exists.
func (c *ConfigFileCheck) Fix() error {
	if path, err := config.Find(c.ConfigPath); err != nil || path != "" {
		return err
	}
	return config.Write(filepath.Join(c.Dir, config.ConfigFileName), config.DefaultConfig())
}

// ConfigSchemaCheck verifies that the config loads and validates.
type ConfigSchemaCheck struct {
	ConfigPath string
}

func (c *ConfigSchemaCheck) Name() string     { return "config_schema" }
func (c *ConfigSchemaCheck) Category() string { return CategoryConfig }

func (c *ConfigSchemaCheck) Run() CheckResult {
	cfg, _, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Failed to load config",
			Suggestion: firstLine(err),
		}
	}

	if err := config.Validate(cfg); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Schema error: " + firstLine(err),
			Suggestion: "Fix the configuration errors in your .keyline.yaml",
		}
	}

	return pass(c.Name(), "Schema valid")
}

func (c *ConfigSchemaCheck) Fix() error {
	return nil // Schema issues require manual intervention
}

// ShadowedBindingsCheck warns about bindings that can never fire because an
// earlier binding matches the same keys.
type ShadowedBindingsCheck struct {
	Bindings []config.BindingConfig
}

func (c *ShadowedBindingsCheck) Name() string     { return "bindings_shadowed" }
func (c *ShadowedBindingsCheck) Category() string { return CategoryBindings }

// bindingRegistry parses bindings in order without actions.
func bindingRegistry(bindings []config.BindingConfig) *keys.Registry {
	kb := make([]keys.Binding, len(bindings))
	for i, b := range bindings {
		kb[i] = keys.Binding{Descriptor: b.Key}
	}
	return keys.NewRegistry(kb)
}

func (c *ShadowedBindingsCheck) Run() CheckResult {
	reg := bindingRegistry(c.Bindings)
	entries := reg.Entries()

	var shadowed []string
	for _, i := range reg.Shadowed() {
		shadowed = append(shadowed, fmt.Sprintf("%q (%s)", entries[i].Source, entries[i].Descriptor))
	}

	if len(shadowed) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%d %s can never fire: %s", len(shadowed), util.Pluralize(len(shadowed), "binding", "bindings"), strings.Join(shadowed, ", ")),
			Suggestion: "An earlier binding matches the same keys; remove or change the later one",
		}
	}

	n := len(c.Bindings)
	return pass(c.Name(), fmt.Sprintf("%d %s, none shadowed", n, util.Pluralize(n, "binding", "bindings")))
}

func (c *ShadowedBindingsCheck) Fix() error {
	return nil
}

// PromptBindingCheck warns when no reachable binding opens the prompt, which
// leaves line commands reachable only through exec bindings.
type PromptBindingCheck struct {
	Bindings []config.BindingConfig
}

func (c *PromptBindingCheck) Name() string     { return "bindings_prompt" }
func (c *PromptBindingCheck) Category() string { return CategoryBindings }

func (c *PromptBindingCheck) Run() CheckResult {
	reg := bindingRegistry(c.Bindings)
	shadowed := make(map[int]bool)
	for _, i := range reg.Shadowed() {
		shadowed[i] = true
	}

	for i, b := range c.Bindings {
		if b.Action == config.ActionPrompt && !shadowed[i] {
			return pass(c.Name(), fmt.Sprintf("Prompt opens with %s", keys.Parse(b.Key)))
		}
	}

	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    "No binding opens the [?] prompt",
		Suggestion: "Add one with: keyline keys add : prompt",
	}
}

func (c *PromptBindingCheck) Fix() error {
	return nil
}

// NewConfigChecks creates the config and binding checks. cfg may be nil when
// the config failed to load; binding checks are skipped then.
func NewConfigChecks(configPath, dir string, cfg *config.Config) []Check {
	checks := []Check{
		&ConfigFileCheck{ConfigPath: configPath, Dir: dir},
		&ConfigSchemaCheck{ConfigPath: configPath},
	}
	if cfg != nil {
		checks = append(checks,
			&ShadowedBindingsCheck{Bindings: cfg.Bindings},
			&PromptBindingCheck{Bindings: cfg.Bindings},
		)
	}
	return checks
}

// firstLine returns the headline of a rendered error.
func firstLine(err error) string {
	msg := strings.TrimSpace(err.Error())
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return strings.TrimSpace(strings.TrimPrefix(msg, "✗"))
}
