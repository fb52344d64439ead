package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rileyhilliard/keyline/internal/errors"
	"github.com/rileyhilliard/keyline/internal/keys"
)

var colorModes = []string{"auto", "always", "never"}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but keyline only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade keyline or lower the version field")
	}

	for i, b := range cfg.Bindings {
		if err := validateBinding(i, b); err != nil {
			return err
		}
	}

	if cfg.Output.Color != "" && !slices.Contains(colorModes, cfg.Output.Color) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a color mode", cfg.Output.Color),
			"Set output.color to one of: "+strings.Join(colorModes, ", "))
	}

	if strings.TrimSpace(cfg.Env.File) == "" {
		return errors.New(errors.ErrConfig,
			"env.file is empty",
			"Set env.file to the path of the file the env command should write, e.g. .env")
	}

	for name := range cfg.Env.Vars {
		if name == "" || strings.ContainsAny(name, " =\t\n") {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' isn't a valid variable name", name),
				"Variable names in env.vars can't be empty or contain spaces or '='")
		}
	}

	return nil
}

func validateBinding(i int, b BindingConfig) error {
	where := fmt.Sprintf("bindings[%d]", i)

	if strings.TrimSpace(b.Key) == "" {
		return errors.New(errors.ErrConfig,
			where+" has no key",
			"Give every binding a key, e.g. key: \"ctrl+e\"")
	}

	if keys.Parse(b.Key).Name == keys.EscapeName {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s binds '%s', but escape is reserved", where, b.Key),
			"Escape always quits keyline; pick a different key")
	}

	if !slices.Contains(Actions, b.Action) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s (%s) has unknown action '%s'", where, b.Key, b.Action),
			"Use one of: "+strings.Join(Actions, ", "))
	}

	if b.Action == ActionExec && strings.TrimSpace(b.Line) == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s (%s) uses exec without a line", where, b.Key),
			"Add the command to run, e.g. line: \"env\"")
	}

	return nil
}
