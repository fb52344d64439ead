package config

import (
	"os"

	"github.com/rileyhilliard/keyline/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = `# keyline configuration
# Bindings are matched top to bottom; the first match wins.
# Escape always quits and can't be rebound.
# Actions: prompt, exec (needs line), help, clear, quit

`

// Marshal renders cfg as a commented YAML document.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}
	return append([]byte(fileHeader), data...), nil
}

// Write saves cfg to path.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}
	return nil
}
