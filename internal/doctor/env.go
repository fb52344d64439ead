package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/keyline/internal/envfile"
	"github.com/rileyhilliard/keyline/internal/util"
)

// EnvDirCheck verifies the env file's directory exists.
type EnvDirCheck struct {
	File *envfile.File
}

func (c *EnvDirCheck) Name() string     { return "env_dir" }
func (c *EnvDirCheck) Category() string { return CategoryEnv }

func (c *EnvDirCheck) Run() CheckResult {
	dir := filepath.Dir(c.File.Path)
	info, err := os.Stat(dir)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Env file directory doesn't exist: " + dir,
			Suggestion: "The env command creates it on first write",
			Fixable:    true,
		}
	}
	if !info.IsDir() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    dir + " is not a directory",
			Suggestion: "Point env.file at a path inside a directory",
		}
	}
	return pass(c.Name(), "Env file directory: "+dir)
}

// Fix creates the missing directory.
func (c *EnvDirCheck) Fix() error {
	return os.MkdirAll(filepath.Dir(c.File.Path), 0755)
}

// EnvFileCheck verifies an existing env file parses.
type EnvFileCheck struct {
	File *envfile.File
}

func (c *EnvFileCheck) Name() string     { return "env_file" }
func (c *EnvFileCheck) Category() string { return CategoryEnv }

func (c *EnvFileCheck) Run() CheckResult {
	if !c.File.Exists() {
		return pass(c.Name(), "No env file yet at "+c.File.Path)
	}

	vars, err := c.File.Read()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Env file doesn't parse: " + firstLine(err),
			Suggestion: "Fix the file by hand, or rewrite it with: keyline exec env",
		}
	}
	return pass(c.Name(), fmt.Sprintf("%s has %d %s", c.File.Path, len(vars), util.Pluralize(len(vars), "variable", "variables")))
}

func (c *EnvFileCheck) Fix() error {
	return nil
}

// NewEnvChecks creates the env file checks.
func NewEnvChecks(file *envfile.File) []Check {
	return []Check{
		&EnvDirCheck{File: file},
		&EnvFileCheck{File: file},
	}
}
