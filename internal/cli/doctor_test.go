package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rileyhilliard/keyline/internal/doctor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectChecks(t *testing.T) {
	path := withConfigFile(t, "bindings:\n  - key: ctrl+c\n    action: quit\n  - key: c+ctrl\n    action: help\n")

	checks := collectChecks(path, t.TempDir())
	results := doctor.RunAll(checks)

	byName := make(map[string]doctor.CheckResult)
	for _, r := range results {
		byName[r.Name] = r
	}

	assert.Equal(t, doctor.StatusPass, byName["config_file"].Status)
	assert.Equal(t, doctor.StatusPass, byName["config_schema"].Status)
	assert.Equal(t, doctor.StatusWarn, byName["bindings_shadowed"].Status)
	assert.Equal(t, doctor.StatusWarn, byName["bindings_prompt"].Status)
	assert.Contains(t, byName, "env_dir")
	assert.Contains(t, byName, "terminal")
}

func TestCollectChecks_BrokenConfig(t *testing.T) {
	path := withConfigFile(t, "bindings: [\n")

	results := doctor.RunAll(collectChecks(path, t.TempDir()))

	assert.True(t, doctor.HasFailures(results))
	for _, r := range results {
		assert.NotEqual(t, "bindings_shadowed", r.Name, "binding checks need a loaded config")
	}
}

func TestOutputDoctorText(t *testing.T) {
	asciiOutput(t)
	checks := []doctor.Check{&doctor.PromptBindingCheck{}}
	results := doctor.RunAll(checks)

	var out bytes.Buffer
	outputDoctorText(&out, checks, results, false)

	assert.Contains(t, out.String(), "BINDINGS")
	assert.Contains(t, out.String(), "No binding opens the [?] prompt")
	assert.Contains(t, out.String(), "keyline keys add : prompt")
	assert.Contains(t, out.String(), "1 issue found")
}

func TestOutputDoctorJSON(t *testing.T) {
	path := withConfigFile(t, "version: 1\n")
	checks := collectChecks(path, t.TempDir())
	results := doctor.RunAll(checks)

	var out bytes.Buffer
	require.NoError(t, outputDoctorJSON(&out, checks, results))

	var report DoctorOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.NotEmpty(t, report.Categories)
	assert.Equal(t, doctor.CategoryConfig, report.Categories[0].Name)
	assert.Equal(t, len(results), report.Summary.Pass+report.Summary.Warn+report.Summary.Fail)
}
