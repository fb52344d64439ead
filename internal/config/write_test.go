package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := DefaultConfig()
	cfg.Env.Vars = map[string]string{"APP_ENV": "development"}

	require.NoError(t, Write(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMarshal_HasHeader(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, string(data), "# keyline configuration")
	assert.Contains(t, string(data), "Escape always quits")
}
