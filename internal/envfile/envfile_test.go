package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rileyhilliard/keyline/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		path string
		want string
	}{
		{name: "default name", dir: "/work", path: "", want: filepath.Join("/work", ".env")},
		{name: "relative path", dir: "/work", path: "config/dev.env", want: filepath.Join("/work", "config/dev.env")},
		{name: "absolute path", dir: "/work", path: "/etc/app.env", want: "/etc/app.env"},
		{name: "no dir", dir: "", path: "local.env", want: "local.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.dir, tt.path).Path)
		})
	}
}

func TestFile_WriteThenRead(t *testing.T) {
	f := New(t.TempDir(), "nested/.env")
	vars := map[string]string{
		"APP_ENV":  "development",
		"PORT":     "8080",
		"GREETING": "hello world",
	}

	require.NoError(t, f.Write(vars))
	assert.True(t, f.Exists())

	got, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, vars, got)
}

func TestFile_WriteSortsKeys(t *testing.T) {
	f := New(t.TempDir(), "")

	require.NoError(t, f.Write(map[string]string{"ZED": "z", "ALPHA": "a"}))

	data, err := os.ReadFile(f.Path)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(data), "ALPHA"), strings.Index(string(data), "ZED"))
}

func TestFile_WriteEmpty(t *testing.T) {
	f := New(t.TempDir(), "")

	require.NoError(t, f.Write(map[string]string{}))

	data, err := os.ReadFile(f.Path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFile_ReadMissing(t *testing.T) {
	f := New(t.TempDir(), "missing.env")

	assert.False(t, f.Exists())
	got, err := f.Read()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFile_ReadMalformed(t *testing.T) {
	f := New(t.TempDir(), "")
	require.NoError(t, os.WriteFile(f.Path, []byte("this is not an assignment\n"), 0600))

	_, err := f.Read()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEnv))
}

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    map[string]string
		wantErr string
	}{
		{
			name: "no args",
			args: []string{},
			want: map[string]string{},
		},
		{
			name: "simple pairs",
			args: []string{"A=1", "B=two"},
			want: map[string]string{"A": "1", "B": "two"},
		},
		{
			name: "value keeps later equals signs",
			args: []string{"DSN=user=me"},
			want: map[string]string{"DSN": "user=me"},
		},
		{
			name: "empty value",
			args: []string{"EMPTY="},
			want: map[string]string{"EMPTY": ""},
		},
		{
			name: "empty tokens are skipped",
			args: []string{"", "A=1", ""},
			want: map[string]string{"A": "1"},
		},
		{
			name:    "missing equals",
			args:    []string{"A=1", "oops"},
			wantErr: "'oops' is not a KEY=VALUE assignment",
		},
		{
			name:    "missing key",
			args:    []string{"=value"},
			wantErr: "is not a KEY=VALUE assignment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssignments(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, errors.IsCode(err, errors.ErrEnv))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMerge(t *testing.T) {
	base := map[string]string{"A": "1", "B": "2"}
	got := Merge(base, map[string]string{"B": "override", "C": "3"})

	assert.Equal(t, map[string]string{"A": "1", "B": "override", "C": "3"}, got)
	assert.Equal(t, "2", base["B"], "base must not be modified")
}
