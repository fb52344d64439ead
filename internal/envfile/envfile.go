// Package envfile wraps the dotenv file that line commands share.
package envfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/keyline/internal/errors"
	"github.com/subosito/gotenv"
)

// DefaultName is the env file written when the config names none.
const DefaultName = ".env"

// File is a handle to a dotenv file on disk. It is created once per session
// and passed to every line-command action.
type File struct {
	Path string
	Perm os.FileMode
}

// New returns a handle for path. Relative paths are resolved against dir.
func New(dir, path string) *File {
	if path == "" {
		path = DefaultName
	}
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	return &File{Path: path, Perm: 0600}
}

// Exists reports whether the file is present on disk.
func (f *File) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}

// Read parses the file. A missing file reads as empty.
func (f *File) Read() (map[string]string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrEnv,
			"Can't open "+f.Path,
			"Check file permissions")
	}
	defer fh.Close()

	env, err := gotenv.StrictParse(fh)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrEnv,
			"Can't parse "+f.Path,
			"Fix the offending line or delete the file and run 'env' again")
	}
	return env, nil
}

// Write replaces the file contents with vars, sorted by key.
func (f *File) Write(vars map[string]string) error {
	content, err := gotenv.Marshal(gotenv.Env(vars))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrEnv,
			"Can't encode environment variables",
			"Check variable names and values")
	}
	if content != "" {
		content += "\n"
	}

	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapWithCode(err, errors.ErrEnv,
				"Can't create directory "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(f.Path, []byte(content), f.Perm); err != nil {
		return errors.WrapWithCode(err, errors.ErrEnv,
			"Can't write "+f.Path,
			"Check directory permissions")
	}
	return nil
}

// ParseAssignments turns KEY=VALUE arguments into a map. Empty arguments
// (from repeated spaces on the command line) are skipped.
func ParseAssignments(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		if arg == "" {
			continue
		}
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.New(errors.ErrEnv,
				"'"+arg+"' is not a KEY=VALUE assignment",
				"Pass variables like: env APP_ENV=production PORT=8080")
		}
		out[key] = value
	}
	return out, nil
}

// Merge layers overrides on top of base, returning a new map.
func Merge(base, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
