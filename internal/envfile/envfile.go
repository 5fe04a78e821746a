// Package envfile manages the project's .env secrets file.
//
// The file holds literal KEY=value lines consumed by later tooling, so
// writes append rather than rewriting: existing lines, comments, and
// ordering are preserved.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const defaultName = ".env"

// File is a handle on one dotenv file.
type File struct {
	path string
}

// FindOrCreate opens the .env file in dir, creating an empty one (mode 0600,
// secrets live here) if it does not exist. An empty dir means the working
// directory.
func FindOrCreate(dir string) (*File, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("envfile: unable to determine working directory: %w", err)
		}
		dir = wd
	}

	path := filepath.Join(dir, defaultName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("envfile: failed to create %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("envfile: failed to close %s: %w", path, err)
	}

	return &File{path: path}, nil
}

// Path returns the location of the dotenv file.
func (f *File) Path() string {
	return f.path
}

// Get returns the value stored under key, or "" when absent.
func (f *File) Get(key string) (string, error) {
	values, err := f.read()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Has reports whether key is present with a non-empty value.
func (f *File) Has(key string) (bool, error) {
	value, err := f.Get(key)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(value) != "", nil
}

// Set appends a KEY=value line. The caller is expected to check Has first;
// Set does not deduplicate (later lines win on read, matching dotenv
// semantics is not required since init only writes missing keys).
func (f *File) Set(key, value string) error {
	handle, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("envfile: failed to open %s: %w", f.path, err)
	}
	defer handle.Close()

	if _, err := fmt.Fprintf(handle, "%s=%s\n", key, value); err != nil {
		return fmt.Errorf("envfile: failed to write %s: %w", f.path, err)
	}

	return nil
}

func (f *File) read() (map[string]string, error) {
	values, err := godotenv.Read(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("envfile: failed to parse %s: %w", f.path, err)
	}
	return values, nil
}
