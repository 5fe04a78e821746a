// Package config handles the persisted per-environment configuration
// documents produced by "scaletrail init".
//
// One TOML file is written per environment at ./config/<env>-config.toml.
// Secrets never appear in these files; only *_saved booleans record whether a
// credential was captured (the values live in the companion .env file).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	dirName    = "config"
	fileSuffix = "-config.toml"
)

// dirOverride, when non-empty, replaces the default config directory.
// Intended for testing. Use SetDir / ResetDir to manage.
var dirOverride string

// SetDir overrides the config directory. Intended for testing.
func SetDir(dir string) { dirOverride = dir }

// ResetDir clears the directory override, reverting to the default. Intended for testing.
func ResetDir() { dirOverride = "" }

// Project identifies the initialized project.
type Project struct {
	Name        string `toml:"name"`
	Initialized bool   `toml:"initialized"`
}

// Environment names the deployment target this file represents.
type Environment struct {
	Name string `toml:"name"`
}

// Linode holds the planned compute configuration for one environment.
type Linode struct {
	Region         string   `toml:"region"`
	BackupsEnabled bool     `toml:"backups_enabled"`
	Tags           []string `toml:"tags"`
	InstanceType   string   `toml:"instance_type"`
	Image          string   `toml:"image"`
}

// Cloudflare records which DNS credentials were captured. Booleans only;
// the actual values live in the secrets file.
type Cloudflare struct {
	AccountIDSaved bool `toml:"account_id_saved"`
	APIKeySaved    bool `toml:"api_key_saved"`
}

// SecretSaved flags the presence of a single captured credential.
type SecretSaved struct {
	APIKeySaved bool `toml:"api_key_saved"`
}

// Domain holds the root domain to configure.
type Domain struct {
	Root string `toml:"root"`
}

// EnvironmentConfig is one persisted configuration document. Created once
// during init, read-only thereafter; re-running init regenerates it.
type EnvironmentConfig struct {
	Project     Project     `toml:"project"`
	Environment Environment `toml:"environment"`
	Linode      Linode      `toml:"linode"`
	Cloudflare  Cloudflare  `toml:"cloudflare"`
	Stripe      SecretSaved `toml:"stripe"`
	Sendgrid    SecretSaved `toml:"sendgrid"`
	Domain      Domain      `toml:"domain"`
}

// Dir returns the config directory path. If SetDir has been called, that
// value is returned instead of ./config under the working directory.
func Dir() (string, error) {
	if dirOverride != "" {
		return dirOverride, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine working directory: %w", err)
	}
	return filepath.Join(wd, dirName), nil
}

// Path returns the config file path for the given environment name.
func Path(environment string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, environment+fileSuffix), nil
}

// Save writes the document to the environment's config file, creating the
// config directory if needed.
func (c *EnvironmentConfig) Save() error {
	path, err := Path(c.Environment.Name)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: failed to marshal config for %s: %w", c.Environment.Name, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// Load reads and parses a single environment config file.
func Load(environment string) (*EnvironmentConfig, error) {
	path, err := Path(environment)
	if err != nil {
		return nil, err
	}
	return loadFile(path)
}

// LoadAll reads every *-config.toml under the config directory, sorted by
// environment name. A missing config directory is an error: it means init
// has not been run.
func LoadAll() ([]*EnvironmentConfig, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: no config directory found at %s (run 'scaletrail init' first)", dir)
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", dir, err)
	}

	var configs []*EnvironmentConfig
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileSuffix) {
			continue
		}
		cfg, err := loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Environment.Name < configs[j].Environment.Name
	})

	return configs, nil
}

func loadFile(path string) (*EnvironmentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %s does not exist (run 'scaletrail init' first)", path)
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg EnvironmentConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}
