// Package config loads the console configuration and turns its namespace
// section into a navigation tree.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/awsh/pkg/adapters/process"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default configuration path.
const EnvConfigPath = "AWSH_CONFIG"

// DefaultFileName is looked up in the home directory.
const DefaultFileName = ".awsh.yaml"

//go:embed default.yaml
var defaultYAML []byte

// IdentityConfig controls the caller-identity banner shown at startup.
type IdentityConfig struct {
	Enabled bool     `yaml:"enabled"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Config is the root configuration document.
type Config struct {
	Root           string                  `yaml:"root"`
	Collisions     string                  `yaml:"collisions"`
	HistoryFile    string                  `yaml:"history_file"`
	ConfirmActions bool                    `yaml:"confirm_actions"`
	Identity       IdentityConfig          `yaml:"identity"`
	Handlers       []process.ProcessConfig `yaml:"handlers"`

	// Namespace is kept as a raw node so that key order survives decoding.
	Namespace yaml.Node `yaml:"namespace"`

	// Path is the file the configuration was read from; empty for the default.
	Path string `yaml:"-"`
}

// Default returns the embedded configuration.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return cfg
}

// Parse decodes a configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Load reads path on top of the defaults.
// If the file does not exist it returns Default() with no error; keys missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// ResolvePath picks the configuration path: explicit flag, then AWSH_CONFIG,
// then ~/.awsh.yaml.
func ResolvePath(flag string) string {
	if flag != "" {
		return ExpandHome(flag)
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return ExpandHome(env)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, DefaultFileName)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
