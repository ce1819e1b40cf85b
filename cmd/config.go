package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables read by heath and passed to extensions.
const (
	EnvFolder  = "HEATH_FOLDER"
	EnvEditor  = "HEATH_EDITOR"
	EnvStyle   = "HEATH_STYLE"
	EnvVerbose = "HEATH_VERBOSE"
	// EnvTestingNow freezes the clock, in "2006-01-02 15:04" format.
	EnvTestingNow = "HEATH_TESTING_NOW"
)

// Config is the user configuration of heath.
type Config struct {
	// Folder is the ledger folder. Empty means the current directory.
	Folder string `yaml:"folder"`
	// Editor is the program launched by the edit command.
	Editor string `yaml:"editor"`
	// Style is the glamour style used to print reports.
	Style string    `yaml:"style"`
	Git   GitConfig `yaml:"git"`
}

// GitConfig configures the push and pull commands.
type GitConfig struct {
	Remote string `yaml:"remote"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Editor: "editor",
		Style:  "auto",
		Git:    GitConfig{Remote: "origin"},
	}
}

// ConfigPath returns the path of the configuration file,
// $XDG_CONFIG_HOME/heath/config.yaml or its platform equivalent.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "heath", "config.yaml"), nil
}

// LoadConfig reads the configuration file at path and applies environment
// overrides. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvFolder); v != "" {
		c.Folder = v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		c.Editor = v
	}
	if v := os.Getenv(EnvEditor); v != "" {
		c.Editor = v
	}
	if v := os.Getenv(EnvStyle); v != "" {
		c.Style = v
	}
}
