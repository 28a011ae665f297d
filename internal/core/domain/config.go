package domain

import (
	"os"
	"path/filepath"
)

// Config represents the CLI configuration
type Config struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	NoColor  bool   `yaml:"no_color" env:"NO_COLOR"`
	Panel    bool   `yaml:"panel" env:"PANEL"`
	RepoPath string `yaml:"repo_path" env:"REPO_PATH"`
	Remote   string `yaml:"remote" env:"REMOTE"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		NoColor:  false,
		Panel:    false,
		RepoPath: ".",
		Remote:   "origin",
	}
}

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "PREDEPLOY_"

// DefaultConfigPath returns the path of the user's config file
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "predeploy", "config.yaml"), nil
}
