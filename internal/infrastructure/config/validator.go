package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"predeploy.dev/cli/internal/core/domain"
	configports "predeploy.dev/cli/internal/core/ports/config"
)

// ConfigValidator validates configuration values
type ConfigValidator struct {
	remotePattern *regexp.Regexp
}

// NewConfigValidator creates a new configuration validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{
		// git remote names: no whitespace, no leading dash
		remotePattern: regexp.MustCompile(`^[A-Za-z0-9_.][A-Za-z0-9_./-]*$`),
	}
}

// ValidateLogLevel validates log level value
func (v *ConfigValidator) ValidateLogLevel(level string) error {
	validLevels := []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

	normalizedLevel := strings.ToLower(strings.TrimSpace(level))
	if normalizedLevel == "" {
		return nil
	}

	for _, valid := range validLevels {
		if normalizedLevel == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid log level: %s (valid levels: %s)", level, strings.Join(validLevels, ", "))
}

// ValidateRemote validates the git remote name
func (v *ConfigValidator) ValidateRemote(remote string) error {
	if remote == "" {
		return fmt.Errorf("remote name cannot be empty")
	}
	if !v.remotePattern.MatchString(remote) {
		return fmt.Errorf("invalid remote name: %q", remote)
	}
	return nil
}

// ValidateRepoPath validates the directory searched for a repository. The
// path need not exist: a missing repository is reported by the validation
// run, not treated as a configuration error.
func (v *ConfigValidator) ValidateRepoPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("repository path cannot be empty")
	}
	return nil
}

// ValidateAll validates every field and returns the failures keyed by field name
func (v *ConfigValidator) ValidateAll(cfg domain.Config) map[string]error {
	errs := make(map[string]error)

	if err := v.ValidateLogLevel(cfg.LogLevel); err != nil {
		errs["log_level"] = err
	}
	if err := v.ValidateRemote(cfg.Remote); err != nil {
		errs["remote"] = err
	}
	if err := v.ValidateRepoPath(cfg.RepoPath); err != nil {
		errs["repo_path"] = err
	}

	return errs
}

// Validate implements configports.Validator
func (v *ConfigValidator) Validate(cfg domain.Config) error {
	fieldErrs := v.ValidateAll(cfg)
	if len(fieldErrs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	errs := make([]error, 0, len(fields))
	for _, field := range fields {
		errs = append(errs, fmt.Errorf("%s: %w", field, fieldErrs[field]))
	}
	return errors.Join(errs...)
}

// ExpandPath expands ~ and environment variables in paths
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	return os.ExpandEnv(path)
}

var _ configports.Validator = (*ConfigValidator)(nil)
