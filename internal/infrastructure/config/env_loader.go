package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"

	"predeploy.dev/cli/internal/core/domain"
	configports "predeploy.dev/cli/internal/core/ports/config"
)

// EnvLoader reads PREDEPLOY_* environment variables
type EnvLoader struct {
	environ map[string]string
}

// NewEnvLoader reads the process environment
func NewEnvLoader() *EnvLoader { return &EnvLoader{} }

// NewEnvLoaderFrom reads from the given variables instead of the process environment
func NewEnvLoaderFrom(environ map[string]string) *EnvLoader {
	return &EnvLoader{environ: environ}
}

func (l *EnvLoader) Name() string { return "env" }

// Load implements Loader by parsing the environment into a config layer.
func (l *EnvLoader) Load(ctx context.Context) (domain.Config, error) {
	var cfg domain.Config
	opts := env.Options{Prefix: domain.EnvPrefix}
	if l.environ != nil {
		opts.Environment = l.environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return domain.Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

var _ configports.Loader = (*EnvLoader)(nil)
