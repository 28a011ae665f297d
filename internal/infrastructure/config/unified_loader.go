package config

import (
	"context"
	"fmt"

	"dario.cat/mergo"

	"predeploy.dev/cli/internal/core/domain"
	configports "predeploy.dev/cli/internal/core/ports/config"
)

// UnifiedLoader layers config sources over the defaults. Later loaders take
// precedence; zero-valued fields never override.
type UnifiedLoader struct {
	loaders   []configports.Loader
	validator configports.Validator
}

// NewUnifiedLoader creates a loader over the given layers, lowest priority first
func NewUnifiedLoader(validator configports.Validator, loaders ...configports.Loader) *UnifiedLoader {
	return &UnifiedLoader{loaders: loaders, validator: validator}
}

// Load merges all layers without validating the result
func (l *UnifiedLoader) Load(ctx context.Context) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	for _, loader := range l.loaders {
		layer, err := loader.Load(ctx)
		if err != nil {
			return domain.Config{}, fmt.Errorf("failed to load %s config: %w", loader.Name(), err)
		}
		if err := Merge(&cfg, layer); err != nil {
			return domain.Config{}, fmt.Errorf("failed to merge %s config: %w", loader.Name(), err)
		}
	}

	return cfg, nil
}

// Validate checks a merged config
func (l *UnifiedLoader) Validate(cfg domain.Config) error {
	if l.validator == nil {
		return nil
	}
	if err := l.validator.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Merge applies the non-zero fields of override onto cfg
func Merge(cfg *domain.Config, override domain.Config) error {
	return mergo.Merge(cfg, override, mergo.WithOverride)
}
