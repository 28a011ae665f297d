package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"predeploy.dev/cli/internal/core/domain"
	configports "predeploy.dev/cli/internal/core/ports/config"
)

// FileLoader reads the YAML config file. A missing file yields an empty layer.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader { return &FileLoader{path: path} }

func (l *FileLoader) Name() string { return "file" }

// Path returns the file this loader reads
func (l *FileLoader) Path() string { return l.path }

func (l *FileLoader) Load(ctx context.Context) (domain.Config, error) {
	if l.path == "" {
		return domain.Config{}, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Config{}, nil
		}
		return domain.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg domain.Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.Config{}, fmt.Errorf("failed to parse config file %s: %w", l.path, err)
	}

	return cfg, nil
}

// MarshalConfig renders a config as YAML, the same format FileLoader reads
func MarshalConfig(cfg domain.Config) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

var _ configports.Loader = (*FileLoader)(nil)
