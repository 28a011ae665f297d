package di

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predeploy.dev/cli/internal/core/domain"
	"predeploy.dev/cli/internal/infrastructure/output"
	"predeploy.dev/cli/internal/interfaces/cli"
)

func newTestContainer(t *testing.T, configPath string, environ map[string]string) *Container {
	t.Helper()

	if environ == nil {
		environ = map[string]string{}
	}
	container, err := NewContainer(
		WithConfigPath(configPath),
		WithEnvironment(environ),
		WithLogOutput(&bytes.Buffer{}),
	)
	require.NoError(t, err)
	return container
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func boolPtr(b bool) *bool { return &b }

func TestNewContainer_WiresDefaults(t *testing.T) {
	container := newTestContainer(t, "", nil)

	assert.Equal(t, domain.DefaultConfig(), container.Config())
	assert.NotNil(t, container.Comparator)
	assert.NotNil(t, container.Repository)
	assert.NotNil(t, container.ValidationService())
	assert.NotNil(t, container.Snapshots.Prod)
	assert.Same(t, container, container.GetCLIContainer().App)
}

func TestContainer_Configure_LayersFileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "log_level: info\nremote: upstream\npanel: true\nrepo_path: "+dir+"\n")
	container := newTestContainer(t, path, map[string]string{"PREDEPLOY_REMOTE": "mirror"})

	err := container.Configure(context.Background(), cli.Overrides{
		LogLevel: "debug",
		Panel:    boolPtr(false),
		NoColor:  boolPtr(true),
	})

	require.NoError(t, err)
	cfg := container.Config()
	assert.Equal(t, "debug", cfg.LogLevel, "flags override the file")
	assert.Equal(t, "mirror", cfg.Remote, "env overrides the file")
	assert.Equal(t, dir, cfg.RepoPath)
	assert.False(t, cfg.Panel, "--panel=false switches off the file value")
	assert.True(t, cfg.NoColor)
	assert.Equal(t, path, container.ConfigPath())
}

func TestContainer_Configure_ConfigFlagReplacesDefaultPath(t *testing.T) {
	dir := t.TempDir()
	defaultPath := writeFile(t, dir, "default.yaml", "remote: upstream\n")
	otherPath := writeFile(t, dir, "other.yaml", "remote: fork\n")
	container := newTestContainer(t, defaultPath, nil)

	require.NoError(t, container.Configure(context.Background(), cli.Overrides{ConfigPath: otherPath}))

	assert.Equal(t, "fork", container.Config().Remote)
	assert.Equal(t, otherPath, container.ConfigPath())
}

func TestContainer_Configure_InvalidConfig_KeepsPrevious(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		overrides cli.Overrides
		expected  string
	}{
		{
			name:      "InvalidLogLevelFlag",
			overrides: cli.Overrides{LogLevel: "loud"},
			expected:  "invalid configuration",
		},
		{
			name:     "UnknownFileField",
			file:     "colour: red\n",
			expected: "failed to load file config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.file != "" {
				path = writeFile(t, t.TempDir(), "config.yaml", tt.file)
			}
			container := newTestContainer(t, path, nil)
			before := container.ValidationService()

			err := container.Configure(context.Background(), tt.overrides)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
			assert.Equal(t, domain.DefaultConfig(), container.Config())
			assert.Same(t, before, container.ValidationService())
		})
	}
}

func TestContainer_ValidationService_ReportsRepositoryOrigin(t *testing.T) {
	repoDir := t.TempDir()
	repo, err := gogit.PlainInit(repoDir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://github.com/acme/payment-service.git"},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		repoPath string
		expected string
	}{
		{name: "InsideRepository", repoPath: repoDir, expected: "📁 Repo URL: https://github.com/acme/payment-service.git"},
		{name: "OutsideRepository", repoPath: t.TempDir(), expected: "⚠ No Git repository found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := newTestContainer(t, "", nil)
			require.NoError(t, container.Configure(context.Background(), cli.Overrides{RepoPath: tt.repoPath}))

			sink := output.NewBufferSink()
			summary, err := container.ValidationService().Run(context.Background(), sink)

			require.NoError(t, err)
			assert.Contains(t, sink.Texts(), tt.expected)
			assert.Equal(t, 6, summary.TotalIssues())
		})
	}
}

func TestContainer_Configure_MissingRepoPath_ReportsNoRepository(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "definitely", "not", "here")
	container := newTestContainer(t, "", map[string]string{"PREDEPLOY_REPO_PATH": missing})

	require.NoError(t, container.Configure(context.Background(), cli.Overrides{}))
	assert.Equal(t, missing, container.Config().RepoPath)

	require.NoError(t, container.Configure(context.Background(), cli.Overrides{RepoPath: missing + "-flag"}))
	assert.Equal(t, missing+"-flag", container.Config().RepoPath)

	sink := output.NewBufferSink()
	summary, err := container.ValidationService().Run(context.Background(), sink)

	require.NoError(t, err)
	assert.Contains(t, sink.Texts(), "⚠ No Git repository found.")
	assert.Equal(t, 6, summary.TotalIssues())
}
