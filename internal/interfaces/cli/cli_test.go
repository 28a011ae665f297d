package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predeploy.dev/cli/internal/application/services"
	"predeploy.dev/cli/internal/core/domain"
	"predeploy.dev/cli/internal/core/drift"
	"predeploy.dev/cli/internal/core/fixtures"
)

type stubApp struct {
	cfg          domain.Config
	path         string
	service      *services.ValidationService
	configured   []Overrides
	configureErr error
}

func (a *stubApp) Configure(ctx context.Context, overrides Overrides) error {
	a.configured = append(a.configured, overrides)
	return a.configureErr
}

func (a *stubApp) Config() domain.Config { return a.cfg }

func (a *stubApp) ConfigPath() string { return a.path }

func (a *stubApp) ValidationService() *services.ValidationService { return a.service }

func newStubApp() *stubApp {
	cfg := domain.DefaultConfig()
	cfg.NoColor = true
	snapshots := services.Snapshots{
		Prod:        fixtures.ProdConfig(),
		Dev:         fixtures.DevConfig(),
		QA:          fixtures.QAConfig(),
		MainProd:    fixtures.MainProdConfig(),
		FeatureProd: fixtures.FeatureBranchProdConfig(),
	}
	return &stubApp{
		cfg:     cfg,
		path:    "/home/ops/.config/predeploy/config.yaml",
		service: services.NewValidationService(drift.NewStructuralComparator(), nil, snapshots, nil),
	}
}

func execute(t *testing.T, app Application, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand(&CLIContainer{App: app})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	// nil args would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// TestValidateCommand_Run_WritesReportAndNotice tests both entry points of the validation
func TestValidateCommand_Run_WritesReportAndNotice(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "RootDefault", args: nil},
		{name: "ValidateSubcommand", args: []string{"validate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, newStubApp(), tt.args...)

			require.NoError(t, err, "Findings must not fail the command")
			lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
			assert.Equal(t, "=== Pre-Deploy Validator Started ===", lines[0])
			assert.Equal(t, "=== Validation Completed ===", lines[len(lines)-1])
			assert.Contains(t, lines, `⚠️ [dev] Type mismatch on transaction.timeout: expected "number", got "string"`)
			assert.Contains(t, lines, "❌ [feature-prod] Missing key: transaction.maxAmount")
			assert.Contains(t, lines, "⚠ No Git repository found.")
			assert.Equal(t, services.CompletionNotice+"\n", stderr)
		})
	}
}

// TestRootCommand_Flags_PassedAsOverrides tests that only explicitly set flags are forwarded
func TestRootCommand_Flags_PassedAsOverrides(t *testing.T) {
	app := newStubApp()

	_, _, err := execute(t, app, "validate",
		"--config", "/tmp/predeploy.yaml",
		"--log-level", "debug",
		"--remote", "upstream",
		"--panel=false",
	)

	require.NoError(t, err)
	require.Len(t, app.configured, 1)
	overrides := app.configured[0]
	assert.Equal(t, "/tmp/predeploy.yaml", overrides.ConfigPath)
	assert.Equal(t, "debug", overrides.LogLevel)
	assert.Equal(t, "upstream", overrides.Remote)
	assert.Empty(t, overrides.RepoPath)
	assert.Nil(t, overrides.NoColor)
	require.NotNil(t, overrides.Panel)
	assert.False(t, *overrides.Panel)
}

// TestRootCommand_ConfigureError_FailsBeforeRunning tests that invalid configuration aborts the run
func TestRootCommand_ConfigureError_FailsBeforeRunning(t *testing.T) {
	app := newStubApp()
	app.configureErr = errors.New("invalid configuration: log_level: invalid log level: loud")

	stdout, stderr, err := execute(t, app, "--log-level", "loud")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply configuration overrides")
	assert.Contains(t, err.Error(), "loud")
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

// TestRootCommand_PositionalArgs_Rejected tests that validation takes no arguments
func TestRootCommand_PositionalArgs_Rejected(t *testing.T) {
	_, _, err := execute(t, newStubApp(), "validate", "prod")

	require.Error(t, err)
}

// TestConfigCommands_Output tests config show and config path
func TestConfigCommands_Output(t *testing.T) {
	t.Run("Show", func(t *testing.T) {
		stdout, _, err := execute(t, newStubApp(), "config", "show")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "# Current configuration\n"))
		assert.Contains(t, stdout, "log_level: warn")
		assert.Contains(t, stdout, "no_color: true")
		assert.Contains(t, stdout, "remote: origin")
	})

	t.Run("Path", func(t *testing.T) {
		stdout, _, err := execute(t, newStubApp(), "config", "path")

		require.NoError(t, err)
		assert.Equal(t, "Configuration file path: /home/ops/.config/predeploy/config.yaml\n", stdout)
	})

	t.Run("PathUnset", func(t *testing.T) {
		app := newStubApp()
		app.path = ""

		stdout, _, err := execute(t, app, "config", "path")

		require.NoError(t, err)
		assert.Equal(t, "Configuration file path: (none)\n", stdout)
	})
}

// TestVersionCommand_Output tests the version banner
func TestVersionCommand_Output(t *testing.T) {
	stdout, _, err := execute(t, newStubApp(), "version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "predeploy version "+Version)
	assert.Contains(t, stdout, "Build time: "+BuildTime)
	assert.Contains(t, stdout, "Platform: ")
}

// TestCommands_WithoutApplication_Fail tests the unconfigured container
func TestCommands_WithoutApplication_Fail(t *testing.T) {
	for _, args := range [][]string{nil, {"config", "show"}, {"config", "path"}} {
		_, _, err := execute(t, nil, args...)
		assert.Error(t, err, "args %v", args)
	}
}
