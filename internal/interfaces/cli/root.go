package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"predeploy.dev/cli/internal/application/services"
	"predeploy.dev/cli/internal/core/domain"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// Application is the runtime the commands drive. It is implemented by the DI
// container so that this package does not import it.
type Application interface {
	// Configure reloads configuration with the given overrides and rewires
	// the services that depend on it.
	Configure(ctx context.Context, overrides Overrides) error
	Config() domain.Config
	ConfigPath() string
	ValidationService() *services.ValidationService
}

// Overrides holds configuration values given on the command line. Empty
// strings and nil pointers leave the loaded value untouched.
type Overrides struct {
	ConfigPath string
	LogLevel   string
	RepoPath   string
	Remote     string
	NoColor    *bool
	Panel      *bool
}

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	App Application
}

// NewRootCommand creates the predeploy command. Without a subcommand it runs
// the validation.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "predeploy",
		Short: "Pre-Deploy Validator - configuration drift checks",
		Long: `predeploy compares configuration snapshots of deployment environments
and branches before a release.

It reports keys missing from a target, keys a target adds, values whose type
changed, and environments whose deployed commit is behind production. It also
shows the remote URL of the surrounding git repository.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfigurationOverrides(cmd, container); err != nil {
				return fmt.Errorf("failed to apply configuration overrides: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, container)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetVersionTemplate(versionTemplate())

	rootCmd.PersistentFlags().String("config", "", "Config file path (default is $HOME/.config/predeploy/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("panel", false, "Show the report in an interactive panel")
	rootCmd.PersistentFlags().String("repo-path", "", "Directory searched for a git repository")
	rootCmd.PersistentFlags().String("remote", "", "Git remote whose URL is reported")

	rootCmd.AddCommand(NewValidateCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

func versionTemplate() string {
	return fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH)
}

// applyConfigurationOverrides hands the explicitly set flags to the application
func applyConfigurationOverrides(cmd *cobra.Command, container *CLIContainer) error {
	if container == nil || container.App == nil {
		return nil
	}

	overrides, err := collectOverrides(cmd)
	if err != nil {
		return err
	}

	return container.App.Configure(cmd.Context(), overrides)
}

// collectOverrides reads only the flags the user actually set
func collectOverrides(cmd *cobra.Command) (Overrides, error) {
	var o Overrides
	flags := cmd.Flags()

	for name, target := range map[string]*string{
		"config":    &o.ConfigPath,
		"log-level": &o.LogLevel,
		"repo-path": &o.RepoPath,
		"remote":    &o.Remote,
	} {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return Overrides{}, fmt.Errorf("failed to read --%s: %w", name, err)
		}
		*target = value
	}

	for name, target := range map[string]**bool{
		"no-color": &o.NoColor,
		"panel":    &o.Panel,
	} {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetBool(name)
		if err != nil {
			return Overrides{}, fmt.Errorf("failed to read --%s: %w", name, err)
		}
		*target = &value
	}

	return o, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context, container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
