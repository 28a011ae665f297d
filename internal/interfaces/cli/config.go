package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"predeploy.dev/cli/internal/infrastructure/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect the configuration used by predeploy.

Values are layered: built-in defaults, then the YAML config file, then
PREDEPLOY_* environment variables, then command line flags.`,
	}

	configCmd.AddCommand(NewConfigShowCommand(container))
	configCmd.AddCommand(NewConfigPathCommand(container))

	return configCmd
}

// NewConfigShowCommand creates the show subcommand
func NewConfigShowCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container == nil || container.App == nil {
				return fmt.Errorf("configuration is not loaded")
			}

			data, err := config.MarshalConfig(container.App.Config())
			if err != nil {
				return fmt.Errorf("failed to render configuration: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "# Current configuration")
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// NewConfigPathCommand creates the path subcommand
func NewConfigPathCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container == nil || container.App == nil {
				return fmt.Errorf("configuration is not loaded")
			}

			path := container.App.ConfigPath()
			if path == "" {
				path = "(none)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file path: %s\n", path)
			return nil
		},
	}
}
