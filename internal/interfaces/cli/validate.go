package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"predeploy.dev/cli/internal/application/services"
	"predeploy.dev/cli/internal/infrastructure/output"
)

// NewValidateCommand creates the validate command
func NewValidateCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check environments and branches for configuration drift",
		Long: `Run the pre-deploy drift checks.

This command will:
- Compare PROD against DEV and QA
- Check that DEV and QA are deployed from the PROD commit
- Compare the main branch PROD config against the feature branch
- Show the remote URL of the current git repository

Findings never make the command fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, container)
		},
	}
}

// runValidate writes the report to stdout, or to the panel when enabled, and
// prints the completion notice to stderr.
func runValidate(cmd *cobra.Command, container *CLIContainer) error {
	if container == nil || container.App == nil {
		return fmt.Errorf("validation is not configured")
	}

	ctx := cmd.Context()
	cfg := container.App.Config()
	service := container.App.ValidationService()

	if cfg.Panel {
		buf := output.NewBufferSink()
		if _, err := service.Run(ctx, buf); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		panel := output.NewPanel(buf, reportStyles(cfg.NoColor), services.CompletionNotice)
		if err := panel.Show(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		sink := output.NewStyledWriterSink(cmd.OutOrStdout(), reportStyles(cfg.NoColor))
		if _, err := service.Run(ctx, sink); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	fmt.Fprintln(cmd.ErrOrStderr(), services.CompletionNotice)
	return nil
}

// reportStyles returns nil, meaning plain text, when color is disabled
func reportStyles(noColor bool) output.Styles {
	if noColor {
		return nil
	}
	return output.DefaultStyles()
}
