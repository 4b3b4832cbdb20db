// Package status implements the status command.
package status

import (
	"fmt"

	"github.com/centpub/centpub/app"
	"github.com/centpub/centpub/cmd/output"
	"github.com/spf13/cobra"
)

func NewCmdStatus() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <deployment-id>",
		Short: "Check deployment status",
		Long: `Display the current server-side state of a deployment, its package URLs
once validation succeeded, and any validation errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, args)
		},
	}

	return cmd
}

// runStatus handles the main logic for displaying deployment status
func runStatus(cmd *cobra.Command, args []string) error {
	deploymentID := args[0]

	if err := app.Initialize(); err != nil {
		return err
	}
	manager := app.GetPublisher()

	deployment, err := manager.Status(cmd.Context(), deploymentID)
	if err != nil {
		return fmt.Errorf("checking deployment status: %w", err)
	}

	details, err := output.PrintDeploymentDetails(deployment)
	if err != nil {
		return err
	}
	return output.FprintPlain(cmd, "%s", details)
}
