// Package publish implements the publish command.
package publish

import (
	"fmt"

	"github.com/centpub/centpub/app"
	"github.com/centpub/centpub/cmd/output"
	"github.com/centpub/centpub/cmd/utils"
	"github.com/spf13/cobra"
)

func NewCmdPublish() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish <deployment-id>",
		Short: "Publish a validated deployment",
		Long: `Request publication of a deployment in VALIDATED state. The server
enforces the state precondition and rejects anything else.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, args)
		},
	}

	cmd.Flags().Bool("wait", false, "Wait for the deployment to be published")
	return cmd
}

// runPublish handles the main logic for publishing a deployment
func runPublish(cmd *cobra.Command, args []string) error {
	deploymentID := args[0]

	wait, _ := cmd.Flags().GetBool("wait")

	if err := app.Initialize(); err != nil {
		return err
	}
	manager := app.GetPublisher()

	if err := manager.Publish(cmd.Context(), deploymentID); err != nil {
		return fmt.Errorf("publishing deployment: %w", err)
	}

	if err := output.FprintSuccess(cmd, "Deployment published successfully!"); err != nil {
		return err
	}

	if wait {
		return utils.WaitForPublished(cmd, manager, deploymentID)
	}
	return nil
}
