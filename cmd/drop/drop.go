// Package drop implements the drop command.
package drop

import (
	"fmt"

	"github.com/centpub/centpub/app"
	"github.com/centpub/centpub/cmd/output"
	"github.com/spf13/cobra"
)

func NewCmdDrop() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop <deployment-id>",
		Short: "Drop a deployment",
		Long: `Discard a deployment in VALIDATED or FAILED state. Dropping is
irreversible: the deployment ID stops being a valid target afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrop(cmd, args)
		},
	}

	return cmd
}

// runDrop handles the main logic for dropping a deployment
func runDrop(cmd *cobra.Command, args []string) error {
	deploymentID := args[0]

	if err := app.Initialize(); err != nil {
		return err
	}
	manager := app.GetPublisher()

	if err := manager.Drop(cmd.Context(), deploymentID); err != nil {
		return fmt.Errorf("dropping deployment: %w", err)
	}

	return output.FprintSuccess(cmd, "Deployment dropped successfully!")
}
