// Package utils provides utility functions for CLI commands in centpub.
package utils

import (
	"fmt"

	"github.com/centpub/centpub/cmd/output"
	"github.com/centpub/centpub/domain"
	"github.com/centpub/centpub/publisher"
	"github.com/spf13/cobra"
)

// WaitForPublished polls until the deployment is published, fails, or the
// wait budget runs out, and renders the outcome. A FAILED deployment is
// reported with the server's error list and returned as a command error so
// the process exits non-zero.
func WaitForPublished(cmd *cobra.Command, manager publisher.DeploymentManager, deploymentID string) error {
	if err := output.FprintPlain(cmd, "Waiting for deployment to reach %s state...", domain.DeploymentStatePublished); err != nil {
		return err
	}

	deployment, err := manager.WaitForState(cmd.Context(), deploymentID, domain.DeploymentStatePublished)
	if err != nil {
		return fmt.Errorf("waiting for deployment: %w", err)
	}

	if deployment.State == domain.DeploymentStateFailed {
		if err := output.FprintError(cmd, "Deployment failed!"); err != nil {
			return err
		}
		for _, deploymentError := range deployment.Errors {
			if err := output.FprintError(cmd, "  - %s", deploymentError); err != nil {
				return err
			}
		}
		return fmt.Errorf("deployment %s failed", deploymentID)
	}

	return output.FprintSuccess(cmd, "Deployment reached %s state!", deployment.State)
}
