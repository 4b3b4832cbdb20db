package publisher

import (
	"context"
	"log/slog"
	"time"

	"github.com/centpub/centpub/domain"
)

// WaitForState polls the deployment status at a fixed interval until the
// deployment reaches the target state, fails, or the wait budget runs out.
//
// FAILED always ends the wait, even when the caller asked for a different
// state; the returned status carries the server's error list. Transient
// status failures (transport or HTTP) are logged and absorbed: the loop
// sleeps one interval and tries again, so only a terminal state or the
// cumulative timeout stops it. There is no backoff. The elapsed check runs
// before each poll and every path sleeps a full interval, so the total wait
// can overrun the budget by up to one interval; the timeout is a floor, not
// an exact bound.
func (c *Client) WaitForState(ctx context.Context, deploymentID string, target domain.DeploymentState) (*domain.Deployment, error) {
	slog.Info("Waiting for deployment state",
		"deployment_id", deploymentID,
		"target_state", string(target),
		"poll_interval", c.pollInterval,
		"wait_timeout", c.waitTimeout)

	start := time.Now()
	var lastState domain.DeploymentState

	for time.Since(start) < c.waitTimeout {
		deployment, err := c.Status(ctx, deploymentID)
		if err != nil {
			slog.Warn("Status check failed, retrying",
				"deployment_id", deploymentID,
				"error", err)
			if err := sleepInterval(ctx, c.pollInterval); err != nil {
				return nil, err
			}
			continue
		}

		lastState = deployment.State
		switch {
		case deployment.State == target:
			slog.Info("Deployment reached target state",
				"deployment_id", deploymentID,
				"state", string(deployment.State))
			return deployment, nil
		case deployment.State == domain.DeploymentStateFailed:
			slog.Info("Deployment failed",
				"deployment_id", deploymentID,
				"errors", deployment.Errors)
			return deployment, nil
		case !deployment.State.Known():
			// A state this client predates is assumed to still be in
			// progress.
			slog.Info("Unrecognized deployment state, continuing to poll",
				"deployment_id", deploymentID,
				"state", string(deployment.State))
		default:
			slog.Info("Deployment in progress",
				"deployment_id", deploymentID,
				"state", string(deployment.State))
		}

		if err := sleepInterval(ctx, c.pollInterval); err != nil {
			return nil, err
		}
	}

	return nil, &WaitTimeoutError{
		DeploymentID: deploymentID,
		Target:       target,
		LastState:    lastState,
		Timeout:      c.waitTimeout,
	}
}

func sleepInterval(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
