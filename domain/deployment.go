package domain

// DeploymentState is the lifecycle state the remote service reports for a
// deployment. The state machine is server-owned: the client only observes
// states and decides whether to keep polling. Values this client does not
// recognize are carried verbatim and treated as still in progress.
type DeploymentState string

const (
	DeploymentStatePending    DeploymentState = "PENDING"
	DeploymentStateValidating DeploymentState = "VALIDATING"
	DeploymentStateValidated  DeploymentState = "VALIDATED"
	DeploymentStatePublishing DeploymentState = "PUBLISHING"
	DeploymentStatePublished  DeploymentState = "PUBLISHED"
	DeploymentStateFailed     DeploymentState = "FAILED"
)

// Terminal reports whether the remote service will not transition the
// deployment any further without a new client action.
func (s DeploymentState) Terminal() bool {
	return s == DeploymentStatePublished || s == DeploymentStateFailed
}

// Known reports whether the state is one this client recognizes.
func (s DeploymentState) Known() bool {
	switch s {
	case DeploymentStatePending,
		DeploymentStateValidating,
		DeploymentStateValidated,
		DeploymentStatePublishing,
		DeploymentStatePublished,
		DeploymentStateFailed:
		return true
	default:
		return false
	}
}

// Deployment is a single submitted bundle tracked by the remote service.
// The ID is assigned by the server exactly once on upload and is the sole
// key for every subsequent operation; it is opaque and never parsed.
type Deployment struct {
	ID          string          `json:"deploymentId"`
	Name        string          `json:"deploymentName,omitempty"`
	State       DeploymentState `json:"deploymentState"`
	PackageURLs []string        `json:"purls,omitempty"`
	Errors      []string        `json:"errors,omitempty"`
}
