package publisher

import (
	"fmt"
	"time"

	"github.com/centpub/centpub/domain"
)

// TransportError indicates that no response was received at all: connection
// refused, request timeout, DNS failure.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request to %s failed: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError indicates a response with an unexpected status code. The raw
// server body is kept because it is the primary diagnostic signal, e.g. the
// validation error list returned for a rejected bundle.
type HTTPError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: server returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// WaitTimeoutError indicates WaitForState exhausted its budget without
// observing the target state or a terminal state. The deployment is left in
// whatever state the server last reported.
type WaitTimeoutError struct {
	DeploymentID string
	Target       domain.DeploymentState
	LastState    domain.DeploymentState
	Timeout      time.Duration
}

func (e *WaitTimeoutError) Error() string {
	lastState := string(e.LastState)
	if lastState == "" {
		lastState = "unknown"
	}
	return fmt.Sprintf("deployment %s did not reach %s within %s (last observed state: %s)",
		e.DeploymentID, e.Target, e.Timeout, lastState)
}
