// Package publisher implements the client for the Central Publisher API:
// bundle upload, deployment status, publish, drop, and the polling wait.
package publisher

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/centpub/centpub/config"
	"github.com/centpub/centpub/domain"
)

// DeploymentManager is the interface CLI commands program against.
type DeploymentManager interface {
	Upload(ctx context.Context, bundlePath string, opts UploadOptions) (string, error)
	Status(ctx context.Context, deploymentID string) (*domain.Deployment, error)
	Publish(ctx context.Context, deploymentID string) error
	Drop(ctx context.Context, deploymentID string) error
	WaitForState(ctx context.Context, deploymentID string, target domain.DeploymentState) (*domain.Deployment, error)
}

// Client talks to the Central Publisher API. It holds no state beyond its
// configuration: every request is authenticated independently, and nothing
// about a deployment is cached between calls.
type Client struct {
	baseURL      string
	authHeader   string
	pollInterval time.Duration
	waitTimeout  time.Duration
	httpClient   *http.Client
}

var _ DeploymentManager = (*Client)(nil)

// NewClient creates a publisher client from the resolved configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		authHeader:   BuildAuthHeader(cfg.Username, cfg.Password),
		pollInterval: cfg.PollInterval,
		waitTimeout:  cfg.WaitTimeout,
		httpClient:   &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// BuildAuthHeader encodes credentials the way the Publisher API expects:
// standard base64 over "username:password" wrapped in a bearer scheme. The
// result must never be logged or persisted outside an explicit setup export.
func BuildAuthHeader(username, password string) string {
	token := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return "Bearer " + token
}

// Status fetches the current server-side state of a deployment. It is
// idempotent and side-effect-free.
func (c *Client) Status(ctx context.Context, deploymentID string) (*domain.Deployment, error) {
	slog.Debug("Checking deployment status", "deployment_id", deploymentID)

	params := url.Values{"id": {deploymentID}}
	statusCode, body, err := c.post(ctx, "status", "/status", params, "", nil)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, &HTTPError{Op: "status", StatusCode: statusCode, Body: string(body)}
	}

	var deployment domain.Deployment
	if err := json.Unmarshal(body, &deployment); err != nil {
		return nil, fmt.Errorf("decoding status response: %w", err)
	}
	return &deployment, nil
}

// Publish requests publication of a validated deployment. The VALIDATED
// precondition is enforced server-side; any refusal (including publishing an
// already-published deployment) surfaces as an HTTPError.
func (c *Client) Publish(ctx context.Context, deploymentID string) error {
	slog.Debug("Publishing deployment", "deployment_id", deploymentID)

	statusCode, body, err := c.post(ctx, "publish", "/deployment/"+url.PathEscape(deploymentID), nil, "", nil)
	if err != nil {
		return err
	}
	if statusCode != http.StatusNoContent {
		return &HTTPError{Op: "publish", StatusCode: statusCode, Body: string(body)}
	}
	return nil
}

// Drop discards a deployment in VALIDATED or FAILED state. The operation is
// irreversible: the identifier stops being a valid target afterwards.
func (c *Client) Drop(ctx context.Context, deploymentID string) error {
	slog.Debug("Dropping deployment", "deployment_id", deploymentID)

	statusCode, body, err := c.delete(ctx, "drop", "/deployment/"+url.PathEscape(deploymentID))
	if err != nil {
		return err
	}
	if statusCode != http.StatusNoContent {
		return &HTTPError{Op: "drop", StatusCode: statusCode, Body: string(body)}
	}
	return nil
}

func (c *Client) post(ctx context.Context, op, path string, params url.Values, contentType string, body io.Reader) (int, []byte, error) {
	return c.do(ctx, op, http.MethodPost, path, params, contentType, body)
}

func (c *Client) delete(ctx context.Context, op, path string) (int, []byte, error) {
	return c.do(ctx, op, http.MethodDelete, path, nil, "", nil)
}

// do performs one HTTP exchange. Network-level failures become a
// TransportError; whenever a response was received at all the caller gets
// the status code and the raw body.
func (c *Client) do(ctx context.Context, op, method, path string, params url.Values, contentType string, body io.Reader) (int, []byte, error) {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, URL: requestURL, Err: err}
	}
	req.Header.Set("Authorization", c.authHeader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: op, URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, URL: requestURL, Err: err}
	}
	return resp.StatusCode, respBody, nil
}
