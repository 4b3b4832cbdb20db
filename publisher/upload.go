package publisher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const publishingTypeAutomatic = "AUTOMATIC"

// UploadOptions controls a bundle upload.
type UploadOptions struct {
	// Name is an optional human-readable label for the deployment. When
	// empty the server picks its own default; the client never derives one.
	Name string

	// AutoPublish requests publishingType=AUTOMATIC so the server publishes
	// the deployment as soon as validation passes.
	AutoPublish bool

	// Progress, when set, receives the bundle bytes as they are sent.
	Progress io.Writer
}

// Upload submits the bundle file and returns the server-assigned deployment
// id. The id is opaque: it is never parsed, only passed back on later calls.
// The bundle file is streamed into the multipart request and closed exactly
// once, whatever the outcome of the exchange.
func (c *Client) Upload(ctx context.Context, bundlePath string, opts UploadOptions) (string, error) {
	slog.Info("Uploading bundle",
		"bundle", bundlePath,
		"name", opts.Name,
		"auto_publish", opts.AutoPublish)

	file, err := os.Open(bundlePath)
	if err != nil {
		return "", fmt.Errorf("opening bundle: %w", err)
	}
	defer file.Close()

	pr, pw := io.Pipe()
	// Closing the read end on every exit unblocks the copier goroutine when
	// the request is never issued or aborts early.
	defer pr.Close()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("bundle", filepath.Base(bundlePath))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		var reader io.Reader = file
		if opts.Progress != nil {
			reader = io.TeeReader(file, opts.Progress)
		}
		if _, err := io.Copy(part, reader); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	params := url.Values{}
	if opts.Name != "" {
		params.Set("name", opts.Name)
	}
	if opts.AutoPublish {
		params.Set("publishingType", publishingTypeAutomatic)
	}

	statusCode, body, err := c.post(ctx, "upload", "/upload", params, mw.FormDataContentType(), pr)
	if err != nil {
		return "", err
	}
	if statusCode != http.StatusCreated {
		return "", &HTTPError{Op: "upload", StatusCode: statusCode, Body: string(body)}
	}

	deploymentID := strings.TrimSpace(string(body))
	slog.Info("Bundle uploaded", "deployment_id", deploymentID)
	return deploymentID, nil
}
