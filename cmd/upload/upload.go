// Package upload implements the upload command.
package upload

import (
	"fmt"
	"os"

	"github.com/centpub/centpub/app"
	"github.com/centpub/centpub/cmd/output"
	"github.com/centpub/centpub/cmd/utils"
	"github.com/centpub/centpub/publisher"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func NewCmdUpload() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <bundle-path>",
		Short: "Upload a deployment bundle",
		Long: `Upload a bundle zip file to the Central Publisher API for validation.
The server assigns a deployment ID used by all subsequent commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, args)
		},
	}

	cmd.Flags().String("name", "", "Human-readable name for the deployment")
	cmd.Flags().Bool("auto-publish", false, "Publish automatically once validation passes")
	cmd.Flags().Bool("wait", false, "Wait for the deployment to be published")
	return cmd
}

// runUpload handles the main logic for uploading a bundle
func runUpload(cmd *cobra.Command, args []string) error {
	bundlePath := args[0]

	// Get flags
	name, _ := cmd.Flags().GetString("name")
	autoPublish, _ := cmd.Flags().GetBool("auto-publish")
	wait, _ := cmd.Flags().GetBool("wait")

	if err := app.Initialize(); err != nil {
		return err
	}
	manager := app.GetPublisher()

	opts := publisher.UploadOptions{
		Name:        name,
		AutoPublish: autoPublish,
	}
	if bar := newProgressBar(bundlePath); bar != nil {
		opts.Progress = bar
		defer func() { _ = bar.Close() }()
	}

	if err := output.FprintPlain(cmd, "Uploading bundle: %s", bundlePath); err != nil {
		return err
	}

	deploymentID, err := manager.Upload(cmd.Context(), bundlePath, opts)
	if err != nil {
		return fmt.Errorf("uploading bundle: %w", err)
	}

	if err := output.FprintSuccess(cmd, "Upload successful! Deployment ID: %s", deploymentID); err != nil {
		return err
	}

	if wait {
		return utils.WaitForPublished(cmd, manager, deploymentID)
	}
	return nil
}

// newProgressBar returns a byte progress bar when stdout is a terminal.
// A missing bundle file is not reported here; Upload surfaces the real error.
func newProgressBar(bundlePath string) *progressbar.ProgressBar {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}
	info, err := os.Stat(bundlePath)
	if err != nil {
		return nil
	}
	return progressbar.DefaultBytes(info.Size(), "uploading")
}
