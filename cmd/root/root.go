// Package root implements the command line interface for centpub.
package root

import (
	"log"
	"os"
	"time"

	"github.com/centpub/centpub/app"
	"github.com/centpub/centpub/cmd/drop"
	"github.com/centpub/centpub/cmd/output"
	"github.com/centpub/centpub/cmd/publish"
	"github.com/centpub/centpub/cmd/setup"
	"github.com/centpub/centpub/cmd/status"
	"github.com/centpub/centpub/cmd/upload"
	"github.com/centpub/centpub/cmd/version"
	"github.com/centpub/centpub/config"
	"github.com/centpub/centpub/logging"
	"github.com/spf13/cobra"
)

func Execute() {
	if err := NewCmdRoot().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCmdRoot() *cobra.Command {
	var server string
	var pollInterval time.Duration
	var waitTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "centpub",
		Short: "Client for the Sonatype Central Publisher API",
		Long: `Centpub uploads deployment bundles to Maven Central, tracks their
validation and publication lifecycle, and can publish or drop them.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize configuration with server URL override
			cfg, err := config.NewConfigForCLI(server)
			if err != nil {
				log.Fatalf("Failed to initialize configuration: %s", err)
			}

			// Initialize colors (CLI flag overrides config)
			colorDisabled := !cfg.ColorEnabled
			if output.NoColor.IsSet() {
				colorDisabled = true // --no-color flag overrides config
			}
			output.InitColors(colorDisabled)

			// Initialize logging (CLI flag overrides config)
			logLevel := cfg.LogLevel
			if logging.LogLevel.IsSet() {
				logLevel = logging.LogLevel.String()
			}
			logging.InitLogging(logLevel)

			// Polling flags override config and environment
			if cmd.Flags().Changed("poll-interval") {
				cfg.PollInterval = pollInterval
			}
			if cmd.Flags().Changed("wait-timeout") {
				cfg.WaitTimeout = waitTimeout
			}

			app.SetConfig(cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&server, "server", "s", "", "Base URL of the Central Publisher API")
	cmd.PersistentFlags().
		DurationVar(&pollInterval, "poll-interval", 10*time.Second, "Interval between status checks when waiting")
	cmd.PersistentFlags().
		DurationVar(&waitTimeout, "wait-timeout", 30*time.Minute, "Maximum time to wait for a deployment state")
	cmd.PersistentFlags().VarP(logging.LogLevel, "log-level", "l", "Set log verbosity level")
	cmd.PersistentFlags().VarP(output.NoColor, "no-color", "c", "Disable colored terminal output")

	cmd.AddCommand(upload.NewCmdUpload())
	cmd.AddCommand(status.NewCmdStatus())
	cmd.AddCommand(publish.NewCmdPublish())
	cmd.AddCommand(drop.NewCmdDrop())
	cmd.AddCommand(setup.NewCmdSetup())
	cmd.AddCommand(version.NewCmdVersion())

	return cmd
}
