// Package setup implements the setup command for storing credentials.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/centpub/centpub/app"
	"github.com/centpub/centpub/cmd/output"
	"github.com/centpub/centpub/config"
	"github.com/centpub/centpub/publisher"
	"github.com/spf13/cobra"
)

const settingsFileName = "central_testing_settings.xml"

func NewCmdSetup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Store Sonatype credentials",
		Long: `Prompt for Sonatype credentials, store them encrypted in the centpub
config directory, and write a Maven settings.xml snippet for manual testing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd)
		},
	}

	return cmd
}

// runSetup handles the main logic for storing credentials
func runSetup(cmd *cobra.Command) error {
	cfg := app.GetConfig()

	username, err := config.PromptLine("Enter your Sonatype username: ")
	if err != nil {
		return fmt.Errorf("reading username: %w", err)
	}
	password, err := config.PromptPassword("Enter your Sonatype password/token: ")
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	if username == "" || password == "" {
		return config.ErrCredentialsMissing
	}

	if err := cfg.SaveCredentials(username, password); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}
	if err := output.FprintSuccess(cmd, "Credentials saved to %s", cfg.ConfigDir); err != nil {
		return err
	}

	settingsPath, err := writeSettingsSnippet(cfg.ConfigDir, username, password)
	if err != nil {
		return fmt.Errorf("writing settings snippet: %w", err)
	}
	return output.FprintPlain(cmd, "Maven settings.xml snippet for manual testing written to %s", settingsPath)
}

// writeSettingsSnippet writes the settings.xml fragment Sonatype documents
// for testing a staged deployment with Maven before publication.
func writeSettingsSnippet(configDir, username, password string) (string, error) {
	token := strings.TrimPrefix(publisher.BuildAuthHeader(username, password), "Bearer ")
	snippet := fmt.Sprintf(settingsTemplate, token)

	path := filepath.Join(configDir, settingsFileName)
	if err := os.WriteFile(path, []byte(snippet), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

const settingsTemplate = `<settings>
  <servers>
    <server>
      <id>central.manual.testing</id>
      <configuration>
        <httpHeaders>
          <property>
            <name>Authorization</name>
            <value>Bearer %s</value>
          </property>
        </httpHeaders>
      </configuration>
    </server>
  </servers>

  <profiles>
    <profile>
      <id>central.manual.testing</id>
      <repositories>
        <repository>
          <id>central.manual.testing</id>
          <name>Central Testing repository</name>
          <url>https://central.sonatype.com/api/v1/publisher/deployments/download</url>
        </repository>
      </repositories>
    </profile>
  </profiles>
</settings>
`
