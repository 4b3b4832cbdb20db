// Package app provides the application context for centpub, wiring
// configuration and the publisher client.
package app

import (
	"fmt"

	"github.com/centpub/centpub/config"
	"github.com/centpub/centpub/publisher"
)

var (
	appConfig *config.Config
	manager   publisher.DeploymentManager
)

// SetConfig stores the configuration assembled by the CLI front-end.
func SetConfig(cfg *config.Config) {
	appConfig = cfg
}

// GetConfig returns the active configuration.
func GetConfig() *config.Config {
	return appConfig
}

// Initialize resolves credentials and constructs the publisher client. Only
// commands that talk to the remote API call it, so setup and version never
// trigger a credential prompt. Calling it again is a no-op.
func Initialize() error {
	if manager != nil {
		return nil
	}
	if appConfig == nil {
		return fmt.Errorf("application not configured")
	}
	if err := appConfig.ResolveCredentials(); err != nil {
		return err
	}
	manager = publisher.NewClient(appConfig)
	return nil
}

// GetPublisher returns the deployment manager. Nil until Initialize.
func GetPublisher() publisher.DeploymentManager {
	return manager
}

// SetPublisherForTesting allows overriding the deployment manager for testing purposes
func SetPublisherForTesting(m publisher.DeploymentManager) {
	manager = m
}
