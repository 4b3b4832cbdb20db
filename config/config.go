// Package config holds runtime configuration for centpub.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the production Central Publisher API endpoint.
	DefaultBaseURL = "https://central.sonatype.com/api/v1/publisher"

	configDirName = "centpub"
)

// EnvProvider abstracts environment variable access for testing
type EnvProvider interface {
	Getenv(key string) string
	UserHomeDir() (string, error)
}

// DefaultEnvProvider implements EnvProvider using real OS functions
type DefaultEnvProvider struct{}

func (p *DefaultEnvProvider) Getenv(key string) string {
	return os.Getenv(key)
}

func (p *DefaultEnvProvider) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// getDefaultConfigDirWithEnv returns the default centpub config directory
// following the XDG Base Directory specification
func getDefaultConfigDirWithEnv(env EnvProvider) string {
	// Use XDG_CONFIG_HOME if set, otherwise fallback to ~/.config
	xdgConfigHome := env.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, configDirName)
	}

	homeDir, _ := env.UserHomeDir()
	return filepath.Join(homeDir, ".config", configDirName)
}

// Config holds configuration for one invocation. Credentials live only in
// memory; nothing in this struct survives the process.
type Config struct {
	// Remote API
	BaseURL string

	// Credentials
	Username string
	Password string

	// Polling
	PollInterval time.Duration
	WaitTimeout  time.Duration

	// Transport
	HTTPTimeout time.Duration

	// Logging
	LogLevel     string
	ColorEnabled bool

	// Stored credential location
	ConfigDir string

	// Environment provider for testing
	env EnvProvider
}

// NewConfigForCLI creates a new configuration for CLI usage with an optional
// server URL override
func NewConfigForCLI(cliServer string) (*Config, error) {
	return newConfigWithEnv(&DefaultEnvProvider{}, cliServer)
}

// NewConfigForCLIWithEnv creates a new configuration with a custom
// environment provider (for testing)
func NewConfigForCLIWithEnv(env EnvProvider, cliServer string) (*Config, error) {
	return newConfigWithEnv(env, cliServer)
}

func newConfigWithEnv(env EnvProvider, cliServer string) (*Config, error) {
	c := &Config{env: env}

	// Set defaults first
	c.setDefaults()

	// Override with environment variables
	c.loadFromEnv()

	// Override with CLI flags (if provided)
	if cliServer != "" {
		c.BaseURL = cliServer
	}

	// Validate
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return c, nil
}

// setDefaults sets sensible default values
func (c *Config) setDefaults() {
	c.BaseURL = DefaultBaseURL
	c.PollInterval = 10 * time.Second
	c.WaitTimeout = 30 * time.Minute
	c.HTTPTimeout = 5 * time.Minute
	c.LogLevel = "info"
	c.ColorEnabled = true
	c.ConfigDir = getDefaultConfigDirWithEnv(c.env)
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if v := c.env.Getenv("SONATYPE_USERNAME"); v != "" {
		c.Username = v
	}
	if v := c.env.Getenv("SONATYPE_PASSWORD"); v != "" {
		c.Password = v
	}
	if v := c.env.Getenv("CENTPUB_SERVER"); v != "" {
		c.BaseURL = v
	}
	if v := c.env.Getenv("CENTPUB_CONFIG_DIR"); v != "" {
		c.ConfigDir = v
	}
	if v := c.env.Getenv("CENTPUB_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := c.env.Getenv("CENTPUB_COLOR_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.ColorEnabled = enabled
		}
	}
	if v := c.env.Getenv("CENTPUB_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.PollInterval = d
		}
	}
	if v := c.env.Getenv("CENTPUB_WAIT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.WaitTimeout = d
		}
	}
	if v := c.env.Getenv("CENTPUB_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTPTimeout = d
		}
	}
}

// validate ensures configuration values are valid
func (c *Config) validate() error {
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warning": true, "error": true, "silent": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warning, error, or silent)", c.LogLevel)
	}

	if c.BaseURL == "" {
		return fmt.Errorf("server URL cannot be empty")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive: %s", c.PollInterval)
	}
	if c.WaitTimeout <= 0 {
		return fmt.Errorf("wait timeout must be positive: %s", c.WaitTimeout)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive: %s", c.HTTPTimeout)
	}

	return nil
}
