package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/centpub/centpub/encryption"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	credentialsFileName = "credentials.yaml"
	keyFileName         = "key"
)

// ErrCredentialsMissing indicates no credential could be resolved from the
// environment, the stored credential file, or an interactive prompt.
var ErrCredentialsMissing = errors.New(
	"no credentials found: set SONATYPE_USERNAME and SONATYPE_PASSWORD or run 'centpub setup'")

// StoredCredentials is the on-disk shape of the credential file. The
// password field holds a fernet token, never plaintext.
type StoredCredentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// ResolveCredentials fills in Username and Password: environment variables
// first, then the stored credential file, then an interactive prompt when
// stdin is a terminal. Returns ErrCredentialsMissing when nothing resolves.
func (c *Config) ResolveCredentials() error {
	if c.Username != "" && c.Password != "" {
		return nil
	}

	if err := c.loadStoredCredentials(); err == nil && c.Username != "" && c.Password != "" {
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrCredentialsMissing
	}
	return c.promptCredentials()
}

func (c *Config) loadStoredCredentials() error {
	data, err := os.ReadFile(filepath.Join(c.ConfigDir, credentialsFileName))
	if err != nil {
		return err
	}

	var stored StoredCredentials
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("parsing credential file: %w", err)
	}

	keyData, err := os.ReadFile(filepath.Join(c.ConfigDir, keyFileName))
	if err != nil {
		return fmt.Errorf("reading encryption key: %w", err)
	}

	encryptionSvc, err := encryption.NewEncryptionService(strings.TrimSpace(string(keyData)))
	if err != nil {
		return err
	}
	password, err := encryptionSvc.Decrypt(stored.Password)
	if err != nil {
		return fmt.Errorf("decrypting stored password: %w", err)
	}

	c.Username = stored.Username
	c.Password = password
	return nil
}

func (c *Config) promptCredentials() error {
	fmt.Fprintln(os.Stderr, "Credentials not found in environment or config.")

	username, err := PromptLine("Enter your Sonatype username: ")
	if err != nil {
		return fmt.Errorf("reading username: %w", err)
	}
	password, err := PromptPassword("Enter your Sonatype password/token: ")
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	if username == "" || password == "" {
		return ErrCredentialsMissing
	}
	c.Username = username
	c.Password = password
	return nil
}

// SaveCredentials encrypts the password and writes the credential file and
// key file under the config directory. Used by the setup command.
func (c *Config) SaveCredentials(username, password string) error {
	if err := os.MkdirAll(c.ConfigDir, 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	key, err := loadOrGenerateKey(filepath.Join(c.ConfigDir, keyFileName))
	if err != nil {
		return err
	}
	encryptionSvc, err := encryption.NewEncryptionService(key)
	if err != nil {
		return err
	}
	token, err := encryptionSvc.Encrypt(password)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(StoredCredentials{Username: username, Password: token})
	if err != nil {
		return fmt.Errorf("encoding credential file: %w", err)
	}
	credentialsPath := filepath.Join(c.ConfigDir, credentialsFileName)
	if err := os.WriteFile(credentialsPath, data, 0o600); err != nil {
		return fmt.Errorf("writing credential file: %w", err)
	}
	return nil
}

func loadOrGenerateKey(path string) (string, error) {
	if data, err := os.ReadFile(path); err == nil {
		return strings.TrimSpace(string(data)), nil
	}

	key, err := encryption.GenerateKey()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(key+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("writing encryption key: %w", err)
	}
	return key, nil
}

// PromptLine reads one line from stdin, echoing input. The prompt goes to
// stderr so it never mixes with command output.
func PromptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword reads a line from stdin without echoing.
func PromptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(password)), nil
}
