package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSaveAndLoadCredentials(t *testing.T) {
	cfg := &Config{ConfigDir: t.TempDir()}

	require.NoError(t, cfg.SaveCredentials("alice", "secret-token"))

	loaded := &Config{ConfigDir: cfg.ConfigDir}
	require.NoError(t, loaded.loadStoredCredentials())
	assert.Equal(t, "alice", loaded.Username)
	assert.Equal(t, "secret-token", loaded.Password)
}

func TestSaveCredentialsNeverStoresPlaintext(t *testing.T) {
	cfg := &Config{ConfigDir: t.TempDir()}
	require.NoError(t, cfg.SaveCredentials("alice", "secret-token"))

	data, err := os.ReadFile(filepath.Join(cfg.ConfigDir, credentialsFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-token")

	var stored StoredCredentials
	require.NoError(t, yaml.Unmarshal(data, &stored))
	assert.Equal(t, "alice", stored.Username)
	assert.NotEmpty(t, stored.Password)
	assert.NotEqual(t, "secret-token", stored.Password)
}

func TestSaveCredentialsFilePermissions(t *testing.T) {
	cfg := &Config{ConfigDir: t.TempDir()}
	require.NoError(t, cfg.SaveCredentials("alice", "secret-token"))

	for _, name := range []string{credentialsFileName, keyFileName} {
		info, err := os.Stat(filepath.Join(cfg.ConfigDir, name))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "%s must not be group/world readable", name)
	}
}

func TestSaveCredentialsReusesKey(t *testing.T) {
	cfg := &Config{ConfigDir: t.TempDir()}
	require.NoError(t, cfg.SaveCredentials("alice", "first"))

	keyBefore, err := os.ReadFile(filepath.Join(cfg.ConfigDir, keyFileName))
	require.NoError(t, err)

	// A second setup run must keep the existing key so older exports stay
	// decryptable.
	require.NoError(t, cfg.SaveCredentials("alice", "second"))
	keyAfter, err := os.ReadFile(filepath.Join(cfg.ConfigDir, keyFileName))
	require.NoError(t, err)
	assert.Equal(t, keyBefore, keyAfter)

	loaded := &Config{ConfigDir: cfg.ConfigDir}
	require.NoError(t, loaded.loadStoredCredentials())
	assert.Equal(t, "second", loaded.Password)
}

func TestResolveCredentialsPrefersEnvironment(t *testing.T) {
	// Credentials already present (e.g. from the environment) win; the
	// stored file is not consulted.
	cfg := &Config{
		ConfigDir: t.TempDir(),
		Username:  "env-user",
		Password:  "env-pass",
	}
	require.NoError(t, cfg.ResolveCredentials())
	assert.Equal(t, "env-user", cfg.Username)
	assert.Equal(t, "env-pass", cfg.Password)
}

func TestResolveCredentialsFromStore(t *testing.T) {
	configDir := t.TempDir()
	seed := &Config{ConfigDir: configDir}
	require.NoError(t, seed.SaveCredentials("stored-user", "stored-pass"))

	cfg := &Config{ConfigDir: configDir}
	require.NoError(t, cfg.ResolveCredentials())
	assert.Equal(t, "stored-user", cfg.Username)
	assert.Equal(t, "stored-pass", cfg.Password)
}

func TestResolveCredentialsMissing(t *testing.T) {
	// Nothing in the environment, nothing stored, and stdin is not a
	// terminal under go test.
	cfg := &Config{ConfigDir: t.TempDir()}
	err := cfg.ResolveCredentials()
	require.ErrorIs(t, err, ErrCredentialsMissing)
}

func TestLoadStoredCredentialsCorruptFile(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, credentialsFileName), []byte("{not yaml"), 0o600))

	cfg := &Config{ConfigDir: configDir}
	err := cfg.loadStoredCredentials()
	require.Error(t, err)
}
