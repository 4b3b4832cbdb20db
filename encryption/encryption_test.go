package encryption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	key1, err := GenerateKey()
	require.NoError(t, err)
	key2, err := GenerateKey()
	require.NoError(t, err)

	// Keys should be different
	assert.NotEqual(t, key1, key2)

	// Should be able to create encryption service with generated keys
	_, err1 := NewEncryptionService(key1)
	_, err2 := NewEncryptionService(key2)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
}

func TestNewEncryptionService(t *testing.T) {
	validKey, err := GenerateKey()
	require.NoError(t, err)

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{
			name:    "valid key",
			key:     validKey,
			wantErr: false,
		},
		{
			name:    "empty key",
			key:     "",
			wantErr: true,
		},
		{
			name:    "invalid key",
			key:     "invalid-key",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewEncryptionService(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, service)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, service)
			}
		})
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	service, err := NewEncryptionService(key)
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "password", plaintext: "secret-token"},
		{name: "unicode", plaintext: "pässwörd-日本語"},
		{name: "empty string", plaintext: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Encrypt(tt.plaintext)
			require.NoError(t, err)

			decrypted, err := service.Decrypt(token)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, decrypted)

			if tt.plaintext != "" {
				assert.NotEqual(t, tt.plaintext, token)
			}
		})
	}
}

func TestDecryptWithWrongKey(t *testing.T) {
	key1, err := GenerateKey()
	require.NoError(t, err)
	key2, err := GenerateKey()
	require.NoError(t, err)

	service1, err := NewEncryptionService(key1)
	require.NoError(t, err)
	service2, err := NewEncryptionService(key2)
	require.NoError(t, err)

	token, err := service1.Encrypt("secret")
	require.NoError(t, err)

	_, err = service2.Decrypt(token)
	assert.Error(t, err)
}

func TestDecryptInvalidToken(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	service, err := NewEncryptionService(key)
	require.NoError(t, err)

	_, err = service.Decrypt("not-base64!!!")
	assert.Error(t, err)

	_, err = service.Decrypt("dmFsaWQgYmFzZTY0IGJ1dCBub3QgYSB0b2tlbg==")
	assert.Error(t, err)
}
