package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultRoundTrip(t *testing.T) {
	v, err := NewVault("rpc-secret", "walletd", "correct horse")
	require.NoError(t, err)
	assert.Len(t, v.Salt, saltLen)
	assert.Len(t, v.Nonce, nonceLen)
	assert.NotContains(t, string(v.Data), "rpc-secret")

	secret, err := v.Decrypt("correct horse")
	require.NoError(t, err)
	assert.Equal(t, "rpc-secret", secret)

	data, err := v.Open("correct horse")
	require.NoError(t, err)
	assert.Equal(t, "walletd", data.Label)
	assert.Equal(t, 1, data.Version)
}

func TestVaultWrongPassphrase(t *testing.T) {
	v, err := NewVault("rpc-secret", "", "correct horse")
	require.NoError(t, err)

	_, err = v.Decrypt("battery staple")
	assert.ErrorContains(t, err, "failed to decrypt data")
	assert.False(t, v.ValidatePassphrase("battery staple"))
	assert.True(t, v.ValidatePassphrase("correct horse"))
}

func TestVaultSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "password.vault")

	v, err := NewVault("seed words", "addr1", "pass")
	require.NoError(t, err)
	require.NoError(t, v.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadVault(path)
	require.NoError(t, err)
	assert.Equal(t, v, loaded)

	secret, err := loaded.Decrypt("pass")
	require.NoError(t, err)
	assert.Equal(t, "seed words", secret)
}

func TestLoadVaultMissing(t *testing.T) {
	_, err := LoadVault(filepath.Join(t.TempDir(), "missing.vault"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
