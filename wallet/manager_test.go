package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "http://127.0.0.1:8070/json_rpc"

func TestLoadProfileDefaults(t *testing.T) {
	m := NewManagerAt(t.TempDir())

	profile, err := m.LoadProfile()
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile(), profile)
	assert.Equal(t, testEndpoint, profile.Endpoint())
}

func TestSaveAndLoadProfile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ConfigDirName)
	m := NewManagerAt(dir)

	want := Profile{Host: "http://10.0.0.2", Port: 9000, Logging: true, Decimals: 6}
	require.NoError(t, m.SaveProfile(want))

	got, err := m.LoadProfile()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	cfg := got.Config("secret")
	assert.Equal(t, "http://10.0.0.2:9000/json_rpc", cfg.Endpoint())
	assert.Equal(t, "secret", cfg.Password)
	assert.True(t, cfg.Logging)
}

func TestLoadProfileFillsMissingFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, profileFileName), []byte(`{"port":8081}`), 0600))

	profile, err := NewManagerAt(dir).LoadProfile()
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile().Host, profile.Host)
	assert.Equal(t, 8081, profile.Port)
	assert.Equal(t, DefaultDecimals, profile.Decimals)
}

func TestSaveAndLoadProfileZeroDecimals(t *testing.T) {
	m := NewManagerAt(t.TempDir())

	want := Profile{Host: "http://10.0.0.2", Port: 9000, Decimals: 0}
	require.NoError(t, m.SaveProfile(want))

	got, err := m.LoadProfile()
	require.NoError(t, err)
	assert.Equal(t, int32(0), got.Decimals)
	assert.Equal(t, want, got)
}

func TestLoadProfileCorrupted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, profileFileName), []byte(`{`), 0600))

	_, err := NewManagerAt(dir).LoadProfile()
	assert.ErrorContains(t, err, "failed to parse profile")
}

func TestStoreAndUnlockPassword(t *testing.T) {
	dir := t.TempDir()
	m := NewManagerAt(dir)
	assert.False(t, m.HasPassword())
	assert.False(t, m.IsUnlocked(testEndpoint))

	require.NoError(t, m.StorePassword("rpc-secret", "passphrase", testEndpoint))
	assert.True(t, m.HasPassword())

	// a fresh manager picks up the session
	other := NewManagerAt(dir)
	assert.True(t, other.IsUnlocked(testEndpoint))
	password, err := other.Password(testEndpoint)
	require.NoError(t, err)
	assert.Equal(t, "rpc-secret", password)

	// sessions do not carry over to another walletd
	assert.False(t, NewManagerAt(dir).IsUnlocked("http://10.0.0.2:8070/json_rpc"))

	other.Lock()
	locked := NewManagerAt(dir)
	assert.False(t, locked.IsUnlocked(testEndpoint))
	_, err = locked.Password(testEndpoint)
	assert.ErrorContains(t, err, "locked")

	assert.ErrorContains(t, locked.Unlock("wrong", testEndpoint), "invalid passphrase")
	require.NoError(t, locked.Unlock("passphrase", testEndpoint))
	password, err = locked.Password(testEndpoint)
	require.NoError(t, err)
	assert.Equal(t, "rpc-secret", password)
}

func TestForgetPassword(t *testing.T) {
	dir := t.TempDir()
	m := NewManagerAt(dir)

	require.NoError(t, m.StorePassword("rpc-secret", "passphrase", testEndpoint))
	require.NoError(t, m.ForgetPassword())
	assert.False(t, m.HasPassword())
	assert.False(t, NewManagerAt(dir).IsUnlocked(testEndpoint))

	// forgetting twice is fine
	require.NoError(t, m.ForgetPassword())
}

func TestPasswordBoundToEndpoint(t *testing.T) {
	const otherEndpoint = "http://10.0.0.2:8070/json_rpc"

	dir := t.TempDir()
	m := NewManagerAt(dir)
	require.NoError(t, m.StorePassword("rpc-secret", "passphrase", testEndpoint))

	assert.True(t, m.IsUnlocked(testEndpoint))
	assert.False(t, m.IsUnlocked(otherEndpoint))
	_, err := m.Password(otherEndpoint)
	assert.ErrorContains(t, err, "locked")

	// unlocking for the other walletd moves the session there
	require.NoError(t, m.Unlock("passphrase", otherEndpoint))
	password, err := m.Password(otherEndpoint)
	require.NoError(t, err)
	assert.Equal(t, "rpc-secret", password)
	assert.False(t, m.IsUnlocked(testEndpoint))
}

func TestUnlockWithoutVault(t *testing.T) {
	err := NewManagerAt(t.TempDir()).Unlock("passphrase", testEndpoint)
	assert.ErrorContains(t, err, "failed to load vault")
}

func TestNewClientUsesProfile(t *testing.T) {
	profile := Profile{Host: "http://walletd", Port: 8071}
	client := NewClient(profile, "pw", nil)
	assert.Equal(t, "http://walletd:8071/json_rpc", client.Endpoint())
	assert.Equal(t, uint64(0), client.ID())
}
