package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chinmay1088/walletd/api"
	"github.com/chinmay1088/walletd/crypto"
	"go.uber.org/zap"
)

const (
	// ConfigDirName is created in the user's home directory
	ConfigDirName = ".walletd-cli"

	profileFileName = "config.json"
	vaultFileName   = "password.vault"
	sessionFileName = "session.json"

	// Session duration in minutes
	SessionDuration = 30
)

// Profile is the persisted connection profile
type Profile struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Logging  bool   `json:"logging"`
	Decimals int32  `json:"decimals"`
}

// DefaultProfile points at a local walletd with its default port
func DefaultProfile() Profile {
	return Profile{
		Host:     api.DefaultHost,
		Port:     api.DefaultPort,
		Decimals: DefaultDecimals,
	}
}

// Endpoint returns the walletd URL of the profile
func (p Profile) Endpoint() string {
	return api.Config{Host: p.Host, Port: p.Port}.Endpoint()
}

// Config turns the profile into a client configuration
func (p Profile) Config(password string) api.Config {
	return api.Config{
		Host:     p.Host,
		Port:     p.Port,
		Password: password,
		Logging:  p.Logging,
	}
}

// SessionData holds the RPC password while the store is unlocked
type SessionData struct {
	Token      string    `json:"token"`
	Password   string    `json:"password"`
	Expiration time.Time `json:"expiration"`
	Endpoint   string    `json:"endpoint"` // session is only valid for this walletd
}

// Manager handles the profile and the encrypted RPC password on disk
type Manager struct {
	dir      string
	mu       sync.Mutex
	password string
	unlocked bool
	// walletd the password was unlocked for
	endpoint string
}

// NewManager creates a manager rooted in the user's home directory
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewManagerAt(filepath.Join(homeDir, ConfigDirName)), nil
}

// NewManagerAt creates a manager keeping its files in dir
func NewManagerAt(dir string) *Manager {
	return &Manager{dir: dir}
}

// Dir returns the directory the manager keeps its files in
func (m *Manager) Dir() string {
	return m.dir
}

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name)
}

// LoadProfile reads the profile, falling back to defaults for anything unset
func (m *Manager) LoadProfile() (Profile, error) {
	profile := DefaultProfile()

	data, err := os.ReadFile(m.path(profileFileName))
	if errors.Is(err, os.ErrNotExist) {
		return profile, nil
	}
	if err != nil {
		return profile, fmt.Errorf("failed to read profile: %w", err)
	}

	// keys missing from the file keep their defaults, an explicit 0 decimals is kept
	if err := json.Unmarshal(data, &profile); err != nil {
		return DefaultProfile(), fmt.Errorf("failed to parse profile: %w", err)
	}

	if profile.Host == "" {
		profile.Host = api.DefaultHost
	}
	if profile.Port == 0 {
		profile.Port = api.DefaultPort
	}
	if profile.Decimals < 0 {
		return profile, fmt.Errorf("invalid decimals in profile: %d", profile.Decimals)
	}

	return profile, nil
}

// SaveProfile writes the profile
func (m *Manager) SaveProfile(profile Profile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(m.path(profileFileName), data, 0600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// HasPassword reports whether an encrypted RPC password is stored
func (m *Manager) HasPassword() bool {
	_, err := os.Stat(m.path(vaultFileName))
	return err == nil
}

// StorePassword encrypts the RPC password under passphrase and opens a session
func (m *Manager) StorePassword(rpcPassword, passphrase, endpoint string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	vault, err := crypto.NewVault(rpcPassword, endpoint, passphrase)
	if err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}

	if err := vault.Save(m.path(vaultFileName)); err != nil {
		return fmt.Errorf("failed to save vault: %w", err)
	}

	m.password = rpcPassword
	m.unlocked = true
	m.endpoint = endpoint

	if err := m.createSession(endpoint); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Unlock decrypts the stored RPC password and keeps it for SessionDuration
func (m *Manager) Unlock(passphrase, endpoint string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadSession(endpoint) {
		return nil
	}

	vault, err := crypto.LoadVault(m.path(vaultFileName))
	if err != nil {
		return fmt.Errorf("failed to load vault: %w", err)
	}

	if !vault.ValidatePassphrase(passphrase) {
		return fmt.Errorf("invalid passphrase")
	}

	password, err := vault.Decrypt(passphrase)
	if err != nil {
		return fmt.Errorf("failed to decrypt vault: %w", err)
	}

	m.password = password
	m.unlocked = true
	m.endpoint = endpoint

	if err := m.createSession(endpoint); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Lock clears the RPC password from memory and ends the session
func (m *Manager) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unlocked = false
	m.password = ""
	m.endpoint = ""
	m.clearSession()
}

// ForgetPassword locks and removes the stored RPC password
func (m *Manager) ForgetPassword() error {
	m.Lock()

	if err := os.Remove(m.path(vaultFileName)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove vault: %w", err)
	}
	return nil
}

// IsUnlocked returns whether the RPC password is available for endpoint
func (m *Manager) IsUnlocked(endpoint string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.unlockedFor(endpoint)
}

// Password returns the RPC password (only if unlocked)
func (m *Manager) Password(endpoint string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.unlockedFor(endpoint) {
		return "", fmt.Errorf("password store is locked")
	}
	return m.password, nil
}

// unlockedFor must be called with m.mu held
func (m *Manager) unlockedFor(endpoint string) bool {
	if m.unlocked && m.endpoint == endpoint {
		return true
	}
	return m.loadSession(endpoint)
}

// NewClient builds a walletd client for the profile
func NewClient(profile Profile, password string, log *zap.Logger) *api.Client {
	var opts []api.Option
	if log != nil {
		opts = append(opts, api.WithLogger(log))
	}
	return api.NewClient(profile.Config(password), opts...)
}

// generateSessionToken creates a random session token
func generateSessionToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

func (m *Manager) createSession(endpoint string) error {
	token, err := generateSessionToken()
	if err != nil {
		return fmt.Errorf("failed to generate session token: %w", err)
	}

	data, err := json.Marshal(SessionData{
		Token:      token,
		Password:   m.password,
		Expiration: time.Now().Add(SessionDuration * time.Minute),
		Endpoint:   endpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(m.path(sessionFileName), data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// loadSession loads the session if it exists, has not expired and matches endpoint
func (m *Manager) loadSession(endpoint string) bool {
	data, err := os.ReadFile(m.path(sessionFileName))
	if err != nil {
		return false
	}

	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		m.clearSession()
		return false
	}

	if time.Now().After(session.Expiration) {
		m.clearSession()
		return false
	}

	if session.Endpoint != endpoint {
		return false
	}

	m.password = session.Password
	m.unlocked = true
	m.endpoint = session.Endpoint

	return true
}

func (m *Manager) clearSession() {
	os.Remove(m.path(sessionFileName))
}
