package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/scrypt"
)

const (
	ScryptN = 32768 // 2^15
	ScryptR = 8
	ScryptP = 1
	KeyLen  = 32 // AES-256 key length

	saltLen  = 32
	nonceLen = 12
)

// Vault is a secret encrypted with a key derived from a passphrase
type Vault struct {
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	Data  []byte `json:"data"`
}

// VaultData is the plaintext kept inside a vault
type VaultData struct {
	Secret  string `json:"secret"`
	Label   string `json:"label,omitempty"`
	Version int    `json:"version"`
}

// NewVault encrypts secret under passphrase.
// label is stored alongside the secret, e.g. the address a seed belongs to.
func NewVault(secret, label, passphrase string) (*Vault, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	data, err := json.Marshal(VaultData{
		Secret:  secret,
		Label:   label,
		Version: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize vault data: %w", err)
	}
	defer clearBytes(data)

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	encryptedData, err := encrypt(key, nonce, data)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	return &Vault{
		Salt:  salt,
		Nonce: nonce,
		Data:  encryptedData,
	}, nil
}

// LoadVault reads a vault written by Save
func LoadVault(path string) (*Vault, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	var v Vault
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vault: %w", err)
	}
	return &v, nil
}

// Save writes the vault to path, readable by the owner only
func (v *Vault) Save(path string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize vault: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write vault: %w", err)
	}
	return nil
}

// Open returns the decrypted contents of the vault
func (v *Vault) Open(passphrase string) (*VaultData, error) {
	key, err := deriveKey(passphrase, v.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	decryptedData, err := decrypt(key, v.Nonce, v.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}
	defer clearBytes(decryptedData)

	var vaultData VaultData
	if err := json.Unmarshal(decryptedData, &vaultData); err != nil {
		return nil, fmt.Errorf("failed to deserialize vault data: %w", err)
	}

	return &vaultData, nil
}

// Decrypt returns the secret kept in the vault
func (v *Vault) Decrypt(passphrase string) (string, error) {
	data, err := v.Open(passphrase)
	if err != nil {
		return "", err
	}
	return data.Secret, nil
}

func (v *Vault) ValidatePassphrase(passphrase string) bool {
	_, err := v.Open(passphrase)
	return err == nil
}

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, ScryptN, ScryptR, ScryptP, KeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation failed: %w", err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

func encrypt(key, nonce, data []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aesGCM.Seal(nil, nonce, data, nil), nil
}

func decrypt(key, nonce, data []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}

	return plaintext, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
