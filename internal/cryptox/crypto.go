// Package cryptox seals the locally persisted credential blob. Two ciphers
// are available: AES-GCM with a key kept in a local key file (optionally
// derived from a passphrase with argon2id), and age with an X25519
// identity file.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/doorbell/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	keySize  = 32
	saltSize = 16
)

var (
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrBadKeyFile         = errors.New("malformed key file")
)

// Cipher encrypts and decrypts an opaque blob.
type Cipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// DeriveKey stretches a passphrase into a 32-byte AES key with argon2id.
func DeriveKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, keySize)
}

// AESGCM is a Cipher producing nonce||ciphertext blobs.
type AESGCM struct {
	aead cipher.AEAD
}

// NewAESGCM builds an AES-GCM cipher. The key must be 16, 24 or 32 bytes.
func NewAESGCM(key []byte) (*AESGCM, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &AESGCM{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce and prepends the nonce.
func (c *AESGCM) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := common.GenerateRandByteArray(c.aead.NonceSize())
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt splits the nonce off the blob and opens the rest.
func (c *AESGCM) Decrypt(blob []byte) ([]byte, error) {
	n := c.aead.NonceSize()
	if len(blob) < n {
		return nil, ErrCiphertextTooShort
	}
	return c.aead.Open(nil, blob[:n], blob[n:], nil)
}

// LoadOrCreateAESGCM reads the key file at path, creating it with a random
// secret and salt on first use, and returns a cipher for it.
//
// The file holds 32 secret bytes followed by 16 salt bytes. With an empty
// passphrase the secret is the AES key; otherwise the key is derived from
// the passphrase and the stored salt, so the file alone cannot open the blob.
func LoadOrCreateAESGCM(path string, passphrase []byte) (*AESGCM, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		raw = append(common.GenerateRandByteArray(keySize), common.GenerateRandByteArray(saltSize)...)
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			return nil, fmt.Errorf("write key file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	if len(raw) != keySize+saltSize {
		return nil, ErrBadKeyFile
	}

	defer common.WipeByteArray(raw)

	secret, salt := raw[:keySize], raw[keySize:]
	key := secret
	if len(passphrase) > 0 {
		key = DeriveKey(passphrase, salt)
		defer common.WipeByteArray(key)
	}
	// The AES key schedule holds its own copy.
	return NewAESGCM(key)
}
