package cryptox

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"filippo.io/age"
)

// AgeCipher encrypts to, and decrypts with, a single X25519 identity.
type AgeCipher struct {
	identity *age.X25519Identity
}

func NewAgeCipher(identity *age.X25519Identity) *AgeCipher {
	return &AgeCipher{identity: identity}
}

func (c *AgeCipher) Encrypt(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, c.identity.Recipient())
	if err != nil {
		return nil, fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing plaintext to age encryptor: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing age encryption: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *AgeCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	r, err := age.Decrypt(bytes.NewReader(ciphertext), c.identity)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading decrypted plaintext: %w", err)
	}
	return plaintext, nil
}

// LoadOrCreateAgeCipher reads an AGE-SECRET-KEY-1... identity from path,
// generating and saving one (mode 0600) when the file does not exist.
func LoadOrCreateAgeCipher(path string) (*AgeCipher, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		identity, err := age.GenerateX25519Identity()
		if err != nil {
			return nil, fmt.Errorf("generating age identity: %w", err)
		}
		if err := os.WriteFile(path, []byte(identity.String()+"\n"), 0o600); err != nil {
			return nil, fmt.Errorf("write identity file: %w", err)
		}
		return NewAgeCipher(identity), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read identity file: %w", err)
	}

	identity, err := age.ParseX25519Identity(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("parsing identity file: %w", err)
	}
	return NewAgeCipher(identity), nil
}
