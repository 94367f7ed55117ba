package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/cryptox"
	"github.com/dmitrijs2005/doorbell/internal/filex"
	"github.com/dmitrijs2005/doorbell/internal/logging"
)

// FileStore keeps the credential record as an encrypted JSON blob on disk.
type FileStore struct {
	path   string
	cipher cryptox.Cipher
	log    logging.Logger
	mu     sync.Mutex
}

func NewFileStore(path string, c cryptox.Cipher, log logging.Logger) *FileStore {
	return &FileStore{path: path, cipher: c, log: log.With("component", "credential_store")}
}

func (s *FileStore) Read(ctx context.Context) models.Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Credentials{}
	}
	if err != nil {
		s.log.Warn(ctx, "reading credentials failed, using defaults", "path", s.path, "error", err)
		return models.Credentials{}
	}

	plaintext, err := s.cipher.Decrypt(blob)
	if err != nil {
		s.log.Warn(ctx, "decrypting credentials failed, using defaults", "path", s.path, "error", err)
		return models.Credentials{}
	}

	var c models.Credentials
	if err := json.Unmarshal(plaintext, &c); err != nil {
		s.log.Warn(ctx, "decoding credentials failed, using defaults", "path", s.path, "error", err)
		return models.Credentials{}
	}
	return c
}

func (s *FileStore) Write(ctx context.Context, c models.Credentials) error {
	plaintext, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrIO, err)
	}

	blob, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("%w: encrypt: %v", ErrIO, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := filex.WriteFileAtomic(s.path, blob, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	s.log.Debug(ctx, "credentials saved", "path", s.path)
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	s.log.Debug(ctx, "credentials cleared", "path", s.path)
	return nil
}
