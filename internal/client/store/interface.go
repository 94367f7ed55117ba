// Package store persists the login credential pair in one encrypted file.
package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
)

// ErrIO is wrapped by every write or clear failure.
var ErrIO = errors.New("credential store i/o error")

// CredentialStore reads and replaces the persisted credential record.
//
// Read never fails: a missing, unreadable or undecryptable file yields the
// empty record. Write replaces the record atomically.
type CredentialStore interface {
	Read(ctx context.Context) models.Credentials
	Write(ctx context.Context, c models.Credentials) error
	Clear(ctx context.Context) error
}
