package store

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/cryptox"
	"github.com/dmitrijs2005/doorbell/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCipher(t *testing.T, b byte) cryptox.Cipher {
	t.Helper()
	c, err := cryptox.NewAESGCM(bytes.Repeat([]byte{b}, 32))
	require.NoError(t, err)
	return c
}

func setup(t *testing.T) (*FileStore, string, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "doorbell_user_prefs.json")
	return NewFileStore(path, newCipher(t, 1), logging.New(&buf, slog.LevelDebug)), path, &buf
}

func TestRead_MissingFile_ReturnsDefault(t *testing.T) {
	s, _, logs := setup(t)

	c := s.Read(context.Background())
	assert.Nil(t, c.Username)
	assert.Nil(t, c.Password)
	assert.NotContains(t, logs.String(), "level=WARN", "first run is not a warning")
}

func TestWriteThenRead_RoundTrip(t *testing.T) {
	s, path, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, models.NewCredentials("alice", "password1")))

	got := s.Read(ctx)
	require.True(t, got.Complete())
	assert.Equal(t, "alice", *got.Username)
	assert.Equal(t, "password1", *got.Password)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password1", "file must be encrypted")
}

func TestWrite_Overwrites(t *testing.T) {
	s, _, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, models.NewCredentials("alice", "password1")))
	require.NoError(t, s.Write(ctx, models.NewCredentials("bob", "password2")))

	got := s.Read(ctx)
	assert.Equal(t, "bob", *got.Username)
}

func TestRead_CorruptFile_ReturnsDefaultAndLogs(t *testing.T) {
	s, path, logs := setup(t)
	require.NoError(t, os.WriteFile(path, []byte("definitely not ciphertext"), 0o600))

	c := s.Read(context.Background())
	assert.False(t, c.Complete())
	assert.True(t, strings.Contains(logs.String(), "decrypting credentials failed"))
}

func TestRead_WrongKey_ReturnsDefault(t *testing.T) {
	s, path, _ := setup(t)
	require.NoError(t, s.Write(context.Background(), models.NewCredentials("alice", "password1")))

	other := NewFileStore(path, newCipher(t, 2), logging.Discard())
	assert.False(t, other.Read(context.Background()).Complete())
}

func TestRead_BadJSON_ReturnsDefault(t *testing.T) {
	s, path, logs := setup(t)
	blob, err := s.cipher.Encrypt([]byte("{not json"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, blob, 0o600))

	assert.False(t, s.Read(context.Background()).Complete())
	assert.Contains(t, logs.String(), "decoding credentials failed")
}

func TestWrite_UnwritableDir_WrapsErrIO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "prefs.json")
	s := NewFileStore(path, newCipher(t, 1), logging.Discard())

	err := s.Write(context.Background(), models.NewCredentials("alice", "password1"))
	require.ErrorIs(t, err, ErrIO)
}

func TestClear_RemovesFileAndIsIdempotent(t *testing.T) {
	s, path, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, models.NewCredentials("alice", "password1")))
	require.NoError(t, s.Clear(ctx))

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
	require.NoError(t, s.Clear(ctx))
}

func TestFileStore_WithAgeCipher(t *testing.T) {
	dir := t.TempDir()
	c, err := cryptox.LoadOrCreateAgeCipher(filepath.Join(dir, "doorbell.age"))
	require.NoError(t, err)

	s := NewFileStore(filepath.Join(dir, "prefs"), c, logging.Discard())
	require.NoError(t, s.Write(context.Background(), models.NewCredentials("carol", "password3")))
	assert.Equal(t, "carol", *s.Read(context.Background()).Username)
}
