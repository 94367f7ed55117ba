package scope

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScope_CloseCancelsGoroutines(t *testing.T) {
	s := New(context.Background())

	stopped := make(chan struct{})
	s.Go(func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return nil
	})

	require.NoError(t, s.Close())

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("goroutine was not cancelled")
	}

	// idempotent
	require.NoError(t, s.Close())
}

func TestScope_ErrorCancelsSiblings(t *testing.T) {
	s := New(context.Background())
	boom := errors.New("boom")

	s.Go(func(ctx context.Context) error { return boom })
	s.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	require.ErrorIs(t, s.Wait(), boom)
	require.Error(t, s.Context().Err())
}

func TestScope_ParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	s := New(parent)
	cancel()

	select {
	case <-s.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("scope context must follow its parent")
	}
	require.NoError(t, s.Close())
}
