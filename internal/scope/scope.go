// Package scope ties background goroutines to the lifetime of their owner.
// A controller creates one Scope and closes it when it is discarded; every
// goroutine started through it sees its context cancelled.
package scope

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Scope is a cancellable group of goroutines.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
	once   sync.Once
}

// New derives a Scope from parent.
func New(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	g, gctx := errgroup.WithContext(ctx)
	return &Scope{ctx: gctx, cancel: cancel, group: g}
}

// Context returns the scope context. It is done after Close, or after any
// goroutine started with Go returns a non-nil error.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Go runs fn in a new goroutine bound to the scope context.
func (s *Scope) Go(fn func(ctx context.Context) error) {
	s.group.Go(func() error { return fn(s.ctx) })
}

// Wait blocks until every goroutine returns and reports the first error.
func (s *Scope) Wait() error {
	return s.group.Wait()
}

// Close cancels the scope and waits for its goroutines. It is idempotent.
func (s *Scope) Close() error {
	var err error
	s.once.Do(func() {
		s.cancel()
		err = s.group.Wait()
	})
	return err
}
