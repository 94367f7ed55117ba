// Package netmon answers "is the backend reachable?" once, and keeps a
// periodically refreshed answer for the CLI prompt.
package netmon

import (
	"context"
	"time"

	"github.com/dmitrijs2005/doorbell/internal/logging"
	"github.com/dmitrijs2005/doorbell/internal/observable"
)

const DefaultProbeTimeout = 3 * time.Second

// Connectivity reports whether the network is usable right now.
type Connectivity interface {
	IsOnline(ctx context.Context) bool
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe checks connectivity by pinging the backend.
type Probe struct {
	pinger  Pinger
	timeout time.Duration
}

func NewProbe(p Pinger, timeout time.Duration) *Probe {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Probe{pinger: p, timeout: timeout}
}

func (p *Probe) IsOnline(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.pinger.Ping(ctx) == nil
}

// Watcher polls a Connectivity at a fixed interval and publishes changes.
type Watcher struct {
	conn     Connectivity
	interval time.Duration
	log      logging.Logger
	online   *observable.Value[bool]
}

func NewWatcher(conn Connectivity, interval time.Duration, log logging.Logger) *Watcher {
	return &Watcher{
		conn:     conn,
		interval: interval,
		log:      log.With("component", "netmon"),
		online:   observable.NewComparable(false),
	}
}

func (w *Watcher) Online() bool {
	return w.online.Get()
}

func (w *Watcher) Subscribe(fn func(bool)) (unsubscribe func()) {
	return w.online.Subscribe(fn)
}

func (w *Watcher) check(ctx context.Context) {
	online := w.conn.IsOnline(ctx)
	if online != w.online.Get() {
		w.log.Info(ctx, "connectivity changed", "online", online)
	}
	w.online.Set(online)
}

// Run checks once immediately, then on every tick until ctx is done. It
// always returns nil so it can be started on a scope.
func (w *Watcher) Run(ctx context.Context) error {
	w.check(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.check(ctx)
		case <-ctx.Done():
			return nil
		}
	}
}
