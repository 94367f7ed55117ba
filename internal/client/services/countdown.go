package services

import (
	"sync"
	"time"
)

// DefaultResendInterval is how long the user waits before a code can be
// requested again.
const DefaultResendInterval = 120 * time.Second

// Countdown gates OTP resends. It is expired until first started.
type Countdown struct {
	mu       sync.Mutex
	d        time.Duration
	deadline time.Time
	now      func() time.Time
}

func NewCountdown(d time.Duration) *Countdown {
	if d <= 0 {
		d = DefaultResendInterval
	}
	return &Countdown{d: d, now: time.Now}
}

// Start (re)arms the countdown from now.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadline = c.now().Add(c.d)
}

func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	left := c.deadline.Sub(c.now())
	if left < 0 {
		return 0
	}
	return left
}

func (c *Countdown) Expired() bool {
	return c.Remaining() == 0
}
