// Package session holds the signed-in user for the lifetime of the process
// and the start-up controller that decides the first screen.
package session

import (
	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/observable"
)

// Snapshot is what subscribers receive.
type Snapshot struct {
	User *models.User
	// Verified is set after an email OTP succeeds, or when the cached user
	// already has a verified email.
	Verified bool
	// LoginFailedAfterVerify records that the account was verified but the
	// follow-up login did not succeed.
	LoginFailedAfterVerify bool
}

// Session is the in-memory cache of the current user.
type Session struct {
	state *observable.Value[Snapshot]
}

func New() *Session {
	return &Session{state: observable.New(Snapshot{})}
}

// SetUser caches u. A copy is stored so callers may keep mutating theirs.
// It also resets LoginFailedAfterVerify, since u came from a login.
func (s *Session) SetUser(u models.User) {
	s.state.Update(func(cur Snapshot) Snapshot {
		cur.User = &u
		cur.Verified = cur.Verified || u.IsEmailVerified
		cur.LoginFailedAfterVerify = false
		return cur
	})
}

// User returns a copy of the cached user.
func (s *Session) User() (models.User, bool) {
	cur := s.state.Get()
	if cur.User == nil {
		return models.User{}, false
	}
	return *cur.User, true
}

func (s *Session) MarkVerified() {
	s.state.Update(func(cur Snapshot) Snapshot {
		cur.Verified = true
		if cur.User != nil {
			u := *cur.User
			u.IsEmailVerified = true
			cur.User = &u
		}
		return cur
	})
}

func (s *Session) Verified() bool {
	return s.state.Get().Verified
}

func (s *Session) MarkLoginFailedAfterVerify() {
	s.state.Update(func(cur Snapshot) Snapshot {
		cur.LoginFailedAfterVerify = true
		return cur
	})
}

func (s *Session) LoginFailedAfterVerify() bool {
	return s.state.Get().LoginFailedAfterVerify
}

// Clear forgets the user, e.g. on logout.
func (s *Session) Clear() {
	s.state.Set(Snapshot{})
}

func (s *Session) Snapshot() Snapshot {
	return s.state.Get()
}

func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return s.state.Subscribe(fn)
}
