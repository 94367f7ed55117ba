// Package token keeps the current bearer token in memory for the lifetime
// of the process. It is never written to disk; a restart re-derives it by
// logging in with the stored credentials.
package token

import (
	"time"

	"github.com/dmitrijs2005/doorbell/internal/observable"
	"github.com/golang-jwt/jwt/v5"
)

// Holder is the process-wide token cell. The empty string means "no token".
type Holder struct {
	value *observable.Value[string]
}

func NewHolder() *Holder {
	return &Holder{value: observable.NewComparable("")}
}

func (h *Holder) Set(token string) {
	h.value.Set(token)
}

func (h *Holder) Token() string {
	return h.value.Get()
}

// Clear drops the token, e.g. on logout.
func (h *Holder) Clear() {
	h.value.Set("")
}

func (h *Holder) Subscribe(fn func(string)) (unsubscribe func()) {
	return h.value.Subscribe(fn)
}

// Expiry reports the exp claim when the token is a JWT. The signature is
// not checked; the server stays the authority, this is for display only.
func (h *Holder) Expiry() (time.Time, bool) {
	raw := h.Token()
	if raw == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
