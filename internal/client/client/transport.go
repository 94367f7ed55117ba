package client

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/doorbell/internal/common"
)

// TokenSource yields the current bearer token; "" means none.
type TokenSource interface {
	Token() string
}

// bearerTransport adds the Authorization header to every request whose path
// is not one of common.PublicPathPrefixes.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func isPublicPath(path string) bool {
	for _, p := range common.PublicPathPrefixes {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if isPublicPath(req.URL.Path) {
		return t.base.RoundTrip(req)
	}

	token := t.tokens.Token()
	if token == "" {
		return t.base.RoundTrip(req)
	}

	// RoundTrippers must not mutate the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+token)
	return t.base.RoundTrip(r)
}
