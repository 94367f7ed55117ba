// Package common contains shared constants and small helpers used across
// the doorbell client packages.
package common

// AuthorizationHeaderName is the HTTP header that carries the bearer token
// on authenticated requests.
const AuthorizationHeaderName = "Authorization"

// BearerScheme prefixes the token value in the Authorization header.
const BearerScheme = "Bearer "

// PublicPathPrefixes lists the API path prefixes that are called without a
// bearer token: login, signup, availability checks and OTP endpoints.
var PublicPathPrefixes = []string{
	"/api/auth/",
	"/api/verify/",
}
