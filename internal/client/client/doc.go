// Package client contains the REST client for the doorbell backend.
//
// # Overview
//
// The package provides:
//  1. Transport-agnostic contracts: AuthClient (login, signup, availability
//     checks, OTP dispatch and validation, password reset) and APIClient
//     (users, devices, device access, events), combined in Client.
//  2. A concrete implementation (see HTTPClient) over net/http that injects
//     the bearer token through a RoundTripper on every request except the
//     public auth and OTP paths, and maps HTTP statuses to sentinel errors.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors that callers match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrConflict and
// ErrServer. Non-2xx responses are returned as *StatusError, which unwraps
// to one of them.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; the underlying http.Client has a
// fixed timeout taken from configuration.
package client
