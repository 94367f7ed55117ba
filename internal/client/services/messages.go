package services

import (
	"context"
	"errors"
)

// UserMessage turns a service error into a short sentence for the terminal.
// Unknown errors get a generic message.
func UserMessage(err error) string {
	var rejected *OTPRejectedError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &rejected):
		return rejected.UserMessage()
	case errors.Is(err, ErrValidation):
		return "Please fix the highlighted fields."
	case errors.Is(err, ErrAvailabilityConflict):
		return "That username or email is already registered."
	case errors.Is(err, ErrAuthFailure):
		return "Sign-in failed. Check your username and password."
	case errors.Is(err, ErrNetworkUnavailable):
		return "No connection to the server. Check your network."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "The request was cancelled."
	default:
		return "Something went wrong. Please try again."
	}
}
