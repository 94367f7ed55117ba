package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/doorbell/internal/client/client"
	"github.com/dmitrijs2005/doorbell/internal/client/models"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrAvailabilityConflict = errors.New("username or email already taken")
	ErrAuthFailure          = errors.New("authentication failed")
	ErrNetworkUnavailable   = errors.New("network unavailable")
	ErrServer               = errors.New("server error")
	ErrOTPRejected          = errors.New("verification code rejected")
)

// Stage names the registration step that failed.
type Stage string

const (
	StageValidate Stage = "validate"
	StageSignup   Stage = "signup"
	StageSendOTP  Stage = "send_otp"
)

// StageError reports which registration step failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("registration %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// OTPRejectedError is returned when the server answers an OTP request with
// anything but SUCCESS.
type OTPRejectedError struct {
	Status  models.OTPStatus
	Message string
}

func (e *OTPRejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("verification code rejected: %s", e.Status)
	}
	return fmt.Sprintf("verification code rejected: %s: %s", e.Status, e.Message)
}

func (e *OTPRejectedError) Is(target error) bool { return target == ErrOTPRejected }

// UserMessage is the text shown to the user for this rejection.
func (e *OTPRejectedError) UserMessage() string {
	switch e.Status {
	case models.OTPStatusInvalid:
		return "The code does not match. Check it and try again."
	case models.OTPStatusExpired:
		return "The code has expired. Request a new one."
	case models.OTPStatusTooManyRequests:
		return "Too many attempts. Wait a moment before trying again."
	default:
		return "The code could not be processed. Please try again."
	}
}

// classify maps a transport error onto the service taxonomy, keeping the
// original error in the chain.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, client.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
	case errors.Is(err, client.ErrConflict):
		return fmt.Errorf("%w: %w", ErrAvailabilityConflict, err)
	case errors.Is(err, client.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrAuthFailure, err)
	default:
		return fmt.Errorf("%w: %w", ErrServer, err)
	}
}

// isRejectedCredentials reports whether a login call failed because the
// server did not accept the username/password pair.
func isRejectedCredentials(err error) bool {
	if errors.Is(err, client.ErrUnauthorized) {
		return true
	}
	var se *client.StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusBadRequest
}
