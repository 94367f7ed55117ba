// Package nav models the screens a user can be routed to and the back stack
// between them.
package nav

import (
	"fmt"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
)

// Destination is a closed set of screens. Only types in this package
// implement it.
type Destination interface {
	fmt.Stringer
	destination()
}

type Login struct{}

type Register struct{}

type ForgotPassword struct{}

// ResetPassword sets a new password for Login after an OTP check.
type ResetPassword struct {
	Login string
}

// OTP is the verification-code screen and carries the challenge context.
type OTP struct {
	Username *string
	Email    string
	Purpose  models.OTPPurpose
	// WithOrigin means the screen was pushed on top of the flow that
	// started the challenge and should hand control back to it.
	WithOrigin bool
	// Return, when set, replaces the origin after verification.
	Return Destination
	// WipeHistory clears the stack before pushing Return.
	WipeHistory bool
}

type Home struct{}

func (Login) destination()          {}
func (Register) destination()       {}
func (ForgotPassword) destination() {}
func (ResetPassword) destination()  {}
func (OTP) destination()            {}
func (Home) destination()           {}

func (Login) String() string          { return "login" }
func (Register) String() string       { return "register" }
func (ForgotPassword) String() string { return "forgot-password" }
func (ResetPassword) String() string  { return "reset-password" }
func (OTP) String() string            { return "otp" }
func (Home) String() string           { return "home" }
