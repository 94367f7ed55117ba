// Package validation holds the pure field validators used by the auth
// forms. Every validator is total: it returns CodeNone or an error code and
// never fails.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Code identifies a field error. CodeNone means the value is acceptable.
type Code string

const (
	CodeNone          Code = ""
	CodeEmpty         Code = "EMPTY"
	CodeTooShort      Code = "TOO_SHORT"
	CodeBadLength     Code = "BAD_LENGTH"
	CodeBadFormat     Code = "BAD_FORMAT"
	CodeMismatch      Code = "MISMATCH"
	CodeTaken         Code = "TAKEN"
	CodeNotFound      Code = "NOT_FOUND"
	CodeWrongPassword Code = "WRONG_PASSWORD"
	CodeRemoteError   Code = "REMOTE_ERROR"
)

const (
	MinPasswordLength      = 8
	MinResetPasswordLength = 6
	MinUsernameLength      = 3
	MaxUsernameLength      = 50
	OTPCodeLength          = 6
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)

// OK reports whether c carries no error.
func (c Code) OK() bool { return c == CodeNone }

// Username checks the login field, which accepts a username or an email.
func Username(s string) Code {
	if s == "" {
		return CodeEmpty
	}
	return CodeNone
}

// RegistrationUsername checks the optional signup username. Blank is valid.
func RegistrationUsername(s string) Code {
	if strings.TrimSpace(s) == "" {
		return CodeNone
	}
	if n := utf8.RuneCountInString(s); n < MinUsernameLength || n > MaxUsernameLength {
		return CodeBadLength
	}
	return CodeNone
}

func Password(s string) Code {
	return PasswordMin(s, MinPasswordLength)
}

// ResetPassword is the relaxed password check used by the reset screen.
func ResetPassword(s string) Code {
	return PasswordMin(s, MinResetPasswordLength)
}

func PasswordMin(s string, n int) Code {
	if s == "" {
		return CodeEmpty
	}
	if utf8.RuneCountInString(s) < n {
		return CodeTooShort
	}
	return CodeNone
}

func Email(s string) Code {
	if s == "" {
		return CodeEmpty
	}
	if !emailPattern.MatchString(s) {
		return CodeBadFormat
	}
	return CodeNone
}

// ComparePasswords flags a confirmation that differs from the password.
// An empty confirmation is not flagged.
func ComparePasswords(password, confirm string) Code {
	if strings.TrimSpace(confirm) != "" && password != confirm {
		return CodeMismatch
	}
	return CodeNone
}

// OTPCode accepts exactly six ASCII digits.
func OTPCode(s string) Code {
	if len(s) != OTPCodeLength {
		return CodeBadFormat
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return CodeBadFormat
		}
	}
	return CodeNone
}
