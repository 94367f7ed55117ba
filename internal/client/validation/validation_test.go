package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	assert.Equal(t, CodeEmpty, Username(""))
	assert.Equal(t, CodeNone, Username("bob"))
	assert.Equal(t, CodeNone, Username("b"))
}

func TestRegistrationUsername(t *testing.T) {
	tests := []struct {
		in   string
		want Code
	}{
		{"", CodeNone},
		{"   ", CodeNone},
		{"ab", CodeBadLength},
		{"abc", CodeNone},
		{strings.Repeat("x", 50), CodeNone},
		{strings.Repeat("x", 51), CodeBadLength},
		{"жёж", CodeNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RegistrationUsername(tt.in), "input %q", tt.in)
	}
}

func TestPassword(t *testing.T) {
	assert.Equal(t, CodeEmpty, Password(""))
	assert.Equal(t, CodeTooShort, Password("1234567"))
	assert.Equal(t, CodeNone, Password("12345678"))
}

func TestResetPassword(t *testing.T) {
	assert.Equal(t, CodeEmpty, ResetPassword(""))
	assert.Equal(t, CodeTooShort, ResetPassword("12345"))
	assert.Equal(t, CodeNone, ResetPassword("123456"))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want Code
	}{
		{"", CodeEmpty},
		{"a@b.co", CodeNone},
		{"first.last+tag@mail.example.org", CodeNone},
		{"a@b", CodeBadFormat},
		{"a@b.c", CodeBadFormat},
		{"a@b.abcdefg", CodeBadFormat},
		{"no-at.example.com", CodeBadFormat},
		{"a b@c.com", CodeBadFormat},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Email(tt.in), "input %q", tt.in)
	}
}

func TestComparePasswords(t *testing.T) {
	assert.Equal(t, CodeNone, ComparePasswords("secret123", ""))
	assert.Equal(t, CodeNone, ComparePasswords("secret123", "  "))
	assert.Equal(t, CodeMismatch, ComparePasswords("secret123", "secret124"))
	assert.Equal(t, CodeNone, ComparePasswords("secret123", "secret123"))
}

func TestOTPCode(t *testing.T) {
	assert.Equal(t, CodeNone, OTPCode("012345"))
	assert.Equal(t, CodeBadFormat, OTPCode("12345"))
	assert.Equal(t, CodeBadFormat, OTPCode("1234567"))
	assert.Equal(t, CodeBadFormat, OTPCode("12a456"))
	assert.Equal(t, CodeBadFormat, OTPCode("１２３４５６"))
}

func TestCodeOK(t *testing.T) {
	assert.True(t, CodeNone.OK())
	assert.False(t, CodeTaken.OK())
}
