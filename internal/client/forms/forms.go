package forms

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/doorbell/internal/client/validation"
	"golang.org/x/sync/errgroup"
)

// AvailabilityChecker is the remote half of registration validation.
type AvailabilityChecker interface {
	CheckUsernameAvailability(ctx context.Context, username string) (bool, error)
	CheckEmailAvailability(ctx context.Context, email string) (bool, error)
}

type LoginForm struct {
	Username *Field
	Password *Field
}

func NewLoginForm(delay time.Duration) *LoginForm {
	return &LoginForm{
		Username: NewField(validation.Username, delay),
		Password: NewField(validation.Password, delay),
	}
}

// ValidateAll validates both fields and reports whether the form can be
// submitted.
func (f *LoginForm) ValidateAll() bool {
	u := f.Username.Validate()
	p := f.Password.Validate()
	return u.OK() && p.OK()
}

func (f *LoginForm) Close() {
	f.Username.Close()
	f.Password.Close()
}

type RegisterForm struct {
	Username *Field
	Email    *Field
	Password *Field
	Confirm  *Field
}

func NewRegisterForm(delay time.Duration) *RegisterForm {
	f := &RegisterForm{
		Username: NewField(validation.RegistrationUsername, delay),
		Email:    NewField(validation.Email, delay),
		Password: NewField(validation.Password, delay),
	}
	f.Confirm = NewField(func(s string) validation.Code {
		return validation.ComparePasswords(f.Password.Text(), s)
	}, delay)
	return f
}

// OptionalUsername returns nil when the username was left blank.
func (f *RegisterForm) OptionalUsername() *string {
	u := f.Username.Text()
	if strings.TrimSpace(u) == "" {
		return nil
	}
	return &u
}

// ValidateLocal runs every field check that needs no server round trip.
func (f *RegisterForm) ValidateLocal() bool {
	u := f.Username.Validate()
	e := f.Email.Validate()
	p := f.Password.Validate()
	c := f.Confirm.Validate()
	return u.OK() && e.OK() && p.OK() && c.OK()
}

// ValidateAll runs the local username and email checks, then both remote
// availability checks concurrently, then the password checks. Remote checks
// are skipped when a local check already failed.
func (f *RegisterForm) ValidateAll(ctx context.Context, checker AvailabilityChecker) bool {
	u := f.Username.Validate()
	e := f.Email.Validate()
	if !u.OK() || !e.OK() {
		return false
	}

	var userCode, emailCode validation.Code
	g, gctx := errgroup.WithContext(ctx)
	if username := f.OptionalUsername(); username != nil {
		g.Go(func() error {
			userCode = remoteCode(checker.CheckUsernameAvailability(gctx, *username))
			return nil
		})
	}
	email := f.Email.Text()
	g.Go(func() error {
		emailCode = remoteCode(checker.CheckEmailAvailability(gctx, email))
		return nil
	})
	_ = g.Wait()

	if !userCode.OK() {
		f.Username.SetCode(userCode)
	}
	if !emailCode.OK() {
		f.Email.SetCode(emailCode)
	}

	p := f.Password.Validate()
	c := f.Confirm.Validate()

	return userCode.OK() && emailCode.OK() && p.OK() && c.OK()
}

func remoteCode(available bool, err error) validation.Code {
	switch {
	case err != nil:
		return validation.CodeRemoteError
	case !available:
		return validation.CodeTaken
	default:
		return validation.CodeNone
	}
}

func (f *RegisterForm) Close() {
	f.Username.Close()
	f.Email.Close()
	f.Password.Close()
	f.Confirm.Close()
}

// EmailForm is the forgot-password form.
type EmailForm struct {
	Email *Field
}

func NewEmailForm(delay time.Duration) *EmailForm {
	return &EmailForm{Email: NewField(validation.Email, delay)}
}

func (f *EmailForm) ValidateAll() bool {
	return f.Email.Validate().OK()
}

func (f *EmailForm) Close() {
	f.Email.Close()
}

type ResetPasswordForm struct {
	Password *Field
	Confirm  *Field
}

func NewResetPasswordForm(delay time.Duration) *ResetPasswordForm {
	f := &ResetPasswordForm{Password: NewField(validation.ResetPassword, delay)}
	f.Confirm = NewField(func(s string) validation.Code {
		if s == "" {
			return validation.CodeEmpty
		}
		return validation.ComparePasswords(f.Password.Text(), s)
	}, delay)
	return f
}

func (f *ResetPasswordForm) ValidateAll() bool {
	p := f.Password.Validate()
	c := f.Confirm.Validate()
	return p.OK() && c.OK()
}

func (f *ResetPasswordForm) Close() {
	f.Password.Close()
	f.Confirm.Close()
}
