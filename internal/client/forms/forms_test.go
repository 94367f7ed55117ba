package forms

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/doorbell/internal/client/validation"
	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	mu            sync.Mutex
	UsernameFree  bool
	EmailFree     bool
	UsernameErr   error
	EmailErr      error
	LastUsername  string
	LastEmail     string
	UsernameCalls int
	EmailCalls    int
}

func (f *fakeChecker) CheckUsernameAvailability(ctx context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UsernameCalls++
	f.LastUsername = username
	return f.UsernameFree, f.UsernameErr
}

func (f *fakeChecker) CheckEmailAvailability(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.EmailCalls++
	f.LastEmail = email
	return f.EmailFree, f.EmailErr
}

func fillRegister(f *RegisterForm, username, email, password, confirm string) {
	f.Username.SetText(username)
	f.Email.SetText(email)
	f.Password.SetText(password)
	f.Confirm.SetText(confirm)
}

func TestLoginForm_ValidateAll(t *testing.T) {
	f := NewLoginForm(time.Hour)
	defer f.Close()

	assert.False(t, f.ValidateAll())
	assert.Equal(t, validation.CodeEmpty, f.Username.Code())
	assert.Equal(t, validation.CodeEmpty, f.Password.Code())

	f.Username.SetText("bob")
	f.Password.SetText("short")
	assert.False(t, f.ValidateAll())
	assert.Equal(t, validation.CodeTooShort, f.Password.Code())

	f.Password.SetText("longenough")
	assert.True(t, f.ValidateAll())
}

func TestRegisterForm_LocalFailureSkipsNetwork(t *testing.T) {
	f := NewRegisterForm(time.Hour)
	defer f.Close()
	fillRegister(f, "bob", "not-an-email", "password1", "password1")

	checker := &fakeChecker{UsernameFree: true, EmailFree: true}
	assert.False(t, f.ValidateAll(context.Background(), checker))
	assert.Equal(t, validation.CodeBadFormat, f.Email.Code())
	assert.Zero(t, checker.UsernameCalls)
	assert.Zero(t, checker.EmailCalls)
}

func TestRegisterForm_AllValid(t *testing.T) {
	f := NewRegisterForm(time.Hour)
	defer f.Close()
	fillRegister(f, "bob", "bob@example.com", "password1", "password1")

	checker := &fakeChecker{UsernameFree: true, EmailFree: true}
	assert.True(t, f.ValidateAll(context.Background(), checker))
	assert.Equal(t, "bob", checker.LastUsername)
	assert.Equal(t, "bob@example.com", checker.LastEmail)
}

func TestRegisterForm_TakenAndRemoteError(t *testing.T) {
	f := NewRegisterForm(time.Hour)
	defer f.Close()
	fillRegister(f, "bob", "bob@example.com", "password1", "password1")

	checker := &fakeChecker{UsernameFree: false, EmailErr: errors.New("boom")}
	assert.False(t, f.ValidateAll(context.Background(), checker))
	assert.Equal(t, validation.CodeTaken, f.Username.Code())
	assert.Equal(t, validation.CodeRemoteError, f.Email.Code())
	assert.Equal(t, validation.CodeNone, f.Password.Code())
}

func TestRegisterForm_BlankUsernameSkipsRemoteCheck(t *testing.T) {
	f := NewRegisterForm(time.Hour)
	defer f.Close()
	fillRegister(f, "", "bob@example.com", "password1", "password1")

	checker := &fakeChecker{EmailFree: true}
	assert.True(t, f.ValidateAll(context.Background(), checker))
	assert.Zero(t, checker.UsernameCalls)
	assert.Equal(t, 1, checker.EmailCalls)
	assert.Nil(t, f.OptionalUsername())
}

func TestRegisterForm_ConfirmMismatch(t *testing.T) {
	f := NewRegisterForm(time.Hour)
	defer f.Close()
	fillRegister(f, "bob", "bob@example.com", "password1", "password2")

	checker := &fakeChecker{UsernameFree: true, EmailFree: true}
	assert.False(t, f.ValidateAll(context.Background(), checker))
	assert.Equal(t, validation.CodeMismatch, f.Confirm.Code())
}

func TestEmailForm_ValidateAll(t *testing.T) {
	f := NewEmailForm(time.Hour)
	defer f.Close()

	assert.False(t, f.ValidateAll())
	f.Email.SetText("a@b.io")
	assert.True(t, f.ValidateAll())
}

func TestResetPasswordForm_ValidateAll(t *testing.T) {
	f := NewResetPasswordForm(time.Hour)
	defer f.Close()

	f.Password.SetText("123456")
	assert.False(t, f.ValidateAll())
	assert.Equal(t, validation.CodeEmpty, f.Confirm.Code())

	f.Confirm.SetText("123457")
	assert.False(t, f.ValidateAll())
	assert.Equal(t, validation.CodeMismatch, f.Confirm.Code())

	f.Confirm.SetText("123456")
	assert.True(t, f.ValidateAll())
}

func TestRegisterForm_ValidateLocal(t *testing.T) {
	f := NewRegisterForm(time.Hour)
	defer f.Close()

	fillRegister(f, "bob", "bob@example.com", "password1", "password1")
	assert.True(t, f.ValidateLocal())

	fillRegister(f, "bob", "not-an-email", "password1", "password2")
	assert.False(t, f.ValidateLocal())
	assert.Equal(t, validation.CodeBadFormat, f.Email.Code())
	assert.Equal(t, validation.CodeMismatch, f.Confirm.Code())
	assert.True(t, f.Confirm.Touched())
}
