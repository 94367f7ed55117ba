package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/doorbell/internal/client/client"
	"github.com/dmitrijs2005/doorbell/internal/client/forms"
	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/session"
	"github.com/dmitrijs2005/doorbell/internal/client/token"
	"github.com/dmitrijs2005/doorbell/internal/client/validation"
	"github.com/dmitrijs2005/doorbell/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrarFixture struct {
	api     *fakeAuthClient
	store   *fakeStore
	tokens  *token.Holder
	session *session.Session
	form    *forms.RegisterForm
	reg     *Registrar
}

func newRegistrarFixture(t *testing.T, username string) *registrarFixture {
	t.Helper()
	form := forms.NewRegisterForm(time.Hour)
	t.Cleanup(form.Close)
	form.Username.SetText(username)
	form.Email.SetText("bob@example.com")
	form.Password.SetText("password1")
	form.Confirm.SetText("password1")

	f := &registrarFixture{
		api: &fakeAuthClient{
			UsernameFree: true,
			EmailFree:    true,
			SignupResp:   &models.User{Email: "bob@example.com"},
			SendResp:     otpOK,
		},
		store:   &fakeStore{},
		tokens:  token.NewHolder(),
		session: session.New(),
		form:    form,
	}
	if username != "" {
		f.api.SignupResp.Username = strp(username)
	}
	otp := NewOTPService(f.api, f.session, logging.Discard())
	f.reg = NewRegistrar(form, f.api, otp, f.store, f.tokens, f.session, logging.Discard())
	return f
}

func TestRegistrar_Register(t *testing.T) {
	f := newRegistrarFixture(t, "bob")

	challenge, err := f.reg.Register(context.Background())
	require.NoError(t, err)

	want := nav.OTP{Username: strp("bob"), Email: "bob@example.com", Purpose: models.OTPPurposeVerifyEmail, WithOrigin: true}
	if diff := cmp.Diff(want, challenge); diff != "" {
		t.Fatalf("challenge mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, models.RegisterRequest{Username: strp("bob"), Email: "bob@example.com", Password: "password1"}, f.api.LastSignup)
	assert.Equal(t, models.NewCredentials("bob", "password1"), f.store.Creds)
	assert.Equal(t, models.OTPPurposeVerifyEmail, f.api.LastSend.Purpose)
	assert.True(t, f.reg.Registered())
}

func TestRegistrar_BlankUsernameStoresEmail(t *testing.T) {
	f := newRegistrarFixture(t, "")

	challenge, err := f.reg.Register(context.Background())
	require.NoError(t, err)
	assert.Nil(t, challenge.Username)
	assert.Nil(t, f.api.LastSignup.Username)
	assert.Equal(t, models.NewCredentials("bob@example.com", "password1"), f.store.Creds)
}

func TestRegistrar_SignupHappensOnce(t *testing.T) {
	f := newRegistrarFixture(t, "bob")
	f.api.SendErr = client.ErrUnavailable

	_, err := f.reg.Register(context.Background())
	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageSendOTP, se.Stage)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)

	f.api.SendErr = nil
	_, err = f.reg.Register(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, f.api.SignupCalls)
	assert.Equal(t, 2, f.api.SendCalls)
	assert.Equal(t, 1, f.store.Writes)
}

func TestRegistrar_RetryAfterSignupSkipsAvailability(t *testing.T) {
	f := newRegistrarFixture(t, "bob")
	f.api.SendErr = client.ErrUnavailable

	_, err := f.reg.Register(context.Background())
	require.Error(t, err)
	require.True(t, f.reg.Registered())

	// The server now knows the account, so both checks would report taken.
	f.api.SendErr = nil
	f.api.UsernameFree = false
	f.api.EmailFree = false

	challenge, err := f.reg.Register(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", challenge.Email)
	assert.Equal(t, 1, f.api.SignupCalls)
	assert.Equal(t, 2, f.api.SendCalls)
	assert.Equal(t, validation.CodeNone, f.form.Username.Code())
	assert.Equal(t, validation.CodeNone, f.form.Email.Code())
}

func TestRegistrar_RetryStillChecksLocalFields(t *testing.T) {
	f := newRegistrarFixture(t, "bob")
	f.api.SendErr = client.ErrUnavailable
	_, err := f.reg.Register(context.Background())
	require.Error(t, err)

	f.api.SendErr = nil
	f.form.Confirm.SetText("different1")

	_, err = f.reg.Register(context.Background())
	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageValidate, se.Stage)
	assert.Equal(t, validation.CodeMismatch, f.form.Confirm.Code())
	assert.Equal(t, 1, f.api.SendCalls)
}

func TestRegistrar_ValidationStage(t *testing.T) {
	f := newRegistrarFixture(t, "bob")
	f.api.EmailFree = false

	_, err := f.reg.Register(context.Background())
	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageValidate, se.Stage)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, f.api.SignupCalls)
}

func TestRegistrar_SignupConflict(t *testing.T) {
	f := newRegistrarFixture(t, "bob")
	f.api.SignupErr = client.NewStatusError(409, "exists")

	_, err := f.reg.Register(context.Background())
	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageSignup, se.Stage)
	assert.ErrorIs(t, err, ErrAvailabilityConflict)
	assert.False(t, f.reg.Registered())
	assert.Zero(t, f.api.SendCalls)
}

func TestRegistrar_SignupServerError(t *testing.T) {
	f := newRegistrarFixture(t, "bob")
	f.api.SignupErr = client.NewStatusError(500, "")

	_, err := f.reg.Register(context.Background())
	assert.ErrorIs(t, err, ErrServer)
}

func TestRegistrar_OTPRejected(t *testing.T) {
	f := newRegistrarFixture(t, "bob")
	f.api.SendResp = &models.OTPResponse{Status: models.OTPStatusTooManyRequests}

	_, err := f.reg.Register(context.Background())
	assert.ErrorIs(t, err, ErrOTPRejected)
	var rejected *OTPRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, models.OTPStatusTooManyRequests, rejected.Status)
}

func TestRegistrar_FirstLogin(t *testing.T) {
	f := newRegistrarFixture(t, "bob")
	f.api.LoginResp = &models.LoginResponse{Token: "tok", User: models.User{Email: "bob@example.com"}}

	u, err := f.reg.FirstLogin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", u.Email)
	assert.Equal(t, models.LoginRequest{Username: "bob", Password: "password1"}, f.api.LastLogin)
	assert.Equal(t, "tok", f.tokens.Token())
	assert.True(t, f.session.Verified())
}

func TestRegistrar_FirstLoginFailure(t *testing.T) {
	f := newRegistrarFixture(t, "")
	f.api.LoginErr = client.NewStatusError(401, "")

	_, err := f.reg.FirstLogin(context.Background())
	assert.ErrorIs(t, err, ErrAuthFailure)
	assert.Equal(t, "bob@example.com", f.api.LastLogin.Username)
	assert.True(t, f.session.LoginFailedAfterVerify())
}
