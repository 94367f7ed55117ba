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
	"github.com/dmitrijs2005/doorbell/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPasswordService(api *fakeAuthClient, online bool) *PasswordService {
	otp := NewOTPService(api, session.New(), logging.Discard())
	return NewPasswordService(api, otp, fakeConn{Online: online}, logging.Discard())
}

func TestPasswordService_RequestReset(t *testing.T) {
	api := &fakeAuthClient{SendResp: otpOK}
	svc := newPasswordService(api, true)
	form := forms.NewEmailForm(time.Hour)
	defer form.Close()
	form.Email.SetText("a@x.io")

	challenge, err := svc.RequestReset(context.Background(), form)
	require.NoError(t, err)

	want := nav.OTP{
		Email:       "a@x.io",
		Purpose:     models.OTPPurposeResetPassword,
		WithOrigin:  true,
		Return:      nav.ResetPassword{Login: "a@x.io"},
		WipeHistory: true,
	}
	if diff := cmp.Diff(want, challenge); diff != "" {
		t.Fatalf("challenge mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, api.LastSend.Username)
	assert.Equal(t, models.OTPPurposeResetPassword, api.LastSend.Purpose)
}

func TestPasswordService_RequestReset_Offline(t *testing.T) {
	api := &fakeAuthClient{SendResp: otpOK}
	svc := newPasswordService(api, false)
	form := forms.NewEmailForm(time.Hour)
	defer form.Close()
	form.Email.SetText("a@x.io")

	_, err := svc.RequestReset(context.Background(), form)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
	assert.Zero(t, api.SendCalls)
}

func TestPasswordService_RequestReset_Invalid(t *testing.T) {
	svc := newPasswordService(&fakeAuthClient{}, true)
	form := forms.NewEmailForm(time.Hour)
	defer form.Close()
	form.Email.SetText("nope")

	_, err := svc.RequestReset(context.Background(), form)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPasswordService_Reset(t *testing.T) {
	api := &fakeAuthClient{ResetOK: true}
	svc := newPasswordService(api, true)
	form := forms.NewResetPasswordForm(time.Hour)
	defer form.Close()
	form.Password.SetText("123456")
	form.Confirm.SetText("123456")

	require.NoError(t, svc.Reset(context.Background(), "a@x.io", form))
	assert.Equal(t, models.PasswordResetRequest{Login: "a@x.io", Password: "123456"}, api.LastReset)
}

func TestPasswordService_Reset_Errors(t *testing.T) {
	form := forms.NewResetPasswordForm(time.Hour)
	defer form.Close()
	form.Password.SetText("123456")
	form.Confirm.SetText("123456")

	err := newPasswordService(&fakeAuthClient{ResetOK: false}, true).Reset(context.Background(), "a@x.io", form)
	assert.ErrorIs(t, err, ErrServer)

	err = newPasswordService(&fakeAuthClient{ResetErr: client.ErrUnavailable}, true).Reset(context.Background(), "a@x.io", form)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}
