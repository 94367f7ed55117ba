package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/doorbell/internal/client/client"
	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/session"
	"github.com/dmitrijs2005/doorbell/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPService_Send(t *testing.T) {
	api := &fakeAuthClient{SendResp: otpOK}
	svc := NewOTPService(api, session.New(), logging.Discard())

	err := svc.Send(context.Background(), nav.OTP{Email: "a@x.io", Purpose: models.OTPPurposeResetPassword})
	require.NoError(t, err)
	assert.Equal(t, models.OTPRequest{Email: "a@x.io", Purpose: models.OTPPurposeResetPassword}, api.LastSend)
}

func TestOTPService_Verify_Success(t *testing.T) {
	api := &fakeAuthClient{ValidateResp: otpOK}
	sess := session.New()
	svc := NewOTPService(api, sess, logging.Discard())

	require.NoError(t, svc.Verify(context.Background(), "a@x.io", "123456"))
	assert.Equal(t, models.OTPValidationRequest{Email: "a@x.io", OTP: "123456"}, api.LastValidate)
	assert.True(t, sess.Verified())
}

func TestOTPService_Verify_BadFormatSkipsNetwork(t *testing.T) {
	api := &fakeAuthClient{}
	svc := NewOTPService(api, session.New(), logging.Discard())

	err := svc.Verify(context.Background(), "a@x.io", "12ab")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, api.LastValidate.Email)
}

func TestOTPService_Verify_Rejections(t *testing.T) {
	statuses := []models.OTPStatus{
		models.OTPStatusInvalid,
		models.OTPStatusExpired,
		models.OTPStatusTooManyRequests,
		models.OTPStatusFailed,
	}

	seen := map[string]bool{}
	for _, st := range statuses {
		t.Run(string(st), func(t *testing.T) {
			api := &fakeAuthClient{ValidateResp: &models.OTPResponse{Status: st}}
			sess := session.New()
			svc := NewOTPService(api, sess, logging.Discard())

			err := svc.Verify(context.Background(), "a@x.io", "123456")
			assert.ErrorIs(t, err, ErrOTPRejected)
			assert.False(t, sess.Verified())

			var rejected *OTPRejectedError
			require.ErrorAs(t, err, &rejected)
			msg := rejected.UserMessage()
			assert.NotEmpty(t, msg)
			assert.False(t, seen[msg], "message for %s must be distinct", st)
			seen[msg] = true
		})
	}
}

func TestOTPService_Verify_Transport(t *testing.T) {
	api := &fakeAuthClient{ValidateErr: client.ErrUnavailable}
	svc := NewOTPService(api, session.New(), logging.Discard())

	err := svc.Verify(context.Background(), "a@x.io", "123456")
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}
