package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/doorbell/internal/client/client"
	"github.com/dmitrijs2005/doorbell/internal/client/forms"
	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/netmon"
	"github.com/dmitrijs2005/doorbell/internal/logging"
)

// PasswordService implements the forgot-password flow.
type PasswordService struct {
	api  client.AuthClient
	otp  *OTPService
	conn netmon.Connectivity
	log  logging.Logger
}

func NewPasswordService(api client.AuthClient, otp *OTPService, conn netmon.Connectivity, log logging.Logger) *PasswordService {
	return &PasswordService{api: api, otp: otp, conn: conn, log: log.With("component", "password")}
}

// RequestReset mails a RESET_PASSWORD code. After verification the user
// lands on the reset screen with history wiped.
func (s *PasswordService) RequestReset(ctx context.Context, form *forms.EmailForm) (nav.OTP, error) {
	if !form.ValidateAll() {
		return nav.OTP{}, ErrValidation
	}
	if !s.conn.IsOnline(ctx) {
		return nav.OTP{}, ErrNetworkUnavailable
	}

	email := form.Email.Text()
	challenge := nav.OTP{
		Email:       email,
		Purpose:     models.OTPPurposeResetPassword,
		WithOrigin:  true,
		Return:      nav.ResetPassword{Login: email},
		WipeHistory: true,
	}
	if err := s.otp.Send(ctx, challenge); err != nil {
		return nav.OTP{}, err
	}
	return challenge, nil
}

// Reset stores the new password for login.
func (s *PasswordService) Reset(ctx context.Context, login string, form *forms.ResetPasswordForm) error {
	if !form.ValidateAll() {
		return ErrValidation
	}

	ok, err := s.api.ResetPassword(ctx, models.PasswordResetRequest{Login: login, Password: form.Password.Text()})
	if err != nil {
		return fmt.Errorf("reset password: %w", classify(err))
	}
	if !ok {
		return fmt.Errorf("%w: reset not accepted", ErrServer)
	}
	s.log.Info(ctx, "password reset", "login", login)
	return nil
}
