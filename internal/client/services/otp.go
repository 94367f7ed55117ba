package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/doorbell/internal/client/client"
	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/session"
	"github.com/dmitrijs2005/doorbell/internal/client/validation"
	"github.com/dmitrijs2005/doorbell/internal/logging"
)

// OTPService issues and checks the email one-time codes.
type OTPService struct {
	api     client.AuthClient
	session *session.Session
	log     logging.Logger
}

func NewOTPService(api client.AuthClient, sess *session.Session, log logging.Logger) *OTPService {
	return &OTPService{api: api, session: sess, log: log.With("component", "otp")}
}

// Send asks the server to mail a fresh code for the challenge.
func (s *OTPService) Send(ctx context.Context, challenge nav.OTP) error {
	resp, err := s.api.SendOTP(ctx, models.OTPRequest{
		Username: challenge.Username,
		Email:    challenge.Email,
		Purpose:  challenge.Purpose,
	})
	if err != nil {
		return fmt.Errorf("send otp: %w", classify(err))
	}
	if resp.Status != models.OTPStatusSuccess {
		s.log.Warn(ctx, "otp send rejected", "email", challenge.Email, "status", resp.Status)
		return &OTPRejectedError{Status: resp.Status, Message: resp.Message}
	}
	s.log.Info(ctx, "otp sent", "email", challenge.Email, "purpose", challenge.Purpose)
	return nil
}

// Verify checks code for email. On success the session is marked verified.
func (s *OTPService) Verify(ctx context.Context, email, code string) error {
	if !validation.OTPCode(code).OK() {
		return fmt.Errorf("%w: code must be %d digits", ErrValidation, validation.OTPCodeLength)
	}

	resp, err := s.api.ValidateOTP(ctx, models.OTPValidationRequest{Email: email, OTP: code})
	if err != nil {
		return fmt.Errorf("validate otp: %w", classify(err))
	}
	if resp.Status != models.OTPStatusSuccess {
		return &OTPRejectedError{Status: resp.Status, Message: resp.Message}
	}

	s.session.MarkVerified()
	s.log.Info(ctx, "otp verified", "email", email)
	return nil
}
