package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) availability(ctx context.Context, path, key, value string) (bool, error) {
	var resp models.AvailabilityResponse
	if err := c.do(ctx, http.MethodGet, path, url.Values{key: {value}}, nil, &resp); err != nil {
		return false, err
	}
	return resp.Available, nil
}

// CheckUsernameAvailability reports true when nobody uses username yet.
func (c *HTTPClient) CheckUsernameAvailability(ctx context.Context, username string) (bool, error) {
	return c.availability(ctx, "/api/auth/check-username", "username", username)
}

// CheckEmailAvailability reports true when nobody uses email yet.
func (c *HTTPClient) CheckEmailAvailability(ctx context.Context, email string) (bool, error) {
	return c.availability(ctx, "/api/auth/check-email", "email", email)
}

// CheckLoginExists reports true when an account with this username or email
// exists. The server reuses the "available" field for it.
func (c *HTTPClient) CheckLoginExists(ctx context.Context, login string) (bool, error) {
	return c.availability(ctx, "/api/auth/check-exist", "login", login)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, req models.PasswordResetRequest) (bool, error) {
	var resp models.AvailabilityResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", nil, req, &resp); err != nil {
		return false, err
	}
	return resp.Available, nil
}

func (c *HTTPClient) SendOTP(ctx context.Context, req models.OTPRequest) (*models.OTPResponse, error) {
	var resp models.OTPResponse
	if err := c.do(ctx, http.MethodPost, "/api/verify/send", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ValidateOTP(ctx context.Context, req models.OTPValidationRequest) (*models.OTPResponse, error) {
	var resp models.OTPResponse
	if err := c.do(ctx, http.MethodPost, "/api/verify/validate", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
