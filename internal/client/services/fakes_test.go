package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
)

// fakeAuthClient implements client.AuthClient for service tests.
type fakeAuthClient struct {
	mu sync.Mutex

	LoginResp *models.LoginResponse
	LoginErr  error

	SignupResp *models.User
	SignupErr  error

	UsernameFree bool
	EmailFree    bool
	LoginExists  bool
	CheckErr     error

	ResetOK  bool
	ResetErr error

	SendResp     *models.OTPResponse
	SendErr      error
	ValidateResp *models.OTPResponse
	ValidateErr  error

	LastLogin    models.LoginRequest
	LastSignup   models.RegisterRequest
	LastReset    models.PasswordResetRequest
	LastSend     models.OTPRequest
	LastValidate models.OTPValidationRequest

	LoginCalls  int
	SignupCalls int
	SendCalls   int
}

func (f *fakeAuthClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastLogin = req
	return f.LoginResp, f.LoginErr
}

func (f *fakeAuthClient) Signup(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignupCalls++
	f.LastSignup = req
	return f.SignupResp, f.SignupErr
}

func (f *fakeAuthClient) CheckUsernameAvailability(ctx context.Context, username string) (bool, error) {
	return f.UsernameFree, f.CheckErr
}

func (f *fakeAuthClient) CheckEmailAvailability(ctx context.Context, email string) (bool, error) {
	return f.EmailFree, f.CheckErr
}

func (f *fakeAuthClient) CheckLoginExists(ctx context.Context, login string) (bool, error) {
	return f.LoginExists, f.CheckErr
}

func (f *fakeAuthClient) ResetPassword(ctx context.Context, req models.PasswordResetRequest) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastReset = req
	return f.ResetOK, f.ResetErr
}

func (f *fakeAuthClient) SendOTP(ctx context.Context, req models.OTPRequest) (*models.OTPResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SendCalls++
	f.LastSend = req
	return f.SendResp, f.SendErr
}

func (f *fakeAuthClient) ValidateOTP(ctx context.Context, req models.OTPValidationRequest) (*models.OTPResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastValidate = req
	return f.ValidateResp, f.ValidateErr
}

type fakeStore struct {
	Creds    models.Credentials
	WriteErr error
	Writes   int
	Cleared  bool
}

func (f *fakeStore) Read(ctx context.Context) models.Credentials { return f.Creds }

func (f *fakeStore) Write(ctx context.Context, c models.Credentials) error {
	f.Writes++
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.Creds = c
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.Cleared = true
	f.Creds = models.Credentials{}
	return nil
}

type fakeConn struct{ Online bool }

func (f fakeConn) IsOnline(ctx context.Context) bool { return f.Online }

var otpOK = &models.OTPResponse{Status: models.OTPStatusSuccess}

func strp(s string) *string { return &s }
