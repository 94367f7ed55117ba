package client

import (
	"context"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/google/uuid"
)

// AuthClient covers the public endpoints used before a token exists.
type AuthClient interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Signup(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	CheckUsernameAvailability(ctx context.Context, username string) (bool, error)
	CheckEmailAvailability(ctx context.Context, email string) (bool, error)
	CheckLoginExists(ctx context.Context, login string) (bool, error)
	ResetPassword(ctx context.Context, req models.PasswordResetRequest) (bool, error)
	SendOTP(ctx context.Context, req models.OTPRequest) (*models.OTPResponse, error)
	ValidateOTP(ctx context.Context, req models.OTPValidationRequest) (*models.OTPResponse, error)
}

// APIClient covers the authenticated endpoints.
type APIClient interface {
	GetCurrentUser(ctx context.Context) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUserDevices(ctx context.Context, id uuid.UUID) ([]models.UserDeviceAccess, error)

	ListDevices(ctx context.Context) ([]models.Device, error)
	ListActiveDevices(ctx context.Context) ([]models.Device, error)
	GetDevice(ctx context.Context, id uuid.UUID) (*models.Device, error)
	CreateDevice(ctx context.Context, req models.DeviceRegisterRequest) (*models.Device, error)
	UpdateDevice(ctx context.Context, id uuid.UUID, req models.DeviceUpdateRequest) (*models.Device, error)
	DeleteDevice(ctx context.Context, id uuid.UUID) error
	ListDeviceAccess(ctx context.Context, id uuid.UUID) ([]models.UserDeviceAccess, error)
	GrantDeviceAccess(ctx context.Context, id uuid.UUID, req models.DeviceAccessRequest) (*models.UserDeviceAccess, error)

	ListEvents(ctx context.Context) ([]models.Event, error)
	ListEventsByDevice(ctx context.Context, deviceID uuid.UUID) ([]models.Event, error)
	ListRecentEvents(ctx context.Context, limit int) ([]models.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
}

// Client is the full backend surface plus a reachability probe.
type Client interface {
	AuthClient
	APIClient
	Ping(ctx context.Context) error
}
