// Package models holds the data-transfer objects exchanged with the
// doorbell backend, plus the locally persisted credential record.
package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// User is the server-side account as returned by login and signup.
type User struct {
	ID                  uuid.UUID          `json:"id"`
	Email               string             `json:"email"`
	Username            *string            `json:"username"`
	IsActive            bool               `json:"active"`
	IsEmailVerified     bool               `json:"email_verified"`
	NotificationEnabled bool               `json:"notification_enabled"`
	LastLoginAt         *string            `json:"last_login"`
	DeviceAccess        []UserDeviceAccess `json:"device_access"`
}

// UnmarshalJSON applies the server defaults for fields that are missing
// from the payload: active and notification_enabled default to true.
func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	v := plain{IsActive: true, NotificationEnabled: true}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v.DeviceAccess == nil {
		v.DeviceAccess = []UserDeviceAccess{}
	}
	*u = User(v)
	return nil
}

// Login returns the identifier a user signs in with: the username when set,
// the email otherwise.
func (u *User) Login() string {
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return u.Email
}

// UserDeviceAccess links a user to a device with a role.
type UserDeviceAccess struct {
	UserID            uuid.UUID  `json:"user_id"`
	DeviceID          uuid.UUID  `json:"device_id"`
	RoleCode          string     `json:"role"`
	RoleLabel         string     `json:"role_label"`
	AccessStatusCode  string     `json:"access_status"`
	AccessStatusLabel string     `json:"access_status_label"`
	UpdatedAt         string     `json:"updated_at"`
	UpdatedByUserID   *uuid.UUID `json:"updated_by"`
	UpdatedByUsername *string    `json:"updated_by_name"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest is the signup body. Username is optional.
type RegisterRequest struct {
	Username *string `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// PasswordResetRequest sets a new password for the account identified by
// Login after a RESET_PASSWORD OTP has been validated.
type PasswordResetRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
