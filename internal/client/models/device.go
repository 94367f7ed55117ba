package models

import "github.com/google/uuid"

type Device struct {
	ID                  uuid.UUID `json:"id"`
	DeviceIdentifier    string    `json:"device_id"`
	DisplayName         string    `json:"display_name"`
	LocationDescription *string   `json:"location"`
	ModelName           *string   `json:"model"`
	FirmwareVersion     *string   `json:"fw_ver"`
	Active              bool      `json:"active"`
	BatteryLevelPercent int       `json:"battery_level"`
	SignalStrengthDbm   *int      `json:"signal_strength"`
	LastOnlineAt        *string   `json:"last_online"`
}

type DeviceRegisterRequest struct {
	DeviceID    string  `json:"device_id"`
	DisplayName string  `json:"display_name"`
	Location    *string `json:"location"`
	Model       *string `json:"model"`
	FirmwareVer *string `json:"fw_ver"`
}

// DeviceUpdateRequest is a PATCH body; nil fields are left untouched.
type DeviceUpdateRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Model       *string `json:"model,omitempty"`
	FirmwareVer *string `json:"fw_ver,omitempty"`
}

type DeviceAccessRequest struct {
	UserID uuid.UUID      `json:"user_id"`
	Role   UserDeviceRole `json:"role"`
}
