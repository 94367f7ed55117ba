package models

type OTPPurpose string

const (
	OTPPurposeResetPassword OTPPurpose = "RESET_PASSWORD"
	OTPPurposeVerifyEmail   OTPPurpose = "VERIFY_EMAIL"
)

type OTPStatus string

const (
	OTPStatusSuccess         OTPStatus = "SUCCESS"
	OTPStatusFailed          OTPStatus = "FAILED"
	OTPStatusInvalid         OTPStatus = "INVALID"
	OTPStatusExpired         OTPStatus = "EXPIRED"
	OTPStatusTooManyRequests OTPStatus = "TOO_MANY_REQUESTS"
)

type OTPRequest struct {
	Username *string    `json:"username"`
	Email    string     `json:"email"`
	Purpose  OTPPurpose `json:"purpose"`
}

type OTPValidationRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type OTPResponse struct {
	Status  OTPStatus `json:"status"`
	Message string    `json:"message"`
}
