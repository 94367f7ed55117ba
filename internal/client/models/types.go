package models

type DeviceAccess string

const (
	DeviceAccessGranted DeviceAccess = "GRANTED"
	DeviceAccessRevoked DeviceAccess = "REVOKED"
	DeviceAccessExpired DeviceAccess = "EXPIRED"
)

type EventType string

const (
	EventTypeDoorbellRing   EventType = "DOORBELL_RING"
	EventTypeMotionDetected EventType = "MOTION_DETECTED"
	EventTypeLiveView       EventType = "LIVE_VIEW"
)

type ResponseType string

const (
	ResponseTypeAnswered ResponseType = "ANSWERED"
	ResponseTypeMissed   ResponseType = "MISSED"
	ResponseTypeDeclined ResponseType = "DECLINED"
	ResponseTypePending  ResponseType = "PENDING"
)

type StreamStatus string

const (
	StreamStatusStreaming  StreamStatus = "STREAMING"
	StreamStatusProcessing StreamStatus = "PROCESSING"
	StreamStatusCompleted  StreamStatus = "COMPLETED"
	StreamStatusFailed     StreamStatus = "FAILED"
)

type UserDeviceRole string

const (
	UserDeviceRoleOwner  UserDeviceRole = "OWNER"
	UserDeviceRoleMember UserDeviceRole = "MEMBER"
)
