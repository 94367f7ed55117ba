package models

import "github.com/google/uuid"

// Event is a ring, motion or live-view occurrence on a device.
type Event struct {
	ID                   uuid.UUID  `json:"id"`
	DeviceID             uuid.UUID  `json:"device_id"`
	OccurredAt           string     `json:"occurred_at"`
	EventTypeCode        EventType  `json:"event_code"`
	EventTypeLabel       string     `json:"event_label"`
	ResponseTypeCode     string     `json:"response_code"`
	ResponseTypeLabel    string     `json:"response_label"`
	ResponseTimestamp    *string    `json:"response_timestamp"`
	ResponderUserID      *uuid.UUID `json:"responder_user_id"`
	ResponderDisplayName *string    `json:"responder_display_name"`
	StreamStatusCode     *string    `json:"stream_status_code"`
	StreamStatusLabel    *string    `json:"stream_status_label"`
	StreamStartedAt      *string    `json:"stream_started"`
	StreamEndedAt        *string    `json:"stream_ended"`
	DurationSeconds      *int       `json:"duration"`
}
