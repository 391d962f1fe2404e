package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventEventCreated   EventType = "event_created"
	EventEventUpdated   EventType = "event_updated"
	EventEventDeleted   EventType = "event_deleted"
	EventClassCreated   EventType = "class_created"
	EventClassUpdated   EventType = "class_updated"
	EventClassDeleted   EventType = "class_deleted"
)

// AllTypes lists every event type in publication order of the lifecycle.
var AllTypes = []EventType{
	EventUserRegistered,
	EventEventCreated,
	EventEventUpdated,
	EventEventDeleted,
	EventClassCreated,
	EventClassUpdated,
	EventClassDeleted,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   int64       `json:"actor_id"`
	RecordID  int64       `json:"record_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// New stamps an event with a fresh id.
func New(eventType EventType, actorID, recordID int64, at time.Time, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		RecordID:  recordID,
		Timestamp: at,
		Payload:   payload,
	}
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email            string `json:"email"`
	BillingRequested bool   `json:"billing_requested"`
}

// RecordChangedPayload payload for event and class mutations.
type RecordChangedPayload struct {
	Title     string `json:"title"`
	UpdatedBy string `json:"updated_by"`
}
