package entities

import (
	"time"

	"github.com/google/uuid"
)

// SchoolEventType represents the type of school update event
type SchoolEventType string

const (
	SchoolEventTypeCreated       SchoolEventType = "created"
	SchoolEventTypeUpdated       SchoolEventType = "updated"
	SchoolEventTypeDeleted       SchoolEventType = "deleted"
	SchoolEventTypeRatingsUpdate SchoolEventType = "ratings_update"
)

// SchoolEvent is published on the event bus whenever directory data for a
// school changes, so downstream consumers (search index, caches) can react.
type SchoolEvent struct {
	ID        string          `json:"id"`
	SchoolID  string          `json:"school_id"`
	EventType SchoolEventType `json:"event_type"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewSchoolEvent creates a new school event with a generated id.
func NewSchoolEvent(schoolID string, eventType SchoolEventType) *SchoolEvent {
	return &SchoolEvent{
		ID:        uuid.NewString(),
		SchoolID:  schoolID,
		EventType: eventType,
		Timestamp: time.Now(),
	}
}
