package providers

import (
	"context"

	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to school
// update events
type EventBus interface {
	// Publish publishes an event to all subscribers of a channel
	Publish(ctx context.Context, channel string, event *entities.SchoolEvent) error

	// Subscribe subscribes to events on a channel; the returned channel is
	// closed when ctx is done or the bus shuts down
	Subscribe(ctx context.Context, channel string) (<-chan *entities.SchoolEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// Event channel names.
const (
	// EventChannelSchoolUpdates carries every school change.
	EventChannelSchoolUpdates = "school:updates"

	// EventChannelSchoolPrefix prefixes per-school channels.
	EventChannelSchoolPrefix = "school:"
)

// GetSchoolChannel returns the channel name for a specific school
func GetSchoolChannel(schoolID string) string {
	return EventChannelSchoolPrefix + schoolID
}
