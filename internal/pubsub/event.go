package pubsub

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"
)

type (
	// EventType identifies the type of event
	EventType string

	// Event is a message published by a broker.
	Event[T any] struct {
		Type    EventType
		Payload T
	}
)
