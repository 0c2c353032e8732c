package journal

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/core"
)

// ErrUnknownEventType is returned when an envelope carries an event type the journal cannot decode.
var ErrUnknownEventType = errors.New("unknown event type")

// Envelopes is a slice of Envelope instances.
type Envelopes = []Envelope

// Envelope combines a domain event with the id it was recorded under.
type Envelope struct {
	EventID     uuid.UUID
	DomainEvent core.DomainEvent
}

// BuildEnvelope creates a new Envelope.
func BuildEnvelope(eventID uuid.UUID, domainEvent core.DomainEvent) Envelope {
	return Envelope{
		EventID:     eventID,
		DomainEvent: domainEvent,
	}
}

// UserID returns the user the wrapped event concerns.
func (e Envelope) UserID() (core.UserID, error) {
	switch event := e.DomainEvent.(type) {
	case core.BookLentToUser:
		return event.UserID, nil
	case core.BookReturnedByUser:
		return event.UserID, nil
	case core.LendingBookToUserFailed:
		return event.UserID, nil
	case core.ReturningBookFromUserFailed:
		return event.UserID, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnknownEventType, e.DomainEvent)
	}
}

// jsonLine is the serialized form of an Envelope.
type jsonLine struct {
	EventID    string           `json:"event_id"`
	EventType  string           `json:"event_type"`
	IsError    bool             `json:"is_error"`
	OccurredAt string           `json:"occurred_at"`
	Payload    core.DomainEvent `json:"payload"`
}
