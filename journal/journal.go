package journal

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-circulation-go/core"
)

// ErrWritingJSONLinesFailed is returned when the journal cannot be exported.
var ErrWritingJSONLinesFailed = errors.New("writing journal json lines failed")

// Journal is an append-only, concurrency-safe log of circulation events.
type Journal struct {
	mu        sync.Mutex
	envelopes Envelopes
	newID     func() uuid.UUID
}

// Option defines a functional option for configuring a Journal.
type Option func(*Journal)

// WithIDGenerator replaces uuid.New as the event id source.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(j *Journal) {
		if newID != nil {
			j.newID = newID
		}
	}
}

// New creates an empty Journal.
func New(opts ...Option) *Journal {
	j := &Journal{newID: uuid.New}

	for _, opt := range opts {
		opt(j)
	}

	return j
}

// Record appends event and returns the id it was recorded under.
func (j *Journal) Record(event core.DomainEvent) uuid.UUID {
	j.mu.Lock()
	defer j.mu.Unlock()

	eventID := j.newID()
	j.envelopes = append(j.envelopes, BuildEnvelope(eventID, event))

	return eventID
}

// Envelopes returns all recorded envelopes in recording order.
func (j *Journal) Envelopes() Envelopes {
	j.mu.Lock()
	defer j.mu.Unlock()

	return append(Envelopes(nil), j.envelopes...)
}

// Events returns all recorded events in recording order.
func (j *Journal) Events() core.DomainEvents {
	envelopes := j.Envelopes()

	events := make(core.DomainEvents, 0, len(envelopes))
	for _, envelope := range envelopes {
		events = append(events, envelope.DomainEvent)
	}

	return events
}

// EventsForUser returns the events concerning userID in recording order.
func (j *Journal) EventsForUser(userID core.UserID) core.DomainEvents {
	events := make(core.DomainEvents, 0)

	for _, envelope := range j.Envelopes() {
		id, err := envelope.UserID()
		if err != nil || id != userID {
			continue
		}

		events = append(events, envelope.DomainEvent)
	}

	return events
}

// Len returns the number of recorded events.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return len(j.envelopes)
}

// WriteJSONLines writes one JSON object per recorded event to w.
func (j *Journal) WriteJSONLines(w io.Writer) error {
	stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(w)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	for _, envelope := range j.Envelopes() {
		stream.WriteVal(jsonLine{
			EventID:    envelope.EventID.String(),
			EventType:  envelope.DomainEvent.IsEventType(),
			IsError:    envelope.DomainEvent.IsErrorEvent(),
			OccurredAt: envelope.DomainEvent.HasOccurredAt().Format(time.RFC3339Nano),
			Payload:    envelope.DomainEvent,
		})
		stream.WriteRaw("\n")

		if stream.Error != nil {
			return errors.Join(ErrWritingJSONLinesFailed, stream.Error)
		}
	}

	if err := stream.Flush(); err != nil {
		return errors.Join(ErrWritingJSONLinesFailed, err)
	}

	return nil
}
