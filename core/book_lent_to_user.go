package core

import (
	"time"
)

// BookLentToUserEventType is the event type identifier.
const BookLentToUserEventType = "BookLentToUser"

// BookLentToUser represents when a book is lent to a user.
type BookLentToUser struct {
	BookID     BookID
	UserID     UserID
	OccurredAt OccurredAtTS
}

// BuildBookLentToUser creates a new BookLentToUser event.
func BuildBookLentToUser(bookID BookID, userID UserID, occurredAt time.Time) BookLentToUser {
	return BookLentToUser{
		BookID:     bookID,
		UserID:     userID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookLentToUser) IsEventType() string {
	return BookLentToUserEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookLentToUser) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookLentToUser) IsErrorEvent() bool {
	return false
}
