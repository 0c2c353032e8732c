package core

import (
	"time"
)

// ReturningBookFromUserFailedEventType is the event type identifier.
const ReturningBookFromUserFailedEventType = "ReturningBookFromUserFailed"

// ReturningBookFromUserFailed represents a rejected return attempt.
type ReturningBookFromUserFailed struct {
	BookID      BookID
	UserID      UserID
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildReturningBookFromUserFailed creates a new ReturningBookFromUserFailed event.
func BuildReturningBookFromUserFailed(
	bookID BookID,
	userID UserID,
	failureInfo string,
	occurredAt time.Time,
) ReturningBookFromUserFailed {
	return ReturningBookFromUserFailed{
		BookID:      bookID,
		UserID:      userID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ReturningBookFromUserFailed) IsEventType() string {
	return ReturningBookFromUserFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningBookFromUserFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e ReturningBookFromUserFailed) IsErrorEvent() bool {
	return true
}
