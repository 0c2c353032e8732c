package core

import (
	"time"
)

// LendingBookToUserFailedEventType is the event type identifier.
const LendingBookToUserFailedEventType = "LendingBookToUserFailed"

// LendingBookToUserFailed represents a rejected borrow attempt.
type LendingBookToUserFailed struct {
	BookID      BookID
	UserID      UserID
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildLendingBookToUserFailed creates a new LendingBookToUserFailed event.
func BuildLendingBookToUserFailed(
	bookID BookID,
	userID UserID,
	failureInfo string,
	occurredAt time.Time,
) LendingBookToUserFailed {
	return LendingBookToUserFailed{
		BookID:      bookID,
		UserID:      userID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LendingBookToUserFailed) IsEventType() string {
	return LendingBookToUserFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LendingBookToUserFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e LendingBookToUserFailed) IsErrorEvent() bool {
	return true
}
