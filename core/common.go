package core

import (
	"strconv"
	"time"
)

// BookID is the caller-assigned identifier of a book, unique within an inventory.
type BookID uint32

// UserID is the caller-assigned identifier of a user, unique within a registry.
type UserID uint32

// String returns the decimal form of the id, used for log and span attributes.
func (id BookID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// String returns the decimal form of the id, used for log and span attributes.
func (id UserID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
