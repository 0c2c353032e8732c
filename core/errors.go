package core

import (
	"errors"
	"fmt"
)

// Error kinds. Callers branch on them with errors.Is.
var (
	// ErrNotFound is the kind of every lookup failure on an unknown identifier.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned when an identifier is inserted a second time.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrBookUnavailable is returned when borrowing a book that is currently lent.
	ErrBookUnavailable = errors.New("book is temporarily not available")

	// ErrBorrowLimitExceeded is returned when a user already holds the maximum number of books.
	ErrBorrowLimitExceeded = errors.New("borrow limit exceeded")

	// ErrNotBorrowed is returned when returning a book that is not in the user's borrowed list.
	ErrNotBorrowed = errors.New("book is not borrowed by this user")
)

// Specific NotFound errors, so the borrowing workflow can tell which side was missing.
var (
	ErrBookNotFound = fmt.Errorf("book %w", ErrNotFound)
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
)
