package borrowing

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/core"
	"github.com/AntonStoeckl/library-circulation-go/inventory"
	"github.com/AntonStoeckl/library-circulation-go/observability"
	"github.com/AntonStoeckl/library-circulation-go/users"
)

// ErrRollbackFailed is joined into the returned error when a failed borrow could not restore availability.
var ErrRollbackFailed = errors.New("restoring book availability failed")

// Books is the part of the inventory the Service needs. *inventory.Inventory satisfies it.
type Books interface {
	Atomically(fn func(tx *inventory.Tx) error) error
}

// Users is the part of the user registry the Service needs. *users.Registry satisfies it.
type Users interface {
	Atomically(fn func(tx *users.Tx) error) error
}

// Service coordinates Borrow and Return across a Books and a Users collection.
// It is safe for concurrent use.
type Service struct {
	logger           observability.Logger
	contextualLogger observability.ContextualLogger
	metricsCollector observability.MetricsCollector
	tracingCollector observability.TracingCollector
	journal          EventRecorder
	now              func() time.Time
}

// NewService creates a Service configured by opts.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{now: time.Now}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Borrow lends bookID to userID.
//
// Errors, checked in this order: core.ErrBookNotFound, core.ErrBookUnavailable,
// core.ErrUserNotFound, core.ErrBorrowLimitExceeded. On any of them neither collection changes.
// A canceled or expired ctx is returned as ctx.Err() before any lock is taken.
func (s *Service) Borrow(
	ctx context.Context,
	books Books,
	registry Users,
	userID core.UserID,
	bookID core.BookID,
) error {
	op := s.startOperation(ctx, OperationBorrow, userID, &bookID)

	if err := ctx.Err(); err != nil {
		op.finish(err, -1)
		return err
	}

	borrowedCount := -1
	err := inTransaction(books, registry, func(btx *inventory.Tx, utx *users.Tx) error {
		book, bookErr := btx.Get(bookID)
		user, userErr := utx.Get(userID)

		if err := decideBorrow(book, bookErr, user, userErr); err != nil {
			return err
		}

		if err := btx.SetAvailability(bookID, false); err != nil {
			return err
		}

		if err := utx.Borrow(userID, bookID); err != nil {
			if rollbackErr := btx.SetAvailability(bookID, true); rollbackErr != nil {
				return errors.Join(err, ErrRollbackFailed, rollbackErr)
			}

			return err
		}

		borrowedCount = len(user.BorrowedBooks) + 1

		return nil
	})

	s.recordBorrow(userID, bookID, err)
	op.finish(err, borrowedCount)

	return err
}

// Return takes bookID back from userID.
//
// The user's borrowed list is changed first: core.ErrUserNotFound or core.ErrNotBorrowed leave
// both collections untouched. If the book has meanwhile been removed from the inventory,
// core.ErrBookNotFound is returned and the user-side removal stands.
// A canceled or expired ctx is returned as ctx.Err() before any lock is taken.
func (s *Service) Return(
	ctx context.Context,
	books Books,
	registry Users,
	userID core.UserID,
	bookID core.BookID,
) error {
	op := s.startOperation(ctx, OperationReturn, userID, &bookID)

	if err := ctx.Err(); err != nil {
		op.finish(err, -1)
		return err
	}

	borrowedCount := -1
	err := inTransaction(books, registry, func(btx *inventory.Tx, utx *users.Tx) error {
		if err := utx.ReturnBook(userID, bookID); err != nil {
			return err
		}

		if user, err := utx.Get(userID); err == nil {
			borrowedCount = len(user.BorrowedBooks)
		}

		return btx.SetAvailability(bookID, true)
	})

	s.recordReturn(userID, bookID, err)
	op.finish(err, borrowedCount)

	return err
}

// BorrowedBooks returns the books currently held by userID, in borrowing order.
// Ids no longer known to the inventory are skipped.
func (s *Service) BorrowedBooks(
	ctx context.Context,
	books Books,
	registry Users,
	userID core.UserID,
) ([]core.Book, error) {
	op := s.startOperation(ctx, OperationBorrowedBooks, userID, nil)

	if err := ctx.Err(); err != nil {
		op.finish(err, -1)
		return nil, err
	}

	var borrowed []core.Book
	err := inTransaction(books, registry, func(btx *inventory.Tx, utx *users.Tx) error {
		user, err := utx.Get(userID)
		if err != nil {
			return err
		}

		borrowed = make([]core.Book, 0, len(user.BorrowedBooks))
		for _, bookID := range user.BorrowedBooks {
			book, err := btx.Get(bookID)
			if errors.Is(err, core.ErrBookNotFound) {
				continue
			}

			if err != nil {
				return err
			}

			borrowed = append(borrowed, book)
		}

		return nil
	})

	op.finish(err, -1)

	if err != nil {
		return nil, err
	}

	return borrowed, nil
}

// inTransaction runs fn holding the inventory lock and then the registry lock.
// Every operation takes the two locks in this order.
func inTransaction(books Books, registry Users, fn func(btx *inventory.Tx, utx *users.Tx) error) error {
	return books.Atomically(func(btx *inventory.Tx) error {
		return registry.Atomically(func(utx *users.Tx) error {
			return fn(btx, utx)
		})
	})
}

func (s *Service) recordBorrow(userID core.UserID, bookID core.BookID, err error) {
	if s.journal == nil {
		return
	}

	switch ClassifyStatus(err) {
	case StatusSuccess:
		s.journal.Record(core.BuildBookLentToUser(bookID, userID, s.now()))
	case StatusRejected, StatusError:
		s.journal.Record(core.BuildLendingBookToUserFailed(bookID, userID, err.Error(), s.now()))
	}
}

func (s *Service) recordReturn(userID core.UserID, bookID core.BookID, err error) {
	if s.journal == nil {
		return
	}

	switch ClassifyStatus(err) {
	case StatusSuccess:
		s.journal.Record(core.BuildBookReturnedByUser(bookID, userID, s.now()))
	case StatusRejected, StatusError:
		s.journal.Record(core.BuildReturningBookFromUserFailed(bookID, userID, err.Error(), s.now()))
	}
}
