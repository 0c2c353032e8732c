package borrowing

import (
	"fmt"

	"github.com/AntonStoeckl/library-circulation-go/core"
)

// MaxBorrowedBooks is the maximum number of books a user may hold at the same time.
const MaxBorrowedBooks = 3

// decideBorrow applies the borrow rules to the lookups made inside the transaction.
// It is a pure function: the first violated rule wins and nothing has been mutated yet.
func decideBorrow(book core.Book, bookErr error, user core.User, userErr error) error {
	if bookErr != nil {
		return bookErr
	}

	if !book.IsAvailable {
		return fmt.Errorf("%w: book %s", core.ErrBookUnavailable, book.ID)
	}

	if userErr != nil {
		return userErr
	}

	if len(user.BorrowedBooks) >= MaxBorrowedBooks {
		return fmt.Errorf(
			"%w: user cannot borrow more than %d books at a time: user %s",
			core.ErrBorrowLimitExceeded,
			MaxBorrowedBooks,
			user.ID,
		)
	}

	return nil
}
