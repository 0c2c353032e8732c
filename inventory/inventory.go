package inventory

import (
	"fmt"
	"slices"
	"sync"

	"github.com/AntonStoeckl/library-circulation-go/core"
)

// Inventory maps book ids to books and remembers insertion order for listing.
type Inventory struct {
	mu    sync.Mutex
	books map[core.BookID]core.Book
	order []core.BookID
}

// New creates an empty Inventory.
func New() *Inventory {
	return &Inventory{
		books: make(map[core.BookID]core.Book),
	}
}

// Add inserts a book. It fails with core.ErrDuplicateID if the id is already taken.
func (inv *Inventory) Add(book core.Book) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, exists := inv.books[book.ID]; exists {
		return fmt.Errorf("%w: book %s", core.ErrDuplicateID, book.ID)
	}

	inv.books[book.ID] = book
	inv.order = append(inv.order, book.ID)

	return nil
}

// Remove deletes a book and returns the removed record.
func (inv *Inventory) Remove(id core.BookID) (core.Book, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	book, exists := inv.books[id]
	if !exists {
		return core.Book{}, bookNotFound(id)
	}

	delete(inv.books, id)
	inv.order = slices.DeleteFunc(inv.order, func(candidate core.BookID) bool {
		return candidate == id
	})

	return book, nil
}

// Get returns a copy of the book with the given id.
func (inv *Inventory) Get(id core.BookID) (core.Book, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	return inv.tx().Get(id)
}

// SetAvailability overwrites the availability flag. Setting the current value again succeeds.
func (inv *Inventory) SetAvailability(id core.BookID, isAvailable bool) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	return inv.tx().SetAvailability(id, isAvailable)
}

// List returns all books in insertion order.
func (inv *Inventory) List() []core.Book {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	books := make([]core.Book, 0, len(inv.order))
	for _, id := range inv.order {
		books = append(books, inv.books[id])
	}

	return books
}

// Len returns the number of books.
func (inv *Inventory) Len() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	return len(inv.books)
}

// Atomically runs fn while holding the inventory lock and returns its error.
//
// The Tx must not be used after fn returns, and fn must not call the locking methods
// of the same Inventory (the lock is not reentrant).
func (inv *Inventory) Atomically(fn func(tx *Tx) error) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	return fn(inv.tx())
}

func (inv *Inventory) tx() *Tx {
	return &Tx{inv: inv}
}

// Tx gives lock-free access to an Inventory whose lock is already held.
type Tx struct {
	inv *Inventory
}

// Get returns a copy of the book with the given id.
func (tx *Tx) Get(id core.BookID) (core.Book, error) {
	book, exists := tx.inv.books[id]
	if !exists {
		return core.Book{}, bookNotFound(id)
	}

	return book, nil
}

// SetAvailability overwrites the availability flag of the book.
func (tx *Tx) SetAvailability(id core.BookID, isAvailable bool) error {
	book, exists := tx.inv.books[id]
	if !exists {
		return bookNotFound(id)
	}

	book.IsAvailable = isAvailable
	tx.inv.books[id] = book

	return nil
}

func bookNotFound(id core.BookID) error {
	return fmt.Errorf("%w: %s", core.ErrBookNotFound, id)
}
