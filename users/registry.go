package users

import (
	"fmt"
	"slices"
	"sync"

	"github.com/AntonStoeckl/library-circulation-go/core"
)

// Registry maps user ids to users.
type Registry struct {
	mu    sync.Mutex
	users map[core.UserID]core.User
	order []core.UserID
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		users: make(map[core.UserID]core.User),
	}
}

// Register inserts a user. It fails with core.ErrDuplicateID if the id is already taken.
func (r *Registry) Register(user core.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return fmt.Errorf("%w: user %s", core.ErrDuplicateID, user.ID)
	}

	r.users[user.ID] = user.Clone()
	r.order = append(r.order, user.ID)

	return nil
}

// Get returns a copy of the user with the given id.
func (r *Registry) Get(id core.UserID) (core.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tx().Get(id)
}

// Borrow appends bookID to the user's borrowed list.
func (r *Registry) Borrow(userID core.UserID, bookID core.BookID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tx().Borrow(userID, bookID)
}

// ReturnBook removes bookID from the user's borrowed list.
func (r *Registry) ReturnBook(userID core.UserID, bookID core.BookID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tx().ReturnBook(userID, bookID)
}

// List returns copies of all users in registration order.
func (r *Registry) List() []core.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]core.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id].Clone())
	}

	return users
}

// Atomically runs fn while holding the registry lock and returns its error.
//
// The Tx must not be used after fn returns, and fn must not call the locking methods
// of the same Registry.
func (r *Registry) Atomically(fn func(tx *Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return fn(r.tx())
}

func (r *Registry) tx() *Tx {
	return &Tx{registry: r}
}

// Tx gives lock-free access to a Registry whose lock is already held.
type Tx struct {
	registry *Registry
}

// Get returns a copy of the user with the given id.
func (tx *Tx) Get(id core.UserID) (core.User, error) {
	user, exists := tx.registry.users[id]
	if !exists {
		return core.User{}, userNotFound(id)
	}

	return user.Clone(), nil
}

// Borrow appends bookID to the user's borrowed list.
func (tx *Tx) Borrow(userID core.UserID, bookID core.BookID) error {
	user, exists := tx.registry.users[userID]
	if !exists {
		return userNotFound(userID)
	}

	user.BorrowedBooks = append(user.BorrowedBooks, bookID)
	tx.registry.users[userID] = user

	return nil
}

// ReturnBook removes the first occurrence of bookID from the user's borrowed list.
// It fails with core.ErrNotBorrowed if the list does not contain it.
func (tx *Tx) ReturnBook(userID core.UserID, bookID core.BookID) error {
	user, exists := tx.registry.users[userID]
	if !exists {
		return userNotFound(userID)
	}

	pos := slices.Index(user.BorrowedBooks, bookID)
	if pos < 0 {
		return fmt.Errorf("%w: user %s, book %s", core.ErrNotBorrowed, userID, bookID)
	}

	user.BorrowedBooks = slices.Delete(user.BorrowedBooks, pos, pos+1)
	tx.registry.users[userID] = user

	return nil
}

func userNotFound(id core.UserID) error {
	return fmt.Errorf("%w: %s", core.ErrUserNotFound, id)
}
