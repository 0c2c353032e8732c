package core

import "slices"

// User is a registered library user together with the books they currently hold.
type User struct {
	ID            UserID   `json:"id"`
	Name          string   `json:"name"`
	BorrowedBooks []BookID `json:"borrowed_books"`
}

// BuildUser creates a User with an empty borrowed list.
func BuildUser(id UserID, name string) User {
	return User{
		ID:            id,
		Name:          name,
		BorrowedBooks: []BookID{},
	}
}

// Clone returns a copy that shares no memory with u.
func (u User) Clone() User {
	u.BorrowedBooks = slices.Clone(u.BorrowedBooks)
	if u.BorrowedBooks == nil {
		u.BorrowedBooks = []BookID{}
	}

	return u
}

// HasBorrowed reports whether bookID is in the borrowed list.
func (u User) HasBorrowed(bookID BookID) bool {
	return slices.Contains(u.BorrowedBooks, bookID)
}
