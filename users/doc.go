// Package users owns the registry of library users and the list of books each user holds.
//
// The registry does not enforce the borrow cap and does not know about availability,
// the borrowing package coordinates both. A Registry is safe for concurrent use; see
// Atomically for multi-step work under one lock.
package users
