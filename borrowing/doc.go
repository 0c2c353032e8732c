// Package borrowing coordinates lending and returning books between an inventory and a user registry.
//
// The Service holds no domain state. Both collections are passed into every call, and each
// Borrow or Return runs as one transaction holding the inventory lock and then the registry lock.
// Either both collections change or neither does.
//
// Business rules for Borrow, checked in this order before anything is mutated:
//   - the book must exist
//   - the book must be available
//   - the user must exist
//   - the user must hold fewer than MaxBorrowedBooks books
//
// Return removes the book from the user's borrowed list first and only then marks the book available.
//
// Logging, metrics, tracing and the event journal are optional and configured with Option values.
package borrowing
