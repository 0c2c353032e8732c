// Package inventory owns the set of books of the library.
//
// An Inventory is safe for concurrent use. Every exported method takes the inventory lock for
// its own duration. Multi-step work that must see a consistent inventory (the borrowing
// workflow) runs inside Atomically, which hands out a Tx bound to the held lock.
package inventory
