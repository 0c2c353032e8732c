// Package core contains the domain model for the example:
// Book circulation in a small library.
//
// It defines the identifiers, the Book and User records, the error kinds every
// other package reports, and the domain events emitted by the borrowing workflow
// (BookLentToUser, BookReturnedByUser and their failure counterparts).
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer. It has no dependencies on the collections or on observability.
package core
