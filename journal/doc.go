// Package journal keeps an in-memory, append-only log of circulation domain events.
//
// Every recorded event is wrapped in an Envelope carrying a unique event id.
// The journal can be queried per user and exported as JSON lines.
package journal
