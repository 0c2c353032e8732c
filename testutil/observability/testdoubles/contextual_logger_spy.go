package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/library-circulation-go/observability"
)

// ContextualLoggerSpy captures contextual logging calls for testing.
type ContextualLoggerSpy struct {
	mu      sync.Mutex
	records []SpyLogRecord
}

// SpyLogRecord represents a recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// Attr returns the value logged for key, or nil if the key was not logged.
func (r SpyLogRecord) Attr(key string) any {
	for i := 0; i+1 < len(r.Args); i += 2 {
		if r.Args[i] == key {
			return r.Args[i+1]
		}
	}

	return nil
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy instance.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

// DebugContext implements observability.ContextualLogger.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

// InfoContext implements observability.ContextualLogger.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

// WarnContext implements observability.ContextualLogger.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

// ErrorContext implements observability.ContextualLogger.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    append([]any(nil), args...),
		Context: ctx,
	})
}

// Records returns a copy of all records in call order.
func (s *ContextualLoggerSpy) Records() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.records...)
}

// RecordsAt returns the records logged at level.
func (s *ContextualLoggerSpy) RecordsAt(level string) []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matching []SpyLogRecord
	for _, record := range s.records {
		if record.Level == level {
			matching = append(matching, record)
		}
	}

	return matching
}

// HasLog checks if a record with the given level and message exists.
func (s *ContextualLoggerSpy) HasLog(level, message string) bool {
	for _, record := range s.RecordsAt(level) {
		if record.Message == message {
			return true
		}
	}

	return false
}

// Reset clears all recorded log calls.
func (s *ContextualLoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
}

var _ observability.ContextualLogger = (*ContextualLoggerSpy)(nil)
