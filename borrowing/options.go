package borrowing

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/core"
	"github.com/AntonStoeckl/library-circulation-go/observability"
)

// ErrNilOption is returned when an option is given a nil dependency.
var ErrNilOption = errors.New("option value must not be nil")

// EventRecorder receives the domain events produced by Borrow and Return.
// *journal.Journal satisfies it.
type EventRecorder interface {
	Record(event core.DomainEvent) uuid.UUID
}

// Option defines a functional option for configuring a Service.
type Option func(*Service) error

// WithLogger sets a plain logger. It is used only when no contextual logger is configured.
func WithLogger(logger observability.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			return ErrNilOption
		}

		s.logger = logger

		return nil
	}
}

// WithContextualLogger sets a context-aware logger which is preferred over the plain logger.
func WithContextualLogger(logger observability.ContextualLogger) Option {
	return func(s *Service) error {
		if logger == nil {
			return ErrNilOption
		}

		s.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector.
// Collectors implementing observability.ContextualMetricsCollector receive the operation context.
func WithMetrics(collector observability.MetricsCollector) Option {
	return func(s *Service) error {
		if collector == nil {
			return ErrNilOption
		}

		s.metricsCollector = collector

		return nil
	}
}

// WithTracing sets the tracing collector. Every operation gets one span.
func WithTracing(collector observability.TracingCollector) Option {
	return func(s *Service) error {
		if collector == nil {
			return ErrNilOption
		}

		s.tracingCollector = collector

		return nil
	}
}

// WithJournal sets the recorder for circulation events.
// Events are recorded after both collection locks have been released.
func WithJournal(recorder EventRecorder) Option {
	return func(s *Service) error {
		if recorder == nil {
			return ErrNilOption
		}

		s.journal = recorder

		return nil
	}
}

// WithClock replaces time.Now as the source of event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) error {
		if now == nil {
			return ErrNilOption
		}

		s.now = now

		return nil
	}
}
