package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/library-circulation-go/observability"
)

// SpySpanContext is the SpanContext handed out by TracingCollectorSpy.
type SpySpanContext struct {
	mu         sync.Mutex
	name       string
	status     string
	attributes map[string]string
}

// SetStatus implements observability.SpanContext.
func (c *SpySpanContext) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = status
}

// AddAttribute implements observability.SpanContext.
func (c *SpySpanContext) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.attributes[key] = value
}

// SpySpanRecord represents a finished span.
type SpySpanRecord struct {
	Name            string
	StartAttributes map[string]string
	EndAttributes   map[string]string
	SpanAttributes  map[string]string
	Status          string
}

// TracingCollectorSpy captures span calls for testing.
type TracingCollectorSpy struct {
	mu      sync.Mutex
	started map[*SpySpanContext]map[string]string
	spans   []SpySpanRecord
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{
		started: make(map[*SpySpanContext]map[string]string),
	}
}

// StartSpan implements observability.TracingCollector.
func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, observability.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spanCtx := &SpySpanContext{name: name, attributes: make(map[string]string)}
	s.started[spanCtx] = maps.Clone(attrs)

	return ctx, spanCtx
}

// FinishSpan implements observability.TracingCollector.
func (s *TracingCollectorSpy) FinishSpan(spanCtx observability.SpanContext, status string, attrs map[string]string) {
	spySpanCtx, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	spySpanCtx.mu.Lock()
	spanAttributes := maps.Clone(spySpanCtx.attributes)
	spySpanCtx.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.spans = append(s.spans, SpySpanRecord{
		Name:            spySpanCtx.name,
		StartAttributes: s.started[spySpanCtx],
		EndAttributes:   maps.Clone(attrs),
		SpanAttributes:  spanAttributes,
		Status:          status,
	})
	delete(s.started, spySpanCtx)
}

// SpanRecords returns a copy of all finished spans.
func (s *TracingCollectorSpy) SpanRecords() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpySpanRecord(nil), s.spans...)
}

// OpenSpanCount returns the number of started but not yet finished spans.
func (s *TracingCollectorSpy) OpenSpanCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.started)
}

// HasSpanRecord checks if a finished span with the given name and status exists.
func (s *TracingCollectorSpy) HasSpanRecord(name, status string) bool {
	for _, record := range s.SpanRecords() {
		if record.Name == name && record.Status == status {
			return true
		}
	}

	return false
}

var _ observability.TracingCollector = (*TracingCollectorSpy)(nil)
