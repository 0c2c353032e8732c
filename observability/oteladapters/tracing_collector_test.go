package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/library-circulation-go/observability/oteladapters"
)

func Test_TracingCollector_StartAndFinishSpan(t *testing.T) {
	// arrange
	exporter, collector := givenTracingCollector(t)

	// act
	ctx, spanCtx := collector.StartSpan(context.Background(), "borrowing.borrow", map[string]string{
		"user_id": "1",
		"book_id": "7",
	})
	collector.FinishSpan(spanCtx, "success", map[string]string{"duration_ms": "0.42"})

	// assert
	assert.True(t, trace.SpanContextFromContext(ctx).IsValid(), "the returned context carries the span")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1, "Expected exactly one span")

	span := spans[0]
	assert.Equal(t, "borrowing.borrow", span.Name)
	assert.Equal(t, codes.Ok, span.Status.Code)
	assertSpanHasAttribute(t, span, "user_id", "1")
	assertSpanHasAttribute(t, span, "book_id", "7")
	assertSpanHasAttribute(t, span, "duration_ms", "0.42")
}

func Test_TracingCollector_StatusMapping(t *testing.T) {
	exporter, collector := givenTracingCollector(t)

	testCases := []struct {
		status              string
		expectedCode        codes.Code
		expectedDescription string
	}{
		{"success", codes.Ok, ""},
		{"rejected", codes.Ok, ""},
		{"error", codes.Error, "Operation failed"},
		{"canceled", codes.Error, "Operation cancelled"},
		{"timeout", codes.Error, "Operation timed out"},
		{"something_else", codes.Unset, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			exporter.Reset()

			_, spanCtx := collector.StartSpan(context.Background(), "test", nil)
			collector.FinishSpan(spanCtx, tc.status, nil)

			spans := exporter.GetSpans()
			require.Len(t, spans, 1, "Expected exactly one span")
			assert.Equal(t, tc.expectedCode, spans[0].Status.Code)
			assert.Equal(t, tc.expectedDescription, spans[0].Status.Description)
		})
	}
}

func Test_TracingCollector_RejectedSpanIsTagged(t *testing.T) {
	exporter, collector := givenTracingCollector(t)

	_, spanCtx := collector.StartSpan(context.Background(), "borrowing.return", nil)
	collector.FinishSpan(spanCtx, "rejected", nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assertSpanHasAttribute(t, spans[0], "status", "rejected")
}

func Test_TracingCollector_NilTracer(t *testing.T) {
	collector := oteladapters.NewTracingCollector(nil)
	parent := context.Background()

	ctx, spanCtx := collector.StartSpan(parent, "borrowing.borrow", nil)

	assert.Equal(t, parent, ctx)
	assert.Nil(t, spanCtx)
	assert.NotPanics(t, func() {
		collector.FinishSpan(spanCtx, "success", nil)
	})
}

func Test_TracingCollector_ForeignSpanContextIsIgnored(t *testing.T) {
	exporter, collector := givenTracingCollector(t)

	assert.NotPanics(t, func() {
		collector.FinishSpan(&foreignSpanContext{}, "success", map[string]string{"k": "v"})
	})
	assert.Empty(t, exporter.GetSpans())
}

func Test_OTelSpanContext_AddAttribute(t *testing.T) {
	exporter, collector := givenTracingCollector(t)

	_, spanCtx := collector.StartSpan(context.Background(), "borrowing.borrowed_books", nil)
	spanCtx.AddAttribute("book_count", "2")
	collector.FinishSpan(spanCtx, "success", nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assertSpanHasAttribute(t, spans[0], "book_count", "2")
}

type foreignSpanContext struct{}

func (f *foreignSpanContext) SetStatus(string)            {}
func (f *foreignSpanContext) AddAttribute(string, string) {}

func givenTracingCollector(t *testing.T) (*tracetest.InMemoryExporter, *oteladapters.TracingCollector) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	return exporter, oteladapters.NewTracingCollector(provider.Tracer("test"))
}

func assertSpanHasAttribute(t *testing.T, span tracetest.SpanStub, key, expectedValue string) {
	t.Helper()
	for _, attr := range span.Attributes {
		if attr.Key == attribute.Key(key) && attr.Value.AsString() == expectedValue {
			return
		}
	}
	t.Errorf("Span should have attribute %s=%s, got %v", key, expectedValue, span.Attributes)
}
