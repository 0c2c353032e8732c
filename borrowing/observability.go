package borrowing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/core"
	"github.com/AntonStoeckl/library-circulation-go/observability"
)

const (
	// OperationDurationMetric tracks the duration of borrowing operations (OpenTelemetry-compatible).
	OperationDurationMetric = "borrowing_operation_duration_seconds"

	// OperationCallsMetric tracks total borrowing operation calls.
	OperationCallsMetric = "borrowing_operation_calls_total"

	// OperationRejectionsMetric tracks operations refused by a business rule.
	//
	// Labels:
	//   - operation: borrow, return or borrowed_books
	//   - reason: which rule refused the operation (e.g., "book_unavailable")
	OperationRejectionsMetric = "borrowing_operation_rejections_total"

	// UserBorrowedBooksMetric records how many books the user holds after a successful borrow or return.
	UserBorrowedBooksMetric = "borrowing_user_borrowed_books"

	// OperationBorrow identifies Service.Borrow in logs, metrics and spans.
	OperationBorrow = "borrow"

	// OperationReturn identifies Service.Return in logs, metrics and spans.
	OperationReturn = "return"

	// OperationBorrowedBooks identifies Service.BorrowedBooks in logs, metrics and spans.
	OperationBorrowedBooks = "borrowed_books"

	// StatusSuccess indicates the operation completed and changed state as requested.
	StatusSuccess = "success"

	// StatusRejected indicates a business rule refused the operation. Nothing was changed.
	StatusRejected = "rejected"

	// StatusError indicates an unexpected failure.
	StatusError = "error"

	// StatusCanceled indicates the operation was canceled due to context cancellation.
	StatusCanceled = "canceled"

	// StatusTimeout indicates the operation timed out due to context deadline exceeded.
	StatusTimeout = "timeout"

	// ReasonBookNotFound means the book id is unknown to the inventory.
	ReasonBookNotFound = "book_not_found"

	// ReasonUserNotFound means the user id is unknown to the registry.
	ReasonUserNotFound = "user_not_found"

	// ReasonBookUnavailable means the book is currently lent.
	ReasonBookUnavailable = "book_unavailable"

	// ReasonBorrowLimitExceeded means the user already holds MaxBorrowedBooks books.
	ReasonBorrowLimitExceeded = "borrow_limit_exceeded"

	// ReasonNotBorrowed means the book is not in the user's borrowed list.
	ReasonNotBorrowed = "not_borrowed"

	// LogMsgOperationStarted is logged when an operation begins.
	LogMsgOperationStarted = "borrowing operation started"

	// LogMsgOperationCompleted is logged when an operation succeeds.
	LogMsgOperationCompleted = "borrowing operation completed"

	// LogMsgOperationFailed is logged when an operation is rejected or fails.
	LogMsgOperationFailed = "borrowing operation failed"

	// LogAttrOperation identifies the operation in logs, metric labels and span attributes.
	LogAttrOperation = "operation"

	// LogAttrOperationID correlates all records of one operation.
	LogAttrOperationID = "operation_id"

	// LogAttrUserID identifies the user.
	LogAttrUserID = "user_id"

	// LogAttrBookID identifies the book.
	LogAttrBookID = "book_id"

	// LogAttrStatus indicates the operation status.
	LogAttrStatus = "status"

	// LogAttrReason indicates which business rule refused the operation.
	LogAttrReason = "reason"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrError contains error details.
	LogAttrError = "error"

	// SpanNameBorrow is the tracing span name for Service.Borrow.
	SpanNameBorrow = "borrowing.borrow"

	// SpanNameReturn is the tracing span name for Service.Return.
	SpanNameReturn = "borrowing.return"

	// SpanNameBorrowedBooks is the tracing span name for Service.BorrowedBooks.
	SpanNameBorrowedBooks = "borrowing.borrowed_books"
)

var spanNames = map[string]string{
	OperationBorrow:        SpanNameBorrow,
	OperationReturn:        SpanNameReturn,
	OperationBorrowedBooks: SpanNameBorrowedBooks,
}

// ClassifyStatus maps the outcome of an operation to one of the Status values.
func ClassifyStatus(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, context.Canceled):
		return StatusCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	case errors.Is(err, ErrRollbackFailed):
		return StatusError
	case RejectionReason(err) != "":
		return StatusRejected
	default:
		return StatusError
	}
}

// RejectionReason returns the Reason value for a business rule error, or "" for any other error.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, core.ErrBookNotFound):
		return ReasonBookNotFound
	case errors.Is(err, core.ErrUserNotFound):
		return ReasonUserNotFound
	case errors.Is(err, core.ErrBookUnavailable):
		return ReasonBookUnavailable
	case errors.Is(err, core.ErrBorrowLimitExceeded):
		return ReasonBorrowLimitExceeded
	case errors.Is(err, core.ErrNotBorrowed):
		return ReasonNotBorrowed
	default:
		return ""
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds with precision.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// observedOperation carries the observability state of one running operation.
type observedOperation struct {
	service *Service
	ctx     context.Context
	name    string
	attrs   []any
	start   time.Time
	span    observability.SpanContext
}

// startOperation logs the start of an operation and opens its span.
// bookID is nil for operations that do not concern a single book.
func (s *Service) startOperation(
	ctx context.Context,
	name string,
	userID core.UserID,
	bookID *core.BookID,
) *observedOperation {
	op := &observedOperation{
		service: s,
		name:    name,
		start:   time.Now(),
		attrs: []any{
			LogAttrOperation, name,
			LogAttrOperationID, uuid.New().String(),
			LogAttrUserID, userID.String(),
		},
	}

	if bookID != nil {
		op.attrs = append(op.attrs, LogAttrBookID, bookID.String())
	}

	op.ctx = ctx
	if s.tracingCollector != nil {
		op.ctx, op.span = s.tracingCollector.StartSpan(ctx, spanNames[name], stringAttrs(op.attrs))
	}

	op.logInfo(LogMsgOperationStarted)

	return op
}

// finish reports the outcome of the operation to the configured logger, metrics and tracing.
// borrowedCount is the size of the user's borrowed list after the operation, or -1 if unknown.
func (op *observedOperation) finish(err error, borrowedCount int) {
	duration := time.Since(op.start)
	status := ClassifyStatus(err)
	reason := RejectionReason(err)
	s := op.service

	outcome := []any{
		LogAttrStatus, status,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	switch status {
	case StatusSuccess:
		op.logInfo(LogMsgOperationCompleted, outcome...)
	case StatusRejected:
		op.logWarn(LogMsgOperationFailed, append(outcome, LogAttrReason, reason, LogAttrError, err.Error())...)
	default:
		op.logError(LogMsgOperationFailed, append(outcome, LogAttrError, err.Error())...)
	}

	labels := map[string]string{
		LogAttrOperation: op.name,
		LogAttrStatus:    status,
	}
	observability.RecordDuration(op.ctx, s.metricsCollector, OperationDurationMetric, duration, labels)
	observability.IncrementCounter(op.ctx, s.metricsCollector, OperationCallsMetric, labels)

	if status == StatusRejected {
		observability.IncrementCounter(op.ctx, s.metricsCollector, OperationRejectionsMetric, map[string]string{
			LogAttrOperation: op.name,
			LogAttrReason:    reason,
		})
	}

	if status == StatusSuccess && borrowedCount >= 0 {
		observability.RecordValue(op.ctx, s.metricsCollector, UserBorrowedBooksMetric, float64(borrowedCount), map[string]string{
			LogAttrOperation: op.name,
		})
	}

	if s.tracingCollector != nil && op.span != nil {
		spanAttrs := map[string]string{
			LogAttrStatus:     status,
			LogAttrDurationMS: fmt.Sprintf("%.2f", ToMilliseconds(duration)),
		}

		if reason != "" {
			spanAttrs[LogAttrReason] = reason
		}

		if err != nil {
			spanAttrs[LogAttrError] = err.Error()
		}

		s.tracingCollector.FinishSpan(op.span, status, spanAttrs)
	}
}

func (op *observedOperation) logInfo(msg string, extra ...any) {
	args := append(append([]any(nil), op.attrs...), extra...)

	if op.service.contextualLogger != nil {
		op.service.contextualLogger.InfoContext(op.ctx, msg, args...)
	} else if op.service.logger != nil {
		op.service.logger.Info(msg, args...)
	}
}

func (op *observedOperation) logWarn(msg string, extra ...any) {
	args := append(append([]any(nil), op.attrs...), extra...)

	if op.service.contextualLogger != nil {
		op.service.contextualLogger.WarnContext(op.ctx, msg, args...)
	} else if op.service.logger != nil {
		op.service.logger.Warn(msg, args...)
	}
}

func (op *observedOperation) logError(msg string, extra ...any) {
	args := append(append([]any(nil), op.attrs...), extra...)

	if op.service.contextualLogger != nil {
		op.service.contextualLogger.ErrorContext(op.ctx, msg, args...)
	} else if op.service.logger != nil {
		op.service.logger.Error(msg, args...)
	}
}

// stringAttrs converts alternating key/value log arguments into span attributes.
func stringAttrs(args []any) map[string]string {
	attrs := make(map[string]string, len(args)/2)

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}

		attrs[key] = fmt.Sprint(args[i+1])
	}

	return attrs
}
