// Package tracer is a small tracing abstraction used by the conversion service.
//
// The service depends only on the Tracer and Span interfaces here, so the codec
// layers never import OpenTelemetry directly.
//
// Implementations:
//   - NoopTracer: default, zero overhead
//   - OTelTracer: OpenTelemetry adapter
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks the span as failed.
	// End must be called exactly once.
	End(err error)

	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: int64(value)}
}

// Duration creates a duration attribute in microseconds; conversions finish well under a millisecond.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Microseconds()}
}

// Span names.
const (
	SpanConvert = "cci.convert"
	SpanBatch   = "cci.batch"
)

// Attribute keys.
const (
	AttrOp        = "cci.op"
	AttrBank      = "cci.bank"
	AttrErrorCode = "cci.error_code"
	AttrBatchID   = "cci.batch_id"
	AttrBatchSize = "cci.batch_size"
	AttrFailed    = "cci.failed"
	AttrElapsedUs = "cci.elapsed_us"
)

// Event names.
const (
	EventBatchItemFailed = "batch.item_failed"
)
