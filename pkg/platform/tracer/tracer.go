// Package tracer provides a lightweight tracing abstraction for the person registry.
//
// Callers depend on the Tracer and Span interfaces defined here rather than on
// OpenTelemetry directly. Two implementations exist:
//   - NoopTracer: for tests and for deployments with tracing disabled
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording err as the span status when non-nil.
	// End must be called exactly once, typically via defer.
	End(err error)

	SetAttributes(attrs ...Attribute)

	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	// The returned context carries the span and should be passed to child operations.
	//
	//   ctx, span := t.Start(ctx, tracer.SpanPersonCreate)
	//   defer func() { span.End(err) }()
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
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names used by the person registry.
const (
	SpanPersonCreate = "person.create"
	SpanPersonFind   = "person.find"
	SpanPersonCount  = "person.count"
	SpanPersonSearch = "person.search"
)

// Attribute keys used by the person registry. Person field values are never
// recorded; only identifiers and sizes.
const (
	AttrPersonID      = "person.id"
	AttrStackSize     = "person.stack_size"
	AttrRegistrySize  = "registry.size"
	AttrSearchTermLen = "search.term_length"
	AttrResultCount   = "search.result_count"
)

// Event names used by the person registry.
const (
	EventPersonStored = "person.stored"
)
