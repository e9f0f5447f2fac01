package tracer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pessoas/pkg/platform/tracer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingTracer(t *testing.T) (*tracer.OTelTracer, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("shutdown tracer provider: %v", err)
		}
	})
	return tracer.NewOTel(tracer.WithProvider(tp)), exporter
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestNoopTracer(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanPersonCreate, tracer.String("key", "value"))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(tracer.Int(tracer.AttrStackSize, 2))
	span.AddEvent(tracer.EventPersonStored)
	span.End(errors.New("ignored"))
}

func TestOTelTracer_RecordsSpan(t *testing.T) {
	tr, exporter := newRecordingTracer(t)

	_, span := tr.Start(context.Background(), tracer.SpanPersonCreate,
		tracer.Int(tracer.AttrStackSize, 3),
	)
	span.SetAttributes(tracer.String(tracer.AttrPersonID, "0190a4b2-0000-7000-8000-000000000001"))
	span.AddEvent(tracer.EventPersonStored, tracer.Bool("ok", true))
	span.End(nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, "person.create", s.Name)
	assert.Equal(t, codes.Unset, s.Status.Code)

	attrs := attrMap(s.Attributes)
	assert.Equal(t, int64(3), attrs[tracer.AttrStackSize].AsInt64())
	assert.Equal(t, "0190a4b2-0000-7000-8000-000000000001", attrs[tracer.AttrPersonID].AsString())

	require.Len(t, s.Events, 1)
	assert.Equal(t, tracer.EventPersonStored, s.Events[0].Name)
}

func TestOTelTracer_EndWithError(t *testing.T) {
	tr, exporter := newRecordingTracer(t)

	_, span := tr.Start(context.Background(), tracer.SpanPersonFind)
	span.End(errors.New("person not found"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "person not found", spans[0].Status.Description)
}

func TestOTelTracer_NestedSpansShareTrace(t *testing.T) {
	tr, exporter := newRecordingTracer(t)

	ctx, parent := tr.Start(context.Background(), tracer.SpanPersonCreate)
	_, child := tr.Start(ctx, "person.store.insert")
	child.End(nil)
	parent.End(nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext.TraceID(), spans[0].SpanContext.TraceID())
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
}

func TestAttributeConstructors(t *testing.T) {
	assert.Equal(t, tracer.Attribute{Key: "k", Value: "v"}, tracer.String("k", "v"))
	assert.Equal(t, tracer.Attribute{Key: "k", Value: true}, tracer.Bool("k", true))
	assert.Equal(t, tracer.Attribute{Key: "k", Value: 7}, tracer.Int("k", 7))
	assert.Equal(t, tracer.Attribute{Key: "k", Value: int64(7)}, tracer.Int64("k", 7))
	assert.Equal(t, int64(150), tracer.Duration("latency", 150*time.Millisecond).Value)
}
