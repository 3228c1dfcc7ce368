package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpanLifecycle(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	assert.NoError(t, InitWithExporter("drainly-test", "0.0.1", exporter))

	ctx, span := StartSpan(context.Background(), "test.Run")
	assert.NotNil(t, ctx)
	span.WithAttributes(map[string]string{"key": "jobs"})
	EndSpan(span, nil)

	spans := exporter.GetSpans()
	if assert.Len(t, spans, 1) {
		assert.Equal(t, "test.Run", spans[0].Name)
	}
}

func TestNilSpanIsSafe(t *testing.T) {
	var span *Span
	span.WithAttributes(map[string]string{"k": "v"})
	span.SetStatus(assert.AnError)
	EndSpan(nil, assert.AnError)
}
