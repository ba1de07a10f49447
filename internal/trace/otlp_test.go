package trace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewExporter_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	e, err := NewExporter(context.Background())
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestExporter_NilIsNoop(t *testing.T) {
	var e *Exporter
	e.Export(Span{Name: "dashboard.event"})
	assert.NoError(t, e.Shutdown(context.Background()))
}

func TestExporter_ExportsChildOfSession(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	e := NewExporterWithProvider(context.Background(), tp)

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	e.Export(Span{
		Name:      "dashboard.event",
		StartTime: start,
		Duration:  3 * time.Millisecond,
		Attributes: map[string]string{
			AttrEvent:       "key",
			AttrKey:         "j",
			AttrPanelBefore: "Select",
			AttrPanelAfter:  "Select",
			AttrSelected:    "1",
			"custom":        "x",
		},
	})

	ended := sr.Ended()
	require.Len(t, ended, 1)
	got := ended[0]
	assert.Equal(t, "dashboard.event", got.Name())
	assert.Equal(t, start, got.StartTime())
	assert.Equal(t, start.Add(3*time.Millisecond), got.EndTime())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("theoryboard.event.kind", "key"),
		attribute.String("theoryboard.key", "j"),
		attribute.String("theoryboard.panel.before", "Select"),
		attribute.String("theoryboard.panel.after", "Select"),
		attribute.String("theoryboard.list.selected", "1"),
		attribute.String("theoryboard.custom", "x"),
	}, got.Attributes())

	require.NoError(t, e.Shutdown(context.Background()))
	ended = sr.Ended()
	require.Len(t, ended, 2)
	session := ended[1]
	assert.Equal(t, "dashboard.session", session.Name())
	assert.Equal(t, session.SpanContext().SpanID(), got.Parent().SpanID())
	assert.Equal(t, session.SpanContext().TraceID(), got.SpanContext().TraceID())
}
