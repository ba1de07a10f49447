package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "theoryboard"

// Exporter exports dashboard spans to an OTLP endpoint. A nil *Exporter is
// valid and drops everything, so callers never need to check whether
// tracing is configured.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	session  oteltrace.Span
	ctx      context.Context // carries the session span
}

// NewExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func NewExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return NewExporterWithProvider(ctx, provider), nil
}

// NewExporterWithProvider wraps an existing provider and opens the session
// span every exported event is parented to.
func NewExporterWithProvider(ctx context.Context, provider *sdktrace.TracerProvider) *Exporter {
	tracer := provider.Tracer("theoryboard/ui")
	sessionCtx, session := tracer.Start(ctx, "dashboard.session")
	return &Exporter{
		provider: provider,
		tracer:   tracer,
		session:  session,
		ctx:      sessionCtx,
	}
}

// Export records a completed span as a child of the session span, keeping
// its recorded start time and duration.
func (e *Exporter) Export(span Span) {
	if e == nil {
		return
	}
	_, otlpSpan := e.tracer.Start(
		e.ctx,
		span.Name,
		oteltrace.WithTimestamp(span.StartTime),
	)

	attrs := make([]attribute.KeyValue, 0, len(span.Attributes))
	for k, v := range span.Attributes {
		attrs = append(attrs, attribute.String(attrKey(k), v))
	}
	otlpSpan.SetAttributes(attrs...)
	otlpSpan.End(oteltrace.WithTimestamp(span.StartTime.Add(span.Duration)))
}

// attrKey maps span attribute names into the theoryboard.* namespace.
func attrKey(k string) string {
	switch k {
	case AttrEvent:
		return "theoryboard.event.kind"
	case AttrKey:
		return "theoryboard.key"
	case AttrPanelBefore:
		return "theoryboard.panel.before"
	case AttrPanelAfter:
		return "theoryboard.panel.after"
	case AttrSelected:
		return "theoryboard.list.selected"
	case AttrOffset:
		return "theoryboard.list.offset"
	default:
		return "theoryboard." + k
	}
}

// Shutdown ends the session span, then flushes and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	e.session.End()
	return e.provider.Shutdown(ctx)
}
