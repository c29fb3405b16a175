package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const traceHeaderKey = "x-trace-id"

var propagator = propagation.TraceContext{}

// InjectHeaders injects tracing context into outgoing HTTP headers.
func InjectHeaders(ctx context.Context, h http.Header) http.Header {
	if h == nil {
		h = http.Header{}
	}
	propagator.Inject(ctx, propagation.HeaderCarrier(h))
	if span := trace.SpanFromContext(ctx); span.SpanContext().HasTraceID() {
		h.Set(traceHeaderKey, span.SpanContext().TraceID().String())
	}
	return h
}

// Tracer returns a named tracer for dispatch components.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
