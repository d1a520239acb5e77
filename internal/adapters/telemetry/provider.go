// Package telemetry traces strategy attempts with OpenTelemetry. Spans stay
// in process: they are logged, never exported.
package telemetry

import (
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/reso/internal/core/ports"
)

// InstrumentationName names the tracer of the engine.
const InstrumentationName = "go.trai.ch/reso"

// NewProvider creates a tracer provider that reports finished spans to
// logger and registers it as the global provider.
func NewProvider(logger ports.Logger, extra ...sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	opts := []sdktrace.TracerProviderOption{sdktrace.WithSpanProcessor(NewLogBridge(logger))}
	for _, p := range extra {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}

// Tracer returns the engine tracer of tp.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	return tp.Tracer(InstrumentationName)
}
