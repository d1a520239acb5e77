package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/reso/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor by logging finished spans at
// debug level, so `--verbose` shows how long each strategy took.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	outcome := "done"
	for _, kv := range s.Attributes() {
		if kv.Key == attribute.Key("outcome") {
			outcome = kv.Value.AsString()
		}
	}
	if s.Status().Code == codes.Error {
		outcome = "failed"
	}
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	b.logger.Debug(fmt.Sprintf("%s %s in %s", s.Name(), outcome, elapsed))
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(context.Context) error {
	return nil
}
