package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
)

// PackageAttribute is the span attribute naming the package a span belongs to.
const PackageAttribute = domain.PackageSpanAttribute

var _ sdktrace.SpanProcessor = (*LogBridge)(nil)

// LogBridge implements sdktrace.SpanProcessor and reports finished package
// spans to the logger at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	pkg, ok := packageOf(s.Attributes())
	if !ok {
		return
	}

	d := s.EndTime().Sub(s.StartTime())
	if s.Status().Code == codes.Error {
		b.logger.Debug(fmt.Sprintf("%s %s failed after %s: %s", s.Name(), pkg, d, s.Status().Description))
		return
	}
	b.logger.Debug(fmt.Sprintf("%s %s took %s", s.Name(), pkg, d))
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

func packageOf(attrs []attribute.KeyValue) (string, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == PackageAttribute {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}
