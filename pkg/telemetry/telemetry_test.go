package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/lingohub/admind/pkg/config"
)

func TestInitDisabled(t *testing.T) {
	shutdown, err := Init(&config.TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Init with telemetry disabled failed: %v", err)
	}
	shutdown()
}

func TestTracerNeverNil(t *testing.T) {
	if Tracer() == nil {
		t.Error("Tracer should fall back to a no-op tracer")
	}
}

func TestStartSpanThreadsContext(t *testing.T) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider())

	shutdown, err := Init(&config.TelemetryConfig{Enabled: true, ServiceName: "admind-test"})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer shutdown()

	ctx, span := StartSpan(context.Background(), "test.operation")
	defer span.End()

	got := trace.SpanFromContext(ctx)
	if got != span {
		t.Error("StartSpan should store the span in the returned context")
	}
	if !span.SpanContext().IsValid() {
		t.Error("Expected a recording span after Init")
	}
}
