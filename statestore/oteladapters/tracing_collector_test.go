package oteladapters_test

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore/oteladapters"
)

func Test_TracingCollector_StartAndFinishSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	tracer := provider.Tracer("test")

	collector := oteladapters.NewTracingCollector(tracer)

	_, span := collector.StartSpan(context.Background(), "statestore.dispatch", map[string]string{
		"event_type": "BookAddedToCatalog",
	})

	span.AddAttribute("changed", "true")
	collector.FinishSpan(span, "ok", nil)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 exported span, got %d", len(spans))
	}

	if spans[0].Name != "statestore.dispatch" {
		t.Errorf("expected span name %q, got %q", "statestore.dispatch", spans[0].Name)
	}
}

func Test_TracingCollector_FinishSpan_IgnoresForeignSpanContext(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	tracer := provider.Tracer("test")

	collector := oteladapters.NewTracingCollector(tracer)

	// A nil SpanContext must not panic.
	collector.FinishSpan(nil, "ok", nil)

	if len(exporter.GetSpans()) != 0 {
		t.Fatalf("expected no exported spans")
	}
}
