package oteladapters_test

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore/oteladapters"
)

func Test_MetricsCollector_RecordsInstruments(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("test")

	collector := oteladapters.NewMetricsCollector(meter)
	labels := map[string]string{"event_type": "BookAddedToCatalog"}

	collector.RecordDuration("statestore_dispatch_duration_seconds", 5*time.Millisecond, labels)
	collector.IncrementCounter("statestore_dispatched_events_total", labels)
	collector.IncrementCounter("statestore_dispatched_events_total", labels)
	collector.RecordValue("statestore_journal_length", 2, nil)

	var resourceMetrics metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &resourceMetrics); err != nil {
		t.Fatalf("collecting metrics failed: %v", err)
	}

	if len(resourceMetrics.ScopeMetrics) != 1 {
		t.Fatalf("expected 1 scope, got %d", len(resourceMetrics.ScopeMetrics))
	}

	metricNames := make(map[string]bool)
	for _, m := range resourceMetrics.ScopeMetrics[0].Metrics {
		metricNames[m.Name] = true
	}

	for _, expected := range []string{
		"statestore_dispatch_duration_seconds",
		"statestore_dispatched_events_total",
		"statestore_journal_length",
	} {
		if !metricNames[expected] {
			t.Errorf("expected metric %q to be recorded, got %v", expected, metricNames)
		}
	}
}
