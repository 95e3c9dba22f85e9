package promadapters_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore/promadapters"
)

func Test_MetricsCollector_RegistersAndRecords(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := promadapters.NewMetricsCollector(registry)
	labels := map[string]string{"event_type": "BookAddedToCatalog", "changed": "true"}

	collector.RecordDuration("statestore_dispatch_duration_seconds", 5*time.Millisecond, labels)
	collector.IncrementCounter("statestore_dispatched_events_total", labels)
	collector.IncrementCounter("statestore_dispatched_events_total", labels)
	collector.RecordValue("statestore_journal_length", 2, nil)

	families, err := registry.Gather()
	require.NoError(t, err)

	familyNames := make(map[string]bool)
	for _, family := range families {
		familyNames[family.GetName()] = true
	}

	assert.True(t, familyNames["statestore_dispatch_duration_seconds"])
	assert.True(t, familyNames["statestore_dispatched_events_total"])
	assert.True(t, familyNames["statestore_journal_length"])

	for _, family := range families {
		if family.GetName() == "statestore_dispatched_events_total" {
			require.Len(t, family.GetMetric(), 1)
			assert.Equal(t, float64(2), family.GetMetric()[0].GetCounter().GetValue())
		}
	}
}
