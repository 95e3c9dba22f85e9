// Package promadapters provides a Prometheus adapter for the statestore
// metrics interface, for users who expose metrics via a Prometheus registry
// instead of OpenTelemetry.
package promadapters

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore"
)

// MetricsCollector implements statestore.MetricsCollector on top of a
// Prometheus registerer. Collectors are created on-demand per metric name:
//   - RecordDuration -> Histogram
//   - IncrementCounter -> Counter
//   - RecordValue -> Gauge
//
// Prometheus requires a fixed label set per metric, so the label keys of the
// first observation for a metric name define its label set; later
// observations must use the same keys.
type MetricsCollector struct {
	registerer prometheus.Registerer

	mu         sync.Mutex
	histograms map[string]*prometheus.HistogramVec
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
}

// NewMetricsCollector creates a new Prometheus metrics collector registering
// its collectors with the given registerer.
func NewMetricsCollector(registerer prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		registerer: registerer,
		histograms: make(map[string]*prometheus.HistogramVec),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}
}

// RecordDuration records a duration measurement in seconds using a Prometheus histogram.
func (m *MetricsCollector) RecordDuration(metricName string, duration time.Duration, labels map[string]string) {
	m.mu.Lock()
	histogram, exists := m.histograms[metricName]
	if !exists {
		histogram = promauto.With(m.registerer).NewHistogramVec(prometheus.HistogramOpts{
			Name: metricName,
			Help: "Store operation duration in seconds",
		}, labelKeys(labels))
		m.histograms[metricName] = histogram
	}
	m.mu.Unlock()

	histogram.With(labels).Observe(duration.Seconds())
}

// IncrementCounter increments a Prometheus counter.
func (m *MetricsCollector) IncrementCounter(metricName string, labels map[string]string) {
	m.mu.Lock()
	counter, exists := m.counters[metricName]
	if !exists {
		counter = promauto.With(m.registerer).NewCounterVec(prometheus.CounterOpts{
			Name: metricName,
			Help: "Store operation counter",
		}, labelKeys(labels))
		m.counters[metricName] = counter
	}
	m.mu.Unlock()

	counter.With(labels).Inc()
}

// RecordValue records a float64 value using a Prometheus gauge.
func (m *MetricsCollector) RecordValue(metricName string, value float64, labels map[string]string) {
	m.mu.Lock()
	gauge, exists := m.gauges[metricName]
	if !exists {
		gauge = promauto.With(m.registerer).NewGaugeVec(prometheus.GaugeOpts{
			Name: metricName,
			Help: "Store current value",
		}, labelKeys(labels))
		m.gauges[metricName] = gauge
	}
	m.mu.Unlock()

	gauge.With(labels).Set(value)
}

// labelKeys extracts the sorted label keys defining a metric's label set.
func labelKeys(labels map[string]string) []string {
	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Ensure MetricsCollector implements statestore.MetricsCollector.
var _ statestore.MetricsCollector = (*MetricsCollector)(nil)
