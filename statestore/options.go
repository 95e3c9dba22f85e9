package statestore

import (
	"errors"
	"time"
)

var ErrNilEventRecorderSupplied = errors.New("nil event recorder supplied")
var ErrNilClockSupplied = errors.New("nil clock supplied")

// Option defines a functional option for configuring a Store.
type Option func(*Store) error

// WithLogger sets the logger for the Store.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: per-dispatch timing and changed/unchanged outcome (development use)
// Info level: operational messages (production-safe)
// Error level: failures such as journal recording errors.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Store.
// The contextual logger will receive log messages with context information including
// automatic trace/span correlation when tracing is enabled, enabling unified observability.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(s *Store) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
// The metrics collector will receive performance and operational metrics including
// dispatch durations, dispatched event counts, and the journal length.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *Store) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Store.
// The tracing collector will receive distributed tracing information including
// span creation for dispatch operations, context propagation, and error tracking.
func WithTracing(collector TracingCollector) Option {
	return func(s *Store) error {
		s.tracingCollector = collector
		return nil
	}
}

// WithJournal enables the in-memory journal: every dispatched event is
// converted to a RecordedEvent by the given recorder and appended to the
// journal before the reducers run.
func WithJournal(record EventRecorder) Option {
	return func(s *Store) error {
		if record == nil {
			return ErrNilEventRecorderSupplied
		}

		s.record = record

		return nil
	}
}

// WithClock sets the clock used for snapshot timestamps.
// It exists for tests that need deterministic time.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) error {
		if clock == nil {
			return ErrNilClockSupplied
		}

		s.clock = clock

		return nil
	}
}
