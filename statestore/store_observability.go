package statestore

import (
	"context"
	"math"
	"time"
)

// logDispatch logs the outcome of a dispatch at debug level if a logger is configured.
func (s *Store) logDispatch(ctx context.Context, eventType string, changed bool, duration time.Duration) {
	args := []any{
		logAttrEventType, eventType,
		logAttrChanged, changed,
		logAttrDurationMS, toMilliseconds(duration),
	}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, logMsgEventDispatched, args...)
		return
	}

	if s.logger != nil {
		s.logger.Debug(logMsgEventDispatched, args...)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (s *Store) logOperation(ctx context.Context, action string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgStoreOperation+action, args...)
		return
	}

	if s.logger != nil {
		s.logger.Info(logMsgStoreOperation+action, args...)
	}
}

// logError logs error information at the error level if a logger is configured.
func (s *Store) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, message, allArgs...)
		return
	}

	if s.logger != nil {
		s.logger.Error(message, allArgs...)
	}
}

// recordDispatchMetrics records dispatch metrics if the metrics collector is configured.
func (s *Store) recordDispatchMetrics(
	ctx context.Context,
	eventType string,
	changed bool,
	duration time.Duration,
	journalLength int,
) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		logAttrEventType: eventType,
		logAttrChanged:   boolString(changed),
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricDispatchDuration, duration, labels)
		contextualCollector.IncrementCounterContext(ctx, metricDispatchedEventsTotal, labels)
		contextualCollector.RecordValueContext(ctx, metricJournalLength, float64(journalLength), nil)

		return
	}

	s.metricsCollector.RecordDuration(metricDispatchDuration, duration, labels)
	s.metricsCollector.IncrementCounter(metricDispatchedEventsTotal, labels)
	s.metricsCollector.RecordValue(metricJournalLength, float64(journalLength), nil)
}

// startSpan starts a tracing span if the tracing collector is configured.
func (s *Store) startSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext) {
	if s.tracingCollector == nil {
		return ctx, nil
	}

	return s.tracingCollector.StartSpan(ctx, name, attrs)
}

// finishSpan finishes a tracing span if one was started.
func (s *Store) finishSpan(span SpanContext, status string, attrs map[string]string) {
	if s.tracingCollector == nil || span == nil {
		return
	}

	s.tracingCollector.FinishSpan(span, status, attrs)
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
