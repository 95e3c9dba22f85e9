package oteladapters_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore/oteladapters"
)

type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	h.records = append(h.records, record)
	return nil
}

func (h *recordingHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *recordingHandler) WithGroup(_ string) slog.Handler {
	return h
}

func Test_SlogBridgeLogger_WithHandler_ForwardsAllLevels(t *testing.T) {
	handler := &recordingHandler{}
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	logger.DebugContext(ctx, "debug msg", "event_type", "SomethingHappened")
	logger.InfoContext(ctx, "info msg")
	logger.WarnContext(ctx, "warn msg")
	logger.ErrorContext(ctx, "error msg")

	if len(handler.records) != 4 {
		t.Fatalf("expected 4 log records, got %d", len(handler.records))
	}

	expectedLevels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	for i, record := range handler.records {
		if record.Level != expectedLevels[i] {
			t.Errorf("record %d: expected level %v, got %v", i, expectedLevels[i], record.Level)
		}
	}

	if handler.records[0].Message != "debug msg" {
		t.Errorf("expected message %q, got %q", "debug msg", handler.records[0].Message)
	}
}
