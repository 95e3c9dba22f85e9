package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const logActionSnapshot = "snapshot"
const logAttrEventCount = "event_count"

var (
	// ErrInvalidSnapshotJSON is returned when snapshot JSON data is malformed or invalid.
	ErrInvalidSnapshotJSON = errors.New("snapshot json is not valid")

	// ErrMarshalingSnapshotFailed is returned when the composite state cannot be serialized.
	ErrMarshalingSnapshotFailed = errors.New("marshaling snapshot failed")
)

// Snapshot represents an exported composite state with metadata.
// It contains the serialized state along with the number of events processed
// since initialization, enabling consumers to reason about staleness.
type Snapshot struct {
	Data       json.RawMessage // Serialized composite state as JSON
	EventCount uint            // Number of events dispatched since initialization
	TakenAt    time.Time       // When this snapshot was taken
}

// Validate ensures the snapshot has valid data.
func (s Snapshot) Validate() error {
	if !jsoniter.ConfigFastest.Valid(s.Data) {
		return ErrInvalidSnapshotJSON
	}

	return nil
}

// BuildSnapshot creates a new Snapshot with validation.
func BuildSnapshot(data json.RawMessage, eventCount uint, takenAt time.Time) (Snapshot, error) {
	snapshot := Snapshot{
		Data:       data,
		EventCount: eventCount,
		TakenAt:    takenAt,
	}

	if err := snapshot.Validate(); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

// Snapshot exports the current composite state as a Snapshot.
// The state is serialized to JSON; field values must therefore be
// serializable, which holds for the plain data records reducers produce.
func (s *Store) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	state := s.state
	eventCount := s.dispatchCount
	s.mu.Unlock()

	data, marshalErr := jsoniter.ConfigFastest.Marshal(state)
	if marshalErr != nil {
		return Snapshot{}, errors.Join(ErrMarshalingSnapshotFailed, marshalErr)
	}

	snapshot, buildErr := BuildSnapshot(data, eventCount, s.clock())
	if buildErr != nil {
		return Snapshot{}, buildErr
	}

	s.logOperation(context.Background(), logActionSnapshot, logAttrEventCount, eventCount)

	return snapshot, nil
}
