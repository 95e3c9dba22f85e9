package statestore

import (
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")
var ErrInvalidMetadataJSON = errors.New("metadata json is not valid")

// RecordedEvents is an alias type for a slice of RecordedEvent
type RecordedEvents = []RecordedEvent

// RecordedEvent is a DTO (data transfer object) used by the Store to journal
// dispatched events and to replay them later.
//
// It is built on scalars to be completely agnostic of the implementation of
// Domain Events in the client code.
//
// While its properties are exported, it should only be constructed with the
// supplied factory methods:
//   - BuildRecordedEvent
//   - BuildRecordedEventWithEmptyMetadata
type RecordedEvent struct {
	EventType    string
	OccurredAt   time.Time
	PayloadJSON  []byte
	MetadataJSON []byte
}

// BuildRecordedEvent is a factory method for RecordedEvent.
//
// It populates the RecordedEvent with the given scalar input.
// Returns an error if payloadJSON or metadataJSON are not valid JSON.
func BuildRecordedEvent(
	eventType string,
	occurredAt time.Time,
	payloadJSON []byte,
	metadataJSON []byte,
) (RecordedEvent, error) {

	if !jsoniter.ConfigFastest.Valid(payloadJSON) {
		return RecordedEvent{}, ErrInvalidPayloadJSON
	}

	if !jsoniter.ConfigFastest.Valid(metadataJSON) {
		return RecordedEvent{}, ErrInvalidMetadataJSON
	}

	return RecordedEvent{
		EventType:    eventType,
		OccurredAt:   occurredAt,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// BuildRecordedEventWithEmptyMetadata is a factory method for RecordedEvent.
//
// It populates the RecordedEvent with the given scalar input and creates valid
// empty JSON for MetadataJSON.
// Returns an error if payloadJSON is not valid JSON.
func BuildRecordedEventWithEmptyMetadata(
	eventType string,
	occurredAt time.Time,
	payloadJSON []byte,
) (RecordedEvent, error) {

	return BuildRecordedEvent(eventType, occurredAt, payloadJSON, []byte("{}"))
}
