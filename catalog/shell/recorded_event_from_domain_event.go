package shell

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/core"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore"
)

// ErrMappingToRecordedEventFailedForDomainEvent is returned when domain event serialization fails
var ErrMappingToRecordedEventFailedForDomainEvent = errors.New("mapping to recorded event failed for domain event")

// ErrMappingToRecordedEventFailedForMetadata is returned when metadata serialization fails
var ErrMappingToRecordedEventFailedForMetadata = errors.New("mapping to recorded event failed for metadata")

// ErrNotADomainEvent is returned when a dispatched event is not a catalog domain event
var ErrNotADomainEvent = errors.New("dispatched event is not a catalog domain event")

// RecordedEventFrom converts a DomainEvent and EventMetadata to a RecordedEvent
func RecordedEventFrom(event core.DomainEvent, metadata EventMetadata) (statestore.RecordedEvent, error) {
	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return statestore.RecordedEvent{}, errors.Join(ErrMappingToRecordedEventFailedForDomainEvent, err)
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return statestore.RecordedEvent{}, errors.Join(ErrMappingToRecordedEventFailedForMetadata, err)
	}

	recordedEvent, err := statestore.BuildRecordedEvent(
		event.EventType(),
		event.HasOccurredAt(),
		payloadJSON,
		metadataJSON,
	)

	if err != nil {
		return statestore.RecordedEvent{}, errors.Join(ErrMappingToRecordedEventFailedForDomainEvent, err)
	}

	return recordedEvent, nil
}

// RecordedEventWithEmptyMetadataFrom converts a DomainEvent to a RecordedEvent with empty metadata
func RecordedEventWithEmptyMetadataFrom(event core.DomainEvent) (statestore.RecordedEvent, error) {
	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return statestore.RecordedEvent{}, errors.Join(ErrMappingToRecordedEventFailedForDomainEvent, err)
	}

	recordedEvent, err := statestore.BuildRecordedEventWithEmptyMetadata(
		event.EventType(),
		event.HasOccurredAt(),
		payloadJSON,
	)

	if err != nil {
		return statestore.RecordedEvent{}, errors.Join(ErrMappingToRecordedEventFailedForDomainEvent, err)
	}

	return recordedEvent, nil
}

// NewEventRecorder returns a statestore.EventRecorder that journals catalog
// domain events with freshly generated metadata.
func NewEventRecorder() statestore.EventRecorder {
	return func(event statestore.Event) (statestore.RecordedEvent, error) {
		domainEvent, ok := event.(core.DomainEvent)
		if !ok {
			return statestore.RecordedEvent{}, ErrNotADomainEvent
		}

		uid := uuid.New()

		return RecordedEventFrom(domainEvent, BuildEventMetadata(uid, uid, uid))
	}
}
