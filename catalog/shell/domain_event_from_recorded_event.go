package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/core"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple RecordedEvents to DomainEvents.
func DomainEventsFrom(recordedEvents statestore.RecordedEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0)

	for _, recordedEvent := range recordedEvents {
		domainEvent, err := DomainEventFrom(recordedEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a RecordedEvent to its corresponding DomainEvent.
func DomainEventFrom(recordedEvent statestore.RecordedEvent) (core.DomainEvent, error) {
	switch recordedEvent.EventType {
	case core.BookAddedToCatalogEventType:
		return unmarshalBookAddedToCatalog(recordedEvent.PayloadJSON)

	case core.BookRemovedFromCatalogEventType:
		return unmarshalBookRemovedFromCatalog(recordedEvent.PayloadJSON)

	case core.AuthorAddedToCatalogEventType:
		return unmarshalAuthorAddedToCatalog(recordedEvent.PayloadJSON)

	case core.AuthorRemovedFromCatalogEventType:
		return unmarshalAuthorRemovedFromCatalog(recordedEvent.PayloadJSON)

	default:
		return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
	}
}

// ReplayEventsFrom converts journaled RecordedEvents into the event history
// accepted by statestore.Replay and statestore.NewStoreFromHistory.
func ReplayEventsFrom(recordedEvents statestore.RecordedEvents) (statestore.Events, error) {
	domainEvents, err := DomainEventsFrom(recordedEvents)
	if err != nil {
		return nil, err
	}

	history := make(statestore.Events, 0, len(domainEvents))
	for _, domainEvent := range domainEvents {
		history = append(history, domainEvent)
	}

	return history, nil
}

func unmarshalBookAddedToCatalog(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookAddedToCatalog)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookAddedToCatalog{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookAddedToCatalog{
		BookID:     payload.BookID,
		Title:      payload.Title,
		AuthorName: payload.AuthorName,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalBookRemovedFromCatalog(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookRemovedFromCatalog)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookRemovedFromCatalog{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookRemovedFromCatalog{
		BookID:     payload.BookID,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalAuthorAddedToCatalog(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.AuthorAddedToCatalog)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.AuthorAddedToCatalog{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.AuthorAddedToCatalog{
		AuthorID:   payload.AuthorID,
		AuthorName: payload.AuthorName,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalAuthorRemovedFromCatalog(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.AuthorRemovedFromCatalog)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.AuthorRemovedFromCatalog{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.AuthorRemovedFromCatalog{
		AuthorID:   payload.AuthorID,
		OccurredAt: payload.OccurredAt,
	}, nil
}
