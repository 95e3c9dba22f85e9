package core

import (
	"time"
)

// BookRemovedFromCatalogEventType is the event type identifier.
const BookRemovedFromCatalogEventType = "BookRemovedFromCatalog"

// BookRemovedFromCatalog represents when a book is removed from the catalog.
type BookRemovedFromCatalog struct {
	BookID     BookIDString
	OccurredAt OccurredAtTS
}

// BuildBookRemovedFromCatalog creates a new BookRemovedFromCatalog event.
// Returns an error if the referenced book id is missing.
func BuildBookRemovedFromCatalog(bookID string, occurredAt time.Time) (BookRemovedFromCatalog, error) {
	if bookID == "" {
		return BookRemovedFromCatalog{}, ErrEmptyBookIDSupplied
	}

	event := BookRemovedFromCatalog{
		BookID:     bookID,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event, nil
}

// EventType returns the event type identifier.
func (e BookRemovedFromCatalog) EventType() string {
	return BookRemovedFromCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRemovedFromCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}
