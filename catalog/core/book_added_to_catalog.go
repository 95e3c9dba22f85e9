package core

import (
	"time"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents when a book is added to the catalog.
type BookAddedToCatalog struct {
	BookID     BookIDString
	Title      string
	AuthorName AuthorNameString
	OccurredAt OccurredAtTS
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
// Returns an error if a required payload field is missing.
func BuildBookAddedToCatalog(
	bookID string,
	title string,
	authorName string,
	occurredAt time.Time,
) (BookAddedToCatalog, error) {

	if bookID == "" {
		return BookAddedToCatalog{}, ErrEmptyBookIDSupplied
	}

	if title == "" {
		return BookAddedToCatalog{}, ErrEmptyTitleSupplied
	}

	if authorName == "" {
		return BookAddedToCatalog{}, ErrEmptyAuthorNameSupplied
	}

	event := BookAddedToCatalog{
		BookID:     bookID,
		Title:      title,
		AuthorName: authorName,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event, nil
}

// EventType returns the event type identifier.
func (e BookAddedToCatalog) EventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}
