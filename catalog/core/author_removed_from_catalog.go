package core

import (
	"time"
)

// AuthorRemovedFromCatalogEventType is the event type identifier.
const AuthorRemovedFromCatalogEventType = "AuthorRemovedFromCatalog"

// AuthorRemovedFromCatalog represents when an author is removed from the catalog.
type AuthorRemovedFromCatalog struct {
	AuthorID   AuthorIDString
	OccurredAt OccurredAtTS
}

// BuildAuthorRemovedFromCatalog creates a new AuthorRemovedFromCatalog event.
// Returns an error if the referenced author id is missing.
func BuildAuthorRemovedFromCatalog(authorID string, occurredAt time.Time) (AuthorRemovedFromCatalog, error) {
	if authorID == "" {
		return AuthorRemovedFromCatalog{}, ErrEmptyAuthorIDSupplied
	}

	event := AuthorRemovedFromCatalog{
		AuthorID:   authorID,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event, nil
}

// EventType returns the event type identifier.
func (e AuthorRemovedFromCatalog) EventType() string {
	return AuthorRemovedFromCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e AuthorRemovedFromCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}
