package core

import (
	"time"
)

// AuthorAddedToCatalogEventType is the event type identifier.
const AuthorAddedToCatalogEventType = "AuthorAddedToCatalog"

// AuthorAddedToCatalog represents when an author is added to the catalog.
type AuthorAddedToCatalog struct {
	AuthorID   AuthorIDString
	AuthorName AuthorNameString
	OccurredAt OccurredAtTS
}

// BuildAuthorAddedToCatalog creates a new AuthorAddedToCatalog event.
// Returns an error if a required payload field is missing.
func BuildAuthorAddedToCatalog(
	authorID string,
	authorName string,
	occurredAt time.Time,
) (AuthorAddedToCatalog, error) {

	if authorID == "" {
		return AuthorAddedToCatalog{}, ErrEmptyAuthorIDSupplied
	}

	if authorName == "" {
		return AuthorAddedToCatalog{}, ErrEmptyAuthorNameSupplied
	}

	event := AuthorAddedToCatalog{
		AuthorID:   authorID,
		AuthorName: authorName,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event, nil
}

// EventType returns the event type identifier.
func (e AuthorAddedToCatalog) EventType() string {
	return AuthorAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e AuthorAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}
