package core

import (
	"errors"
	"time"
)

// Instead of implementing full value objects, alias types and helper methods are used here ...

// BookIDString represents a book identifier
type BookIDString = string

// AuthorIDString represents an author identifier
type AuthorIDString = string

// AuthorNameString represents an author display name
type AuthorNameString = string

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

var ErrEmptyBookIDSupplied = errors.New("empty book id supplied")
var ErrEmptyAuthorIDSupplied = errors.New("empty author id supplied")
var ErrEmptyTitleSupplied = errors.New("empty title supplied")
var ErrEmptyAuthorNameSupplied = errors.New("empty author name supplied")
