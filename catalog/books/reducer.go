package books

import (
	"slices"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/core"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore"
)

// Reduce implements the transition function owning the books collection.
// This is a pure function with no side effects - it takes the current books
// field state and an event, returning the new field state.
//
// Transition Logic:
//
//	GIVEN: The current books collection (nil means not yet initialized)
//	WHEN: A BookAddedToCatalog event is processed
//	THEN: A new collection with the book appended is returned (duplicates are not checked)
//	WHEN: A BookRemovedFromCatalog event is processed
//	THEN: A new collection without the first record matching the referenced id is returned,
//	      or the input unchanged when no record matches
//	WHEN: Any other event is processed
//	THEN: The input collection is returned unchanged, preserving referential identity
func Reduce(bookRecords core.Books, event statestore.Event) core.Books {
	if bookRecords == nil {
		bookRecords = make(core.Books, 0)
	}

	switch e := event.(type) {
	case core.BookAddedToCatalog:
		next := make(core.Books, len(bookRecords), len(bookRecords)+1)
		copy(next, bookRecords)

		return append(next, core.Book{
			ID:         e.BookID,
			Title:      e.Title,
			AuthorName: e.AuthorName,
		})

	case core.BookRemovedFromCatalog:
		return removeFirstByID(bookRecords, e.BookID)

	default:
		return bookRecords
	}
}

// NewReducer adapts Reduce to the untyped reducer signature used by
// statestore.CombineReducers.
func NewReducer() statestore.Reducer {
	return statestore.TypedReducer(Reduce)
}

// removeFirstByID returns a new collection without the first record whose id
// equals the given id, or the input unchanged when no record matches.
func removeFirstByID(bookRecords core.Books, bookID core.BookIDString) core.Books {
	index := slices.IndexFunc(bookRecords, func(book core.Book) bool {
		return book.ID == bookID
	})

	if index < 0 {
		return bookRecords
	}

	next := make(core.Books, 0, len(bookRecords)-1)
	next = append(next, bookRecords[:index]...)

	return append(next, bookRecords[index+1:]...)
}
