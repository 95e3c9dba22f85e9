package authors

import (
	"slices"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/core"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore"
)

// Reduce implements the transition function owning the authors collection.
// This is a pure function except for the injected id generator, which is only
// invoked when a new author record is synthesized.
//
// Transition Logic:
//
//	GIVEN: The current authors collection (nil means not yet initialized)
//	WHEN: An AuthorAddedToCatalog event is processed
//	THEN: A new collection with the author appended is returned (duplicates are not checked)
//	WHEN: An AuthorRemovedFromCatalog event is processed
//	THEN: A new collection without the first record matching the referenced id is returned,
//	      or the input unchanged when no record matches
//	WHEN: A BookAddedToCatalog event carrying an unseen author display name is processed
//	THEN: A new collection with a freshly synthesized author record is returned;
//	      when an author with that display name already exists, the input is returned unchanged
//	WHEN: Any other event is processed
//	THEN: The input collection is returned unchanged, preserving referential identity
func Reduce(ids core.IDGenerator, authorRecords core.Authors, event statestore.Event) core.Authors {
	if authorRecords == nil {
		authorRecords = make(core.Authors, 0)
	}

	switch e := event.(type) {
	case core.AuthorAddedToCatalog:
		return appendAuthor(authorRecords, core.Author{
			ID:         e.AuthorID,
			AuthorName: e.AuthorName,
		})

	case core.AuthorRemovedFromCatalog:
		return removeFirstByID(authorRecords, e.AuthorID)

	case core.BookAddedToCatalog:
		if containsAuthorName(authorRecords, e.AuthorName) {
			return authorRecords
		}

		return appendAuthor(authorRecords, core.Author{
			ID:         ids.NextID(),
			AuthorName: e.AuthorName,
		})

	default:
		return authorRecords
	}
}

// NewReducer adapts Reduce to the untyped reducer signature used by
// statestore.CombineReducers, binding the given id generator.
func NewReducer(ids core.IDGenerator) statestore.Reducer {
	return statestore.TypedReducer(func(authorRecords core.Authors, event statestore.Event) core.Authors {
		return Reduce(ids, authorRecords, event)
	})
}

func appendAuthor(authorRecords core.Authors, author core.Author) core.Authors {
	next := make(core.Authors, len(authorRecords), len(authorRecords)+1)
	copy(next, authorRecords)

	return append(next, author)
}

// removeFirstByID returns a new collection without the first record whose id
// equals the given id, or the input unchanged when no record matches.
func removeFirstByID(authorRecords core.Authors, authorID core.AuthorIDString) core.Authors {
	index := slices.IndexFunc(authorRecords, func(author core.Author) bool {
		return author.ID == authorID
	})

	if index < 0 {
		return authorRecords
	}

	next := make(core.Authors, 0, len(authorRecords)-1)
	next = append(next, authorRecords[:index]...)

	return append(next, authorRecords[index+1:]...)
}

func containsAuthorName(authorRecords core.Authors, authorName core.AuthorNameString) bool {
	return slices.ContainsFunc(authorRecords, func(author core.Author) bool {
		return author.AuthorName == authorName
	})
}
