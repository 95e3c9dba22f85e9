// Package catalog assembles the books and authors transition functions into
// the root reducer over the composite catalog state.
package catalog

import (
	"errors"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/authors"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/books"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/core"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore"
)

// BooksField is the name of the composite state field owned by the books reducer.
const BooksField = "books"

// AuthorsField is the name of the composite state field owned by the authors reducer.
const AuthorsField = "authors"

var ErrNilIDGeneratorSupplied = errors.New("nil id generator supplied")

// NewRootReducer combines the books and authors transition functions into a
// single reducer over the composite catalog state.
func NewRootReducer(ids core.IDGenerator) (statestore.Reducer, error) {
	if ids == nil {
		return nil, ErrNilIDGeneratorSupplied
	}

	return statestore.CombineReducers(map[string]statestore.Reducer{
		BooksField:   books.NewReducer(),
		AuthorsField: authors.NewReducer(ids),
	})
}

// BooksFrom extracts the books collection from a composite catalog state.
func BooksFrom(state statestore.State) core.Books {
	if bookRecords, ok := state[BooksField].(core.Books); ok {
		return bookRecords
	}

	return nil
}

// AuthorsFrom extracts the authors collection from a composite catalog state.
func AuthorsFrom(state statestore.State) core.Authors {
	if authorRecords, ok := state[AuthorsField].(core.Authors); ok {
		return authorRecords
	}

	return nil
}
