package catalog_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/core"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore"
)

type sequentialIDGenerator struct {
	counter int
}

func (g *sequentialIDGenerator) NextID() string {
	g.counter++

	return "generated-" + strconv.Itoa(g.counter)
}

func newCatalogStore(t *testing.T) *statestore.Store {
	t.Helper()

	rootReduce, err := catalog.NewRootReducer(&sequentialIDGenerator{})
	require.NoError(t, err)

	store, err := statestore.NewStore(rootReduce)
	require.NoError(t, err)

	return store
}

func dispatchAll(t *testing.T, store *statestore.Store, events ...statestore.Event) {
	t.Helper()

	for _, event := range events {
		require.NoError(t, store.Dispatch(context.Background(), event))
	}
}

func Test_NewRootReducer_RejectsNilIDGenerator(t *testing.T) {
	rootReduce, err := catalog.NewRootReducer(nil)

	assert.ErrorIs(t, err, catalog.ErrNilIDGeneratorSupplied)
	assert.Nil(t, rootReduce)
}

func Test_CatalogStore_InitialStateHasEmptyCollections(t *testing.T) {
	store := newCatalogStore(t)

	state := store.State()

	assert.Equal(t, core.Books{}, catalog.BooksFrom(state))
	assert.Equal(t, core.Authors{}, catalog.AuthorsFrom(state))
}

func Test_CatalogStore_BookAddedRegistersBookAndUnknownAuthor(t *testing.T) {
	store := newCatalogStore(t)

	bookAdded, err := core.BuildBookAddedToCatalog("b-1", "Snow Crash", "Neal Stephenson", time.Now())
	require.NoError(t, err)

	dispatchAll(t, store, bookAdded)

	state := store.State()

	bookRecords := catalog.BooksFrom(state)
	require.Len(t, bookRecords, 1)
	assert.Equal(t, core.Book{ID: "b-1", Title: "Snow Crash", AuthorName: "Neal Stephenson"}, bookRecords[0])

	authorRecords := catalog.AuthorsFrom(state)
	require.Len(t, authorRecords, 1)
	assert.Equal(t, core.Author{ID: "generated-1", AuthorName: "Neal Stephenson"}, authorRecords[0])
}

func Test_CatalogStore_BookByKnownAuthorDoesNotDuplicateAuthor(t *testing.T) {
	store := newCatalogStore(t)

	authorAdded, err := core.BuildAuthorAddedToCatalog("a-1", "Mark Twain", time.Now())
	require.NoError(t, err)

	tomSawyerAdded, err := core.BuildBookAddedToCatalog("b-1", "Tom Sawyer", "Mark Twain", time.Now())
	require.NoError(t, err)

	huckFinnAdded, err := core.BuildBookAddedToCatalog("b-2", "Huckleberry Finn", "Mark Twain", time.Now())
	require.NoError(t, err)

	dispatchAll(t, store, authorAdded, tomSawyerAdded, huckFinnAdded)

	state := store.State()

	assert.Len(t, catalog.BooksFrom(state), 2)

	authorRecords := catalog.AuthorsFrom(state)
	require.Len(t, authorRecords, 1)
	assert.Equal(t, core.AuthorIDString("a-1"), authorRecords[0].ID)
}

func Test_CatalogStore_AddThenRemoveBookRoundTrip(t *testing.T) {
	store := newCatalogStore(t)

	bookAdded, err := core.BuildBookAddedToCatalog("b-1", "Snow Crash", "Neal Stephenson", time.Now())
	require.NoError(t, err)

	bookRemoved, err := core.BuildBookRemovedFromCatalog("b-1", time.Now())
	require.NoError(t, err)

	dispatchAll(t, store, bookAdded, bookRemoved)

	state := store.State()

	assert.Empty(t, catalog.BooksFrom(state))
	assert.Len(t, catalog.AuthorsFrom(state), 1, "removing a book must not remove its author")
}

func Test_CatalogStore_FieldReducersAreIsolated(t *testing.T) {
	store := newCatalogStore(t)

	authorAdded, err := core.BuildAuthorAddedToCatalog("a-1", "Mark Twain", time.Now())
	require.NoError(t, err)

	dispatchAll(t, store, authorAdded)
	booksBefore := catalog.BooksFrom(store.State())

	authorRemoved, err := core.BuildAuthorRemovedFromCatalog("a-1", time.Now())
	require.NoError(t, err)

	dispatchAll(t, store, authorRemoved)
	state := store.State()

	assert.Empty(t, catalog.AuthorsFrom(state))

	booksAfter := catalog.BooksFrom(state)
	assert.Equal(t, booksBefore, booksAfter, "author events must not touch the books field")
}

func Test_CatalogStore_RemovingUnknownBookIsIdempotent(t *testing.T) {
	store := newCatalogStore(t)

	bookAdded, err := core.BuildBookAddedToCatalog("b-1", "Snow Crash", "Neal Stephenson", time.Now())
	require.NoError(t, err)

	dispatchAll(t, store, bookAdded)
	before := store.State()

	unknownRemoved, err := core.BuildBookRemovedFromCatalog("b-404", time.Now())
	require.NoError(t, err)

	dispatchAll(t, store, unknownRemoved)

	assert.Equal(t, before, store.State())
}

func Test_CatalogStore_RebuildsFromRecordedHistory(t *testing.T) {
	store := newCatalogStore(t)

	authorAdded, err := core.BuildAuthorAddedToCatalog("a-1", "Mark Twain", time.Now())
	require.NoError(t, err)

	bookAdded, err := core.BuildBookAddedToCatalog("b-1", "Tom Sawyer", "Mark Twain", time.Now())
	require.NoError(t, err)

	dispatchAll(t, store, authorAdded, bookAdded)

	rootReduce, err := catalog.NewRootReducer(&sequentialIDGenerator{})
	require.NoError(t, err)

	rebuilt, err := statestore.NewStoreFromHistory(rootReduce, statestore.Events{authorAdded, bookAdded})
	require.NoError(t, err)

	assert.Equal(t, store.State(), rebuilt.State())
}
