// Command catalog-demo wires the catalog reducers into a store, dispatches a
// scripted sequence of events, and prints the resulting state.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/core"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/catalog/shell"
	"github.com/AntonStoeckl/composable-reducers-statestore-go/statestore"
)

// slogLogger adapts *slog.Logger to the statestore.Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

func (l slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func main() {
	cfg, err := ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	logger := slogLogger{
		logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})),
	}

	idGenerator := shell.NewUUIDGenerator()

	rootReduce, err := catalog.NewRootReducer(idGenerator)
	if err != nil {
		log.Fatalf("Failed to build root reducer: %v", err)
	}

	storeOptions := []statestore.Option{statestore.WithLogger(logger)}
	if cfg.JournalEnabled {
		storeOptions = append(storeOptions, statestore.WithJournal(shell.NewEventRecorder()))
	}

	store, err := statestore.NewStore(rootReduce, storeOptions...)
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}

	bookEventsFilter := statestore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookRemovedFromCatalogEventType).
		Finalize()

	unsubscribe := store.Subscribe(bookEventsFilter, func(state statestore.State, event statestore.Event) {
		logger.Info("book collection updated",
			"event_type", event.EventType(),
			"books", len(catalog.BooksFrom(state)))
	})
	defer unsubscribe()

	ctx := context.Background()

	if err := runScenario(ctx, store, idGenerator); err != nil {
		log.Fatalf("Scenario failed: %v", err)
	}

	printOutcome(store, logger)
}

// runScenario dispatches a short scripted sequence: an explicitly added
// author, a book whose author is auto-registered, a book by the already known
// author (no duplicate author record), and one removal.
func runScenario(ctx context.Context, store *statestore.Store, idGenerator core.IDGenerator) error {
	authorAdded, err := core.BuildAuthorAddedToCatalog(idGenerator.NextID(), "Mark Twain", time.Now())
	if err != nil {
		return err
	}

	snowCrashID := idGenerator.NextID()
	snowCrashAdded, err := core.BuildBookAddedToCatalog(snowCrashID, "Snow Crash", "Neal Stephenson", time.Now())
	if err != nil {
		return err
	}

	tomSawyerAdded, err := core.BuildBookAddedToCatalog(idGenerator.NextID(), "Tom Sawyer", "Mark Twain", time.Now())
	if err != nil {
		return err
	}

	snowCrashRemoved, err := core.BuildBookRemovedFromCatalog(snowCrashID, time.Now())
	if err != nil {
		return err
	}

	for _, event := range []statestore.Event{authorAdded, snowCrashAdded, tomSawyerAdded, snowCrashRemoved} {
		if dispatchErr := store.Dispatch(ctx, event); dispatchErr != nil {
			return dispatchErr
		}
	}

	return nil
}

func printOutcome(store *statestore.Store, logger slogLogger) {
	state := store.State()

	for _, book := range catalog.BooksFrom(state) {
		logger.Info("book in catalog", "id", book.ID, "title", book.Title, "author", book.AuthorName)
	}

	for _, author := range catalog.AuthorsFrom(state) {
		logger.Info("author in catalog", "id", author.ID, "name", author.AuthorName)
	}

	snapshot, err := store.Snapshot()
	if err != nil {
		log.Fatalf("Failed to take snapshot: %v", err)
	}

	logger.Info("final state snapshot",
		"event_count", snapshot.EventCount,
		"state", string(snapshot.Data))
}
