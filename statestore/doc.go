// Package statestore provides core abstractions for building application state
// from composable transition functions (reducers).
//
// This package defines the fundamental types used to decompose a single
// monolithic state-update function into independent field-level reducers that
// are merged by CombineReducers into one transition function over a composite
// state record.
//
// Key types:
//   - Event: A tagged record describing an intended state change
//   - Reducer: A pure transition function from (field state, event) to new field state
//   - State: The composite application state, one entry per named field
//   - Store: A state holder that dispatches events strictly one at a time
//   - RecordedEvent: A scalar DTO used to journal dispatched events
//
// Common usage pattern:
//
//	rootReduce, err := statestore.CombineReducers(map[string]statestore.Reducer{
//		"books":   books.NewReducer(),
//		"authors": authors.NewReducer(idGenerator),
//	})
//	if err != nil {
//		// handle error
//	}
//
//	store, err := statestore.NewStore(rootReduce)
//	if err != nil {
//		// handle error
//	}
//
//	dispatchErr := store.Dispatch(ctx, event)
//	currentState := store.State()
package statestore
