package statestore

import (
	"errors"
	"reflect"
)

var ErrNoReducersSupplied = errors.New("no reducers supplied")
var ErrEmptyFieldNameSupplied = errors.New("empty field name supplied")
var ErrNilReducerSupplied = errors.New("nil reducer supplied")

// State is the composite application state: one entry per named field, each
// holding the current value owned by that field's reducer.
//
// It is replaced as a whole on every processed event, never mutated in place.
type State = map[string]any

// Reducer is a pure transition function mapping (current field state, event)
// to a new field state.
//
// A reducer must return a well-defined initial value when invoked with a nil
// field state, and must return its input unchanged - preserving referential
// identity - for event types it does not handle.
type Reducer func(fieldState any, event Event) any

// TypedReducer adapts a transition function over a concrete field state type
// to the untyped Reducer signature used by CombineReducers.
//
// A nil field state is passed through as the zero value of S, so the typed
// function can normalize it to its declared initial value.
func TypedReducer[S any](reduce func(fieldState S, event Event) S) Reducer {
	return func(fieldState any, event Event) any {
		var typed S
		if fieldState != nil {
			typed = fieldState.(S)
		}

		return reduce(typed, event)
	}
}

// CombineReducers composes multiple reducers, each owning one named field,
// into a single reducer over the composite State.
//
// The combined reducer routes every event to every field reducer and
// reassembles the results into a newly constructed State whose key set equals
// the key set of the supplied mapping. When invoked with a nil composite
// state, each field reducer is seeded with a nil field state, so the returned
// value is the initial composite state.
//
// An unknown event type is not an error: reducers return their input
// unchanged and the rebuilt State carries the same field values.
func CombineReducers(reducers map[string]Reducer) (Reducer, error) {
	if len(reducers) == 0 {
		return nil, ErrNoReducersSupplied
	}

	for fieldName, reduce := range reducers {
		if fieldName == "" {
			return nil, ErrEmptyFieldNameSupplied
		}

		if reduce == nil {
			return nil, ErrNilReducerSupplied
		}
	}

	combined := func(compositeState any, event Event) any {
		var current State
		if compositeState != nil {
			current = compositeState.(State)
		}

		next := make(State, len(reducers))

		for fieldName, reduce := range reducers {
			var fieldState any
			if current != nil {
				fieldState = current[fieldName]
			}

			next[fieldName] = reduce(fieldState, event)
		}

		return next
	}

	return combined, nil
}

// Replay folds a history of events over the given root reducer, starting from
// the seeded initial state, and returns the resulting composite state.
func Replay(rootReduce Reducer, history Events) State {
	state := rootReduce(nil, BuildStoreInitialized())

	for _, event := range history {
		state = rootReduce(state, event)
	}

	return state.(State)
}

// stateChanged reports whether any field value differs between two composite
// states, using cheap referential identity checks per field.
func stateChanged(previous State, next State) bool {
	if len(previous) != len(next) {
		return true
	}

	for fieldName, previousValue := range previous {
		nextValue, exists := next[fieldName]
		if !exists {
			return true
		}

		if !sameFieldState(previousValue, nextValue) {
			return true
		}
	}

	return false
}

// sameFieldState reports whether two field states are the same value.
// Slices, maps and pointers are compared by identity of the underlying data,
// which is exactly what the unchanged path of a reducer preserves.
func sameFieldState(previous any, next any) bool {
	if previous == nil || next == nil {
		return previous == nil && next == nil
	}

	previousValue := reflect.ValueOf(previous)
	nextValue := reflect.ValueOf(next)

	if previousValue.Kind() != nextValue.Kind() {
		return false
	}

	switch previousValue.Kind() {
	case reflect.Slice:
		return previousValue.Len() == nextValue.Len() &&
			previousValue.Pointer() == nextValue.Pointer()

	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func:
		return previousValue.Pointer() == nextValue.Pointer()

	default:
		if previousValue.Comparable() && nextValue.Comparable() {
			return previous == next
		}

		return false
	}
}
