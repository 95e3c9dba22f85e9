package statestore

import (
	"slices"
)

type FilterEventTypeString = string

/***** Filter *****/

// Filter selects events by type for subscriptions and replay.
// An empty Filter matches every event.
type Filter struct {
	eventTypes []FilterEventTypeString
}

func (f Filter) EventTypes() []FilterEventTypeString {
	return f.eventTypes
}

// Matches reports whether an event with the given type passes the filter.
func (f Filter) Matches(eventType FilterEventTypeString) bool {
	if len(f.eventTypes) == 0 {
		return true
	}

	return slices.Contains(f.eventTypes, eventType)
}

/***** FilterBuilder *****/

// FilterBuilder builds an event filter for Store subscriptions and for
// selective replay of journaled events.
// It is designed with the idea to only allow "useful" filter combinations:
//
//   - empty filter (matching any event)
//   - (eventType)
//   - (eventType OR eventType...)
type FilterBuilder interface {
	// Matching starts collecting event types for the filter.
	Matching() FilterItemBuilder

	// MatchingAnyEvent directly creates an empty Filter.
	MatchingAnyEvent() Filter
}

type FilterItemBuilder interface {
	// AnyEventTypeOf adds one or multiple EventTypes to the filter.
	//
	// It sanitizes the input:
	//	- removing empty EventTypes ("")
	//	- sorting the EventTypes
	//	- removing duplicate EventTypes
	AnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) CompletedFilterBuilder
}

type CompletedFilterBuilder interface {
	// Finalize returns the built Filter.
	Finalize() Filter
}

// BuildEventFilter starts building a new Filter.
func BuildEventFilter() FilterBuilder {
	return &filterBuilder{}
}

type filterBuilder struct {
	eventTypes []FilterEventTypeString
}

func (fb *filterBuilder) Matching() FilterItemBuilder {
	return fb
}

func (fb *filterBuilder) MatchingAnyEvent() Filter {
	return Filter{}
}

func (fb *filterBuilder) AnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) CompletedFilterBuilder {

	combined := append([]FilterEventTypeString{eventType}, eventTypes...)

	sanitized := make([]FilterEventTypeString, 0, len(combined))
	for _, candidate := range combined {
		if candidate != "" {
			sanitized = append(sanitized, candidate)
		}
	}

	slices.Sort(sanitized)
	fb.eventTypes = slices.Compact(sanitized)

	return fb
}

func (fb *filterBuilder) Finalize() Filter {
	return Filter{eventTypes: fb.eventTypes}
}
