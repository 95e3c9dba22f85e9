package statestore

// StoreInitializedEventType is the event type identifier of the synthetic
// initialization event.
const StoreInitializedEventType = "StoreInitialized"

// Events is an alias type for a slice of Event.
type Events = []Event

// Event is a tagged record describing an intended state change.
//
// Concrete event types are expected to be flat structs carrying the payload
// fields relevant to their type. Reducers recognize events by type switch and
// return their input field state unchanged for event types they do not handle.
type Event interface {
	// EventType returns the string identifier for this event type.
	EventType() string
}

// StoreInitialized is the synthetic event used to seed the initial value of
// every field when a combined reducer is invoked without a composite state.
//
// No reducer should handle it explicitly - the unhandled path returns the
// declared initial value because the field state is still absent.
type StoreInitialized struct{}

// BuildStoreInitialized creates a new StoreInitialized event.
func BuildStoreInitialized() StoreInitialized {
	return StoreInitialized{}
}

// EventType returns the event type identifier.
func (e StoreInitialized) EventType() string {
	return StoreInitializedEventType
}
