package statestore

import (
	"context"
	"errors"
	"sync"
	"time"
)

const (
	logMsgEventDispatched       = "event dispatched"
	logMsgRecordingEventFailed  = "recording event to journal failed"
	logMsgStoreOperation        = "statestore operation: "
	logAttrError                = "error"
	logAttrEventType            = "event_type"
	logAttrChanged              = "changed"
	logAttrDurationMS           = "duration_ms"
	logActionDispatch           = "dispatch"
	metricDispatchDuration      = "statestore_dispatch_duration_seconds"
	metricDispatchedEventsTotal = "statestore_dispatched_events_total"
	metricJournalLength         = "statestore_journal_length"
	spanNameDispatch            = "statestore.dispatch"
	spanAttrEventType           = "event_type"
	spanAttrChanged             = "changed"
	statusOK                    = "ok"
	statusError                 = "error"
	trueString                  = "true"
	falseString                 = "false"
)

var ErrNilRootReducerSupplied = errors.New("nil root reducer supplied")
var ErrNilEventDispatched = errors.New("nil event dispatched")
var ErrRootReducerReturnedNoCompositeState = errors.New("root reducer did not return a composite state")

// Listener is notified after a dispatch with the new composite state and the
// event that produced it.
type Listener func(state State, event Event)

// EventRecorder converts a dispatched event into a RecordedEvent for the
// journal. It is supplied by the client code since only the client knows how
// to serialize its concrete event types.
type EventRecorder func(event Event) (RecordedEvent, error)

type subscription struct {
	id     uint64
	filter Filter
	notify Listener
}

// Store owns the composite application state and dispatches events to the
// combined reducer, replacing the state by atomic value substitution.
//
// Events are processed strictly one at a time, in the order they are
// submitted; concurrent calls to Dispatch are serialized internally.
type Store struct {
	mu            sync.Mutex
	reduce        Reducer
	state         State
	dispatchCount uint
	journal       RecordedEvents
	record        EventRecorder
	clock         func() time.Time
	subscriptions []subscription
	nextSubID     uint64

	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewStore creates a Store around the given root reducer, applying the
// supplied options and seeding the initial composite state by invoking the
// reducer with a nil state and the synthetic initialization event.
func NewStore(rootReduce Reducer, opts ...Option) (*Store, error) {
	if rootReduce == nil {
		return nil, ErrNilRootReducerSupplied
	}

	store := &Store{
		reduce: rootReduce,
		clock:  time.Now,
	}

	for _, opt := range opts {
		if optErr := opt(store); optErr != nil {
			return nil, optErr
		}
	}

	seeded, ok := rootReduce(nil, BuildStoreInitialized()).(State)
	if !ok {
		return nil, ErrRootReducerReturnedNoCompositeState
	}

	store.state = seeded

	return store, nil
}

// NewStoreFromHistory creates a Store and dispatches the given history of
// events in order, rebuilding the composite state they describe.
func NewStoreFromHistory(rootReduce Reducer, history Events, opts ...Option) (*Store, error) {
	store, err := NewStore(rootReduce, opts...)
	if err != nil {
		return nil, err
	}

	for _, event := range history {
		if dispatchErr := store.Dispatch(context.Background(), event); dispatchErr != nil {
			return nil, dispatchErr
		}
	}

	return store, nil
}

// Dispatch processes a single event: it journals the event when a recorder is
// configured, routes it through the combined reducer, replaces the composite
// state with the result, and notifies matching subscribers.
//
// An event no reducer handles is not an error - the state is rebuilt with
// every field unchanged.
func (s *Store) Dispatch(ctx context.Context, event Event) error {
	if event == nil {
		return ErrNilEventDispatched
	}

	started := time.Now()

	ctx, span := s.startSpan(ctx, spanNameDispatch, map[string]string{
		spanAttrEventType: event.EventType(),
	})

	s.mu.Lock()

	if s.record != nil {
		recordedEvent, recordErr := s.record(event)
		if recordErr != nil {
			s.mu.Unlock()
			s.logError(ctx, logMsgRecordingEventFailed, recordErr, logAttrEventType, event.EventType())
			s.finishSpan(span, statusError, nil)

			return recordErr
		}

		s.journal = append(s.journal, recordedEvent)
	}

	previousState := s.state

	nextState, ok := s.reduce(previousState, event).(State)
	if !ok {
		s.mu.Unlock()
		s.finishSpan(span, statusError, nil)

		return ErrRootReducerReturnedNoCompositeState
	}

	changed := stateChanged(previousState, nextState)

	s.state = nextState
	s.dispatchCount++

	notifications := make([]subscription, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		if sub.filter.Matches(event.EventType()) {
			notifications = append(notifications, sub)
		}
	}

	journalLength := len(s.journal)

	s.mu.Unlock()

	for _, sub := range notifications {
		sub.notify(nextState, event)
	}

	duration := time.Since(started)
	s.logDispatch(ctx, event.EventType(), changed, duration)
	s.recordDispatchMetrics(ctx, event.EventType(), changed, duration, journalLength)
	s.finishSpan(span, statusOK, map[string]string{
		spanAttrChanged: boolString(changed),
	})

	return nil
}

// State returns the current composite state. The returned map is a copy so
// callers cannot swap field values behind the store; the field values
// themselves are the immutable results of the reducers.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := make(State, len(s.state))
	for fieldName, fieldState := range s.state {
		state[fieldName] = fieldState
	}

	return state
}

// Subscribe registers a listener notified after every dispatch whose event
// matches the given filter. It returns a function that removes the
// subscription.
func (s *Store) Subscribe(filter Filter, notify Listener) (unsubscribe func()) {
	if notify == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextSubID++
	subID := s.nextSubID
	s.subscriptions = append(s.subscriptions, subscription{id: subID, filter: filter, notify: notify})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, sub := range s.subscriptions {
			if sub.id == subID {
				s.subscriptions = append(s.subscriptions[:i], s.subscriptions[i+1:]...)
				return
			}
		}
	}
}

// Journal returns a copy of the recorded events journaled so far.
// It is empty unless the store was configured with WithJournal.
func (s *Store) Journal() RecordedEvents {
	s.mu.Lock()
	defer s.mu.Unlock()

	journal := make(RecordedEvents, len(s.journal))
	copy(journal, s.journal)

	return journal
}

func boolString(value bool) string {
	if value {
		return trueString
	}

	return falseString
}
