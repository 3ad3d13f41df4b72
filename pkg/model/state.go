package model

import "sync"

// State is a leaf cell. It is the only place values are actually stored.
type State struct {
	name string

	// mu protects value and listeners. It is never held while listeners run.
	mu        sync.RWMutex
	value     any
	listeners []Listener
}

// NewState creates a leaf cell holding initial.
func NewState(initial any) *State {
	return &State{value: initial}
}

// Named sets the informational name and returns the cell.
func (s *State) Named(name string) *State {
	s.mu.Lock()
	s.name = name
	s.mu.Unlock()
	return s
}

// Name implements Observable.
func (s *State) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// Get implements Observable.
func (s *State) Get() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set implements Settable.
func (s *State) Set(value any) {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
	s.Trigger()
}

// Update implements Settable.
func (s *State) Update(fn func(any) any) {
	s.Set(fn(s.Get()))
}

// ObserveChanges implements Observable. Registering the same function twice
// stores it twice.
func (s *State) ObserveChanges(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Observe implements Observable.
func (s *State) Observe(fn Listener) {
	if fn == nil {
		return
	}
	fn(s.Get())
	s.ObserveChanges(fn)
}

// Trigger implements Observable. Listeners registered during the pass are
// not called by it. Each listener gets the value current at its call, so a
// nested Set is visible to the rest of the outer pass.
func (s *State) Trigger() {
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, l := range listeners {
		l(s.Get())
	}
}

// Listeners returns the number of registered listeners.
func (s *State) Listeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// setSlot replaces one element of a tuple value under the lock.
func (s *State) setSlot(tuple []any, i int, v any) {
	s.mu.Lock()
	tuple[i] = v
	s.mu.Unlock()
}

// TransformedState is a leaf cell that stores transform(v) for every value
// it is given, including the initial one.
type TransformedState struct {
	*State
	transform func(any) any
}

// NewTransformedState creates a cell holding transform(initial).
func NewTransformedState(transform func(any) any, initial any) *TransformedState {
	return &TransformedState{
		State:     NewState(transform(initial)),
		transform: transform,
	}
}

// Set stores transform(value) and triggers.
func (t *TransformedState) Set(value any) {
	t.State.Set(t.transform(value))
}

// Update stores transform(fn(current)) and triggers.
func (t *TransformedState) Update(fn func(any) any) {
	t.Set(fn(t.Get()))
}
