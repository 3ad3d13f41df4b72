package model

import (
	"sort"
	"sync"
)

// Mirror is a lazily materialized structural mirror of an observable.
//
// Field returns a Mirror over a Property of the wrapped cell, creating and
// caching it on first access. Later calls with the same name return the
// identical instance for the lifetime of the mirror; there is no eviction.
// This lets a view bind to slots of a value that has not been populated yet.
type Mirror struct {
	cell Observable

	mu     sync.Mutex
	fields map[string]*Mirror
}

// NewMirror wraps v. A *Mirror is returned unchanged, another Observable is
// wrapped as is, and any other value is first placed in a new State.
func NewMirror(v any) *Mirror {
	if m, ok := v.(*Mirror); ok {
		return m
	}
	return &Mirror{cell: Of(v)}
}

// Field returns the mirror of the slot called name.
func (m *Mirror) Field(name string) *Mirror {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.fields[name]; ok {
		return f
	}
	if m.fields == nil {
		m.fields = make(map[string]*Mirror)
	}
	f := &Mirror{cell: NewProperty(m.cell, name)}
	m.fields[name] = f
	return f
}

// Path follows Field for each name in turn.
func (m *Mirror) Path(names ...string) *Mirror {
	cur := m
	for _, name := range names {
		cur = cur.Field(name)
	}
	return cur
}

// Fields returns the names materialized so far, sorted.
func (m *Mirror) Fields() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.fields))
	for name := range m.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unwrap returns the wrapped observable.
func (m *Mirror) Unwrap() Observable { return m.cell }

// Name implements Observable.
func (m *Mirror) Name() string { return m.cell.Name() }

// Get implements Observable.
func (m *Mirror) Get() any { return m.cell.Get() }

// ObserveChanges implements Observable.
func (m *Mirror) ObserveChanges(fn Listener) { m.cell.ObserveChanges(fn) }

// Observe implements Observable.
func (m *Mirror) Observe(fn Listener) { m.cell.Observe(fn) }

// Trigger implements Observable.
func (m *Mirror) Trigger() { m.cell.Trigger() }

// Set delegates to the wrapped cell. It panics with an R001 error when the
// wrapped observable is read-only.
func (m *Mirror) Set(value any) {
	AsSettable(m.cell, "Set").Set(value)
}

// Update delegates to the wrapped cell. It panics with an R001 error when
// the wrapped observable is read-only.
func (m *Mirror) Update(fn func(any) any) {
	AsSettable(m.cell, "Update").Update(fn)
}
