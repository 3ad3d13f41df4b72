package model

import (
	"sort"
	"sync"
)

// Property navigates to the slot called name of its parent's value.
//
// Set mutates the parent's current value in place and then triggers the
// parent, so every listener of the parent and of every sibling property is
// notified, not only listeners of this slot.
type Property struct {
	*Transformer
}

// NewProperty creates a property cell over parent.
func NewProperty(parent Observable, name string) *Property {
	return &Property{
		Transformer: Transform(parent, func(v any) any { return Slot(v, name) }).Named(name),
	}
}

// Set writes value into the parent's current value and triggers the parent.
// It panics with an R003 error when the parent value has no writable slot.
func (p *Property) Set(value any) {
	if err := SetSlot(p.parent.Get(), p.name, value); err != nil {
		panic(err)
	}
	p.Trigger()
}

// Update implements Settable.
func (p *Property) Update(fn func(any) any) {
	p.Set(fn(p.Get()))
}

// Dependency is a Property that runs a hook before every write, typically to
// maintain auxiliary indices derived from the slot.
type Dependency struct {
	*Property
	deps func(oldValue, newValue any)
}

// NewDependency creates a dependency-aware property cell.
func NewDependency(parent Observable, name string, deps func(oldValue, newValue any)) *Dependency {
	return &Dependency{Property: NewProperty(parent, name), deps: deps}
}

// Set calls the hook with the old and new value, then writes the slot.
func (d *Dependency) Set(value any) {
	if d.deps != nil {
		d.deps(d.Get(), value)
	}
	d.Property.Set(value)
}

// Update implements Settable.
func (d *Dependency) Update(fn func(any) any) {
	d.Set(fn(d.Get()))
}

// Attached reads and writes a named field of a plain object and owns its
// own listeners. Changes made to the object by other means are not observed.
type Attached struct {
	*State
	object any
}

// NewAttached creates a cell over the field name of object.
func NewAttached(object any, name string) *Attached {
	return &Attached{State: NewState(nil).Named(name), object: object}
}

// Get implements Observable.
func (a *Attached) Get() any {
	return Slot(a.object, a.Name())
}

// Set writes the field and triggers this cell's listeners.
// It panics with an R003 error when the object has no writable field.
func (a *Attached) Set(value any) {
	if err := SetSlot(a.object, a.Name(), value); err != nil {
		panic(err)
	}
	a.Trigger()
}

// Update implements Settable.
func (a *Attached) Update(fn func(any) any) {
	a.Set(fn(a.Get()))
}

// Observe implements Observable.
func (a *Attached) Observe(fn Listener) {
	if fn == nil {
		return
	}
	fn(a.Get())
	a.ObserveChanges(fn)
}

// Trigger calls every listener with the current field value.
func (a *Attached) Trigger() {
	a.mu.RLock()
	listeners := make([]Listener, len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.RUnlock()

	for _, l := range listeners {
		l(a.Get())
	}
}

// Attachment hands out one Attached cell per field name of an object.
type Attachment struct {
	object any

	mu     sync.Mutex
	fields map[string]*Attached
}

// Attach creates an accessor for the fields of object.
func Attach(object any) *Attachment {
	return &Attachment{object: object, fields: make(map[string]*Attached)}
}

// Field returns the cell for name, creating it on first use.
func (a *Attachment) Field(name string) *Attached {
	a.mu.Lock()
	defer a.mu.Unlock()
	if f, ok := a.fields[name]; ok {
		return f
	}
	f := NewAttached(a.object, name)
	a.fields[name] = f
	return f
}

// Fields returns the names of the cells created so far, sorted.
func (a *Attachment) Fields() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	names := make([]string, 0, len(a.fields))
	for name := range a.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
