package model

import (
	"github.com/QAddict/ruix/internal/errors"
)

// Listener receives the current value of an observable.
type Listener func(value any)

// Observable is the capability every reactive cell implements.
type Observable interface {
	// Name identifies the slot a cell navigates to. It is informational and
	// not unique.
	Name() string

	// Get returns the current value.
	Get() any

	// ObserveChanges registers fn for future notifications only. The value
	// present at registration does not cause a call.
	ObserveChanges(fn Listener)

	// Observe calls fn immediately with the current value and then registers
	// it like ObserveChanges.
	Observe(fn Listener)

	// Trigger re-notifies listeners without changing the value.
	Trigger()
}

// Settable is an Observable whose value can be replaced.
type Settable interface {
	Observable

	// Set replaces the value and notifies listeners, even when the new
	// value equals the old one.
	Set(value any)

	// Update sets the result of fn applied to the current value.
	Update(fn func(any) any)
}

// Sink is anything that accepts values. External producers (network links,
// HTTP handlers) write into cells through this interface.
type Sink interface {
	Set(value any)
}

// IsObservable reports whether v is an Observable.
func IsObservable(v any) bool {
	_, ok := v.(Observable)
	return ok
}

// Of returns v if it is already an Observable and a new State holding v
// otherwise.
func Of(v any) Observable {
	if o, ok := v.(Observable); ok {
		return o
	}
	return NewState(v)
}

// Map derives a Transformer when v is observable and applies fn directly
// otherwise.
func Map(v any, fn func(any) any) any {
	if o, ok := v.(Observable); ok {
		return Transform(o, fn)
	}
	return fn(v)
}

// Get returns the current value of v if it is observable, or v itself.
func Get(v any) any {
	if o, ok := v.(Observable); ok {
		return o.Get()
	}
	return v
}

// GetAs returns the current value of o converted to T, or the zero value of
// T when the value has a different type.
func GetAs[T any](o Observable) T {
	v, _ := o.Get().(T)
	return v
}

// AsSettable returns o as a Settable or panics with a "not implemented"
// error naming the requested operation.
func AsSettable(o Observable, op string) Settable {
	if s, ok := o.(Settable); ok {
		return s
	}
	panic(notImplemented(o, op))
}

func notImplemented(o Observable, op string) *errors.Error {
	return errors.New("R001").WithDetailf("%T does not implement %s", o, op)
}
