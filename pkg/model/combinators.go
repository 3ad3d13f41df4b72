package model

import (
	"fmt"
	"strings"
)

// Arguments merges inputs into one cell whose value is a []any holding the
// current value of every input, in order.
//
// Each observable input gets exactly one listener, registered here, which
// replaces only its own slot and re-triggers the tuple cell. Other inputs
// are stored as constants.
func Arguments(inputs ...any) *State {
	values := make([]any, len(inputs))
	tuple := NewState(values)
	for i, in := range inputs {
		o, ok := in.(Observable)
		if !ok {
			values[i] = in
			continue
		}
		i := i
		o.ObserveChanges(func(v any) {
			tuple.setSlot(values, i, v)
			tuple.Trigger()
		})
		values[i] = o.Get()
	}
	return tuple
}

// Function derives f applied to the current values of args. It is
// recomputed on every change of any observable argument.
func Function(f func(args ...any) any, args ...any) *Transformer {
	return Transform(Arguments(args...), func(v any) any {
		return f(v.([]any)...)
	})
}

// Join derives the string of all items joined with sep. Nil items render as
// empty strings.
func Join(sep string, items ...any) *Transformer {
	return Transform(Arguments(items...), func(v any) any {
		return joinValues(sep, v.([]any))
	})
}

// Concat is Join with an empty separator.
func Concat(items ...any) *Transformer {
	return Join("", items...)
}

// String renders v the way joined text does: nil is empty, slices are joined
// with commas.
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case []any:
		return joinValues(",", t)
	case []string:
		return strings.Join(t, ",")
	}
	return fmt.Sprint(v)
}

func joinValues(sep string, values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = String(v)
	}
	return strings.Join(parts, sep)
}
