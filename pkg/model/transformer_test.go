package model

import (
	"reflect"
	"testing"
)

func double(v any) any { return v.(int) * 2 }

func TestTransformerEndToEnd(t *testing.T) {
	parent := NewState(5)
	doubled := Transform(parent, double)

	if got := doubled.Get(); got != 10 {
		t.Fatalf("Get() = %v, want 10", got)
	}

	var r recorder
	doubled.ObserveChanges(r.listen)
	parent.Set(3)

	if got := doubled.Get(); got != 6 {
		t.Errorf("Get() = %v, want 6", got)
	}
	if !reflect.DeepEqual(r.values, []any{6}) {
		t.Errorf("observer values = %v, want [6]", r.values)
	}
}

func TestTransformerTracksParentWithoutOwnListeners(t *testing.T) {
	parent := NewState(1)
	tr := Transform(parent, double)
	for _, v := range []int{-4, 0, 9} {
		parent.Set(v)
		if got := tr.Get(); got != v*2 {
			t.Errorf("Get() = %v, want %v", got, v*2)
		}
	}
	if parent.Listeners() != 0 {
		t.Errorf("Get should not subscribe, parent has %d listeners", parent.Listeners())
	}
}

func TestTransformerSharedFanOut(t *testing.T) {
	parent := NewState(1)
	a := Transform(parent, double)
	b := Transform(parent, func(v any) any { return v.(int) + 100 })

	var ra, rb recorder
	a.ObserveChanges(ra.listen)
	b.ObserveChanges(rb.listen)

	// Triggering through one sibling fires observers of the other.
	a.Trigger()

	if !reflect.DeepEqual(ra.values, []any{2}) {
		t.Errorf("a values = %v, want [2]", ra.values)
	}
	if !reflect.DeepEqual(rb.values, []any{101}) {
		t.Errorf("b values = %v, want [101]", rb.values)
	}
	if parent.Listeners() != 2 {
		t.Errorf("parent listeners = %d, want 2", parent.Listeners())
	}
}

func TestTransformerChain(t *testing.T) {
	leaf := NewState(1)
	chained := Transform(Transform(leaf, double), func(v any) any { return v.(int) + 1 })

	var r recorder
	chained.Observe(r.listen)
	leaf.Set(4)

	want := []any{3, 9}
	if !reflect.DeepEqual(r.values, want) {
		t.Errorf("values = %v, want %v", r.values, want)
	}
	if leaf.Listeners() != 1 {
		t.Errorf("chain should subscribe on the leaf, listeners = %d", leaf.Listeners())
	}
}

func TestMap(t *testing.T) {
	if got := Map(4, double); got != 8 {
		t.Errorf("Map(plain) = %v, want 8", got)
	}
	s := NewState(4)
	tr, ok := Map(s, double).(*Transformer)
	if !ok {
		t.Fatalf("Map(observable) = %T, want *Transformer", Map(s, double))
	}
	if tr.Parent() != Observable(s) || tr.Get() != 8 {
		t.Errorf("transformer parent/value mismatch: %v", tr.Get())
	}
}
