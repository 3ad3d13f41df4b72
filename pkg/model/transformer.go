package model

// Transformer is a read-only projection of a parent observable through a
// pure function. It holds no listeners: subscriptions and triggers go to the
// parent, so all transformers of one parent share its notification fan-out.
type Transformer struct {
	name      string
	parent    Observable
	transform func(any) any
}

// Transform derives a Transformer from parent.
func Transform(parent Observable, fn func(any) any) *Transformer {
	return &Transformer{parent: parent, transform: fn}
}

// Named sets the informational name and returns the transformer.
func (t *Transformer) Named(name string) *Transformer {
	t.name = name
	return t
}

// Name implements Observable.
func (t *Transformer) Name() string { return t.name }

// Parent returns the observable this transformer reads from.
func (t *Transformer) Parent() Observable { return t.parent }

// Get implements Observable.
func (t *Transformer) Get() any {
	return t.transform(t.parent.Get())
}

// ObserveChanges implements Observable by subscribing on the parent.
func (t *Transformer) ObserveChanges(fn Listener) {
	if fn == nil {
		return
	}
	t.parent.ObserveChanges(func(v any) { fn(t.transform(v)) })
}

// Observe implements Observable.
func (t *Transformer) Observe(fn Listener) {
	if fn == nil {
		return
	}
	t.parent.Observe(func(v any) { fn(t.transform(v)) })
}

// Trigger implements Observable by triggering the parent.
func (t *Transformer) Trigger() {
	t.parent.Trigger()
}
