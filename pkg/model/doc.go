// Package model provides the reactive object model of RUIX.
//
// A value is described once as an observable cell and other observables are
// derived from it through pure transformations. Tree bindings (see package
// view) subscribe to cells and are updated synchronously whenever a cell is
// set or triggered.
//
// # Cells
//
// State is the leaf cell: it owns a value and an ordered list of listeners.
// Set assigns and then triggers; Trigger calls every listener, in
// registration order, with the current value, whether or not it changed.
//
//	count := model.NewState(5)
//	double := model.Transform(count, func(v any) any { return v.(int) * 2 })
//	double.Observe(func(v any) { fmt.Println(v) }) // prints 10
//	count.Set(3)                                   // prints 6
//
// Transformer is a read-only projection of a parent observable. It has no
// listener list of its own: ObserveChanges subscribes on the parent, so every
// transformer derived from one parent shares that parent's fan-out.
//
// # Structural navigation
//
// Property reads a named slot of its parent's value and writes it in place.
// A write through any property triggers the parent, which notifies every
// listener of every property of that parent (coarse invalidation).
// Mirror materializes properties lazily, so views can bind to slots of a
// value that does not exist yet:
//
//	person := model.NewMirror(nil)
//	first := person.Field("firstName") // stable cell, value nil for now
//	person.Set(map[string]any{"firstName": "John"})
//	first.Get() // "John"
//
// # Combinators
//
// Arguments merges several observables and plain values into one tuple cell;
// Function and Join derive values from such a tuple.
//
// # Concurrency
//
// Notification is synchronous and depth-first. Cells guard their own state
// with a mutex and never hold it while calling listeners, so a listener may
// set the cell it observes (the nested pass completes first). A listener that
// unconditionally re-sets the cell it observes recurses forever; this is the
// caller's responsibility. Listeners cannot be removed.
package model
