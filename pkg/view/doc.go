// Package view binds host tree nodes to observables.
//
// Single-node slots (text, attributes, styles, node fields) are bound with
// Observe and updated in place. Ordered collections and other generated
// content live in dynamic regions: a pair of empty text nodes, the boundary
// markers, bracket the region and everything strictly between them is the
// region's current content. The markers never move.
//
// # Collections
//
// Each renders a collection in one of two strategies:
//
//   - Full replace (no key function): every notification removes all nodes
//     between the markers and builds a fresh node, with a fresh per-item
//     cell, for every item. State attached to an item's node or cell does
//     not survive an update.
//   - Keyed reconciliation (WithKey): nodes and per-item cells are cached by
//     key. Known keys get their cell set to the new item, which updates the
//     existing node reactively; unknown keys are built once. A placement
//     pass then moves nodes into order without touching nodes already in
//     place, and removes nodes whose keys disappeared.
//
//	books := model.NewState(nil)
//	table.Add(view.Each(doc, books, func(book *model.State) any {
//	    return row(book)
//	}, view.WithKey(func(b any) any { return b.(Book).ISBN })))
//
// By default the keyed cache forgets keys absent from the latest sequence;
// WithRetainUnseen keeps them so a returning key gets its old node back.
//
// Duplicate keys within one sequence collapse to a single node holding the
// last duplicate's value. Keys that cannot be used as map keys are compared
// by their printed form.
package view
