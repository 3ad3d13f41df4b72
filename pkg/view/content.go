package view

import (
	"github.com/QAddict/ruix/internal/errors"
	"github.com/QAddict/ruix/pkg/host"
	"github.com/QAddict/ruix/pkg/model"
)

// Noder is implemented by builders that wrap a host node.
type Noder interface {
	Node() host.Node
}

// Content wraps a host node.
type Content struct {
	doc  host.Document
	node host.Node
}

// NewContent wraps node. It panics with an R002 error when node is nil.
func NewContent(doc host.Document, node host.Node) *Content {
	if node == nil {
		panic(errors.New("R002").WithDetail("content requires a host node, got nil"))
	}
	return &Content{doc: doc, node: node}
}

// Node implements Noder.
func (c *Content) Node() host.Node { return c.node }

// Document returns the document the node belongs to.
func (c *Content) Document() host.Document { return c.doc }

// Remove detaches the node from its parent.
func (c *Content) Remove() *Content {
	if p := c.node.Parent(); p != nil {
		p.RemoveChild(c.node)
	}
	return c
}

// Replace puts replacement in place of the node.
func (c *Content) Replace(replacement any) *Content {
	if p := c.node.Parent(); p != nil {
		p.ReplaceChild(NodeOf(c.doc, replacement), c.node)
	}
	return c
}

// Prepend inserts items before the node. Nil items are skipped.
func (c *Content) Prepend(items ...any) *Content {
	p := c.node.Parent()
	if p == nil {
		return c
	}
	for _, it := range flatten(items) {
		p.InsertBefore(NodeOf(c.doc, it), c.node)
	}
	return c
}

// Text creates a text node. An observable value is bound: the node shows
// its current value and follows every change.
func Text(doc host.Document, value any) *Content {
	return NewContent(doc, textNode(doc, value))
}

// NodeOf converts v into a host node: builders yield their node, host nodes
// are used as is, observables become bound text nodes and anything else a
// static text node. It panics with an R002 error when a builder wraps no
// node.
func NodeOf(doc host.Document, v any) host.Node {
	switch t := v.(type) {
	case host.Node:
		return t
	case Noder:
		n := t.Node()
		if n == nil {
			panic(errors.New("R002").WithDetailf("%T wraps no host node", v))
		}
		return n
	}
	return textNode(doc, v)
}

func textNode(doc host.Document, v any) host.Node {
	o, ok := v.(model.Observable)
	if !ok {
		return doc.CreateText(model.String(v))
	}
	n := doc.CreateText("")
	o.Observe(func(value any) { n.SetText(model.String(value)) })
	return n
}

// flatten drops nil items and expands a single []any argument, so both
// Add(a, b) and Add([]any{a, b}) work.
func flatten(items []any) []any {
	if len(items) == 1 {
		if list, ok := items[0].([]any); ok {
			items = list
		}
	}
	out := make([]any, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// Remove returns a command detaching c.
func Remove(c *Content) func() {
	return func() { c.Remove() }
}

// Clear returns a command removing all content of a builder.
func Clear(c interface{ Clear() }) func() {
	return func() { c.Clear() }
}
