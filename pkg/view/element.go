package view

import (
	"strings"

	"github.com/QAddict/ruix/internal/errors"
	"github.com/QAddict/ruix/pkg/host"
	"github.com/QAddict/ruix/pkg/model"
)

// Modifier configures an element. Modifiers passed to Add are applied
// instead of being appended as content.
type Modifier func(*Element)

// Handler handles an event dispatched to an element.
type Handler func(el *Element, e host.Event)

// Element builds a host element.
type Element struct {
	*Content
	classes  []any
	classGen int
}

// NewElement wraps an existing element node.
func NewElement(doc host.Document, node host.Node) *Element {
	return &Element{Content: NewContent(doc, node)}
}

// El creates an HTML element with the given tag and content.
func El(doc host.Document, tag string, items ...any) *Element {
	return NewElement(doc, doc.CreateElement(tag)).Add(items...)
}

// ElNS creates an element in namespace ns.
func ElNS(doc host.Document, ns, tag string, items ...any) *Element {
	return NewElement(doc, doc.CreateElementNS(ns, tag)).Add(items...)
}

// Add appends content and applies modifiers, in argument order.
func (e *Element) Add(items ...any) *Element {
	for _, it := range flatten(items) {
		switch m := it.(type) {
		case Modifier:
			m(e)
		case func(*Element):
			m(e)
		default:
			e.node.AppendChild(NodeOf(e.doc, it))
		}
	}
	return e
}

// Apply calls fn with the element.
func (e *Element) Apply(fn func(*Element)) *Element {
	fn(e)
	return e
}

// Clear removes every child node.
func (e *Element) Clear() {
	for c := e.node.FirstChild(); c != nil; c = e.node.FirstChild() {
		e.node.RemoveChild(c)
	}
}

// Set sets attribute name. Several args are concatenated; observable args
// keep the attribute bound. A nil value removes the attribute.
func (e *Element) Set(name string, args ...any) *Element {
	bind(args, func(v any) {
		if v == nil {
			e.node.RemoveAttribute(name)
			return
		}
		e.node.SetAttribute(name, model.String(v))
	})
	return e
}

// CSS sets style property prop the same way Set sets attributes.
func (e *Element) CSS(prop string, args ...any) *Element {
	bind(args, func(v any) {
		if v == nil {
			e.node.RemoveStyle(prop)
			return
		}
		e.node.SetStyle(prop, model.String(v))
	})
	return e
}

// SetProperty sets a field of the node object.
func (e *Element) SetProperty(name string, args ...any) *Element {
	bind(args, func(v any) { e.node.SetField(name, v) })
	return e
}

// Property returns a field of the node object.
func (e *Element) Property(name string) any {
	return e.node.Field(name)
}

// ID sets the id attribute.
func (e *Element) ID(args ...any) *Element {
	return e.Set("id", args...)
}

// Class replaces the class list. Values are joined with spaces; nil values
// and empty strings are left out.
func (e *Element) Class(values ...any) *Element {
	e.classes = append([]any(nil), values...)
	e.bindClasses()
	return e
}

// AddClass extends the class list.
func (e *Element) AddClass(values ...any) *Element {
	e.classes = append(e.classes, values...)
	e.bindClasses()
	return e
}

// bindClasses rebinds the class attribute. Listeners of earlier bindings
// stay registered but stop writing once a newer binding exists.
func (e *Element) bindClasses() {
	e.classGen++
	gen := e.classGen
	apply := func(v any) {
		if gen != e.classGen {
			return
		}
		if v == "" {
			e.node.RemoveAttribute("class")
			return
		}
		e.node.SetAttribute("class", v.(string))
	}
	items := e.classes
	for _, it := range items {
		if model.IsObservable(it) {
			model.Function(func(args ...any) any { return classList(args) }, items...).Observe(apply)
			return
		}
	}
	apply(classList(items))
}

func classList(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		if s := model.String(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// On registers handler for event and prevents the default action once the
// handler has run.
func (e *Element) On(event string, handler any) *Element {
	return e.Listen(event, handler, true)
}

// Listen registers handler for event. handler is anything HandlerOf
// accepts.
func (e *Element) Listen(event string, handler any, preventDefault bool) *Element {
	h := HandlerOf(handler)
	e.node.AddEventListener(event, func(ev host.Event) {
		h(e, ev)
		if preventDefault {
			ev.PreventDefault()
		}
	})
	return e
}

// HandlerOf adapts v to a Handler. It accepts a Handler, a func(*Element,
// host.Event), a func(host.Event), a func() or any value with a Run method
// such as a command. It panics with an R002 error for anything else.
func HandlerOf(v any) Handler {
	switch h := v.(type) {
	case Handler:
		return h
	case func(*Element, host.Event):
		return h
	case func(host.Event):
		return func(_ *Element, ev host.Event) { h(ev) }
	case func():
		return func(*Element, host.Event) { h() }
	case interface{ Run() }:
		return func(*Element, host.Event) { h.Run() }
	}
	panic(errors.New("R002").WithDetailf("unsupported event handler %T", v))
}

// bind applies fn to the value of args now and, when that value is
// observable, on every change.
func bind(args []any, fn func(any)) {
	if len(args) == 0 {
		return
	}
	v := args[0]
	if len(args) > 1 {
		v = model.Concat(args...)
	}
	if o, ok := v.(model.Observable); ok {
		o.Observe(fn)
		return
	}
	fn(v)
}
