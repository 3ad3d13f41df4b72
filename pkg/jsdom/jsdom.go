//go:build js && wasm

// Package jsdom implements the host tree contract on the browser DOM through
// syscall/js.
//
//	doc := jsdom.Global()
//	doc.Body().AppendChild(page(doc))
package jsdom

import (
	"syscall/js"

	"github.com/QAddict/ruix/internal/errors"
	"github.com/QAddict/ruix/pkg/host"
	"github.com/QAddict/ruix/pkg/model"
)

// Document wraps a DOM document.
type Document struct {
	v js.Value
}

// Global returns the page's document.
func Global() *Document {
	return &Document{v: js.Global().Get("document")}
}

// Body returns the body element.
func (d *Document) Body() host.Node { return wrap(d.v.Get("body")) }

// Head returns the head element.
func (d *Document) Head() host.Node { return wrap(d.v.Get("head")) }

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) host.Node {
	return wrap(d.v.Call("getElementById", id))
}

func (d *Document) CreateElement(tag string) host.Node {
	return &Node{v: d.v.Call("createElement", tag)}
}

func (d *Document) CreateElementNS(namespace, tag string) host.Node {
	return &Node{v: d.v.Call("createElementNS", namespace, tag)}
}

func (d *Document) CreateText(text string) host.Node {
	return &Node{v: d.v.Call("createTextNode", text)}
}

func (d *Document) CreateFragment() host.Node {
	return &Node{v: d.v.Call("createDocumentFragment")}
}

// Node wraps a DOM node.
type Node struct {
	v     js.Value
	funcs []js.Func
}

// Value returns the underlying JavaScript value.
func (n *Node) Value() js.Value { return n.v }

func wrap(v js.Value) host.Node {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Node{v: v}
}

func unwrap(n host.Node) js.Value {
	if n == nil {
		return js.Null()
	}
	m, ok := n.(*Node)
	if !ok || m == nil {
		panic(errors.New("R002").WithDetailf("%T is not a DOM node", n))
	}
	return m.v
}

// DOM nodeType values.
const (
	domElement  = 1
	domText     = 3
	domFragment = 11
)

func (n *Node) Type() host.NodeType {
	switch n.v.Get("nodeType").Int() {
	case domElement:
		return host.ElementNode
	case domText:
		return host.TextNode
	case domFragment:
		return host.FragmentNode
	}
	return 0
}

func (n *Node) Tag() string {
	if n.Type() != host.ElementNode {
		return ""
	}
	return n.v.Get("localName").String()
}

func (n *Node) Parent() host.Node          { return wrap(n.v.Get("parentNode")) }
func (n *Node) FirstChild() host.Node      { return wrap(n.v.Get("firstChild")) }
func (n *Node) LastChild() host.Node       { return wrap(n.v.Get("lastChild")) }
func (n *Node) NextSibling() host.Node     { return wrap(n.v.Get("nextSibling")) }
func (n *Node) PreviousSibling() host.Node { return wrap(n.v.Get("previousSibling")) }

func (n *Node) AppendChild(child host.Node) {
	n.v.Call("appendChild", unwrap(child))
}

func (n *Node) InsertBefore(child, ref host.Node) {
	n.v.Call("insertBefore", unwrap(child), unwrap(ref))
}

func (n *Node) RemoveChild(child host.Node) {
	n.v.Call("removeChild", unwrap(child))
}

func (n *Node) ReplaceChild(newChild, oldChild host.Node) {
	n.v.Call("replaceChild", unwrap(newChild), unwrap(oldChild))
}

func (n *Node) Text() string {
	return n.v.Get("textContent").String()
}

func (n *Node) SetText(text string) {
	n.v.Set("textContent", text)
}

func (n *Node) Attribute(name string) (string, bool) {
	v := n.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (n *Node) SetAttribute(name, value string) { n.v.Call("setAttribute", name, value) }
func (n *Node) RemoveAttribute(name string)     { n.v.Call("removeAttribute", name) }

func (n *Node) Style(property string) string {
	return n.v.Get("style").Call("getPropertyValue", property).String()
}

func (n *Node) SetStyle(property, value string) {
	n.v.Get("style").Call("setProperty", property, value)
}

func (n *Node) RemoveStyle(property string) {
	n.v.Get("style").Call("removeProperty", property)
}

// Field returns a DOM property converted to a Go value: strings, numbers
// and booleans convert, null and undefined become nil, other values stay
// js.Value.
func (n *Node) Field(name string) any {
	return goValue(n.v.Get(name))
}

func (n *Node) SetField(name string, value any) {
	n.v.Set(name, jsValue(value))
}

// AddEventListener registers fn. The js.Func wrapper lives as long as the
// Node value that registered it.
func (n *Node) AddEventListener(event string, fn func(host.Event)) {
	if fn == nil {
		return
	}
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(&Event{v: args[0]})
		return nil
	})
	n.funcs = append(n.funcs, f)
	n.v.Call("addEventListener", event, f)
}

func (n *Node) Same(other host.Node) bool {
	o, ok := other.(*Node)
	return ok && o != nil && o.v.Equal(n.v)
}

// Event wraps a DOM event.
type Event struct {
	v js.Value
}

func (e *Event) Type() string           { return e.v.Get("type").String() }
func (e *Event) PreventDefault()        { e.v.Call("preventDefault") }
func (e *Event) DefaultPrevented() bool { return e.v.Get("defaultPrevented").Bool() }
func (e *Event) Field(name string) any  { return goValue(e.v.Get(name)) }

// jsValue converts v for js.ValueOf, falling back to its text for types
// ValueOf rejects.
func jsValue(v any) any {
	switch v.(type) {
	case nil, js.Value, js.Func, bool, string, []any, map[string]any,
		int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return v
	}
	return model.String(v)
}

func goValue(v js.Value) any {
	switch v.Type() {
	case js.TypeNull, js.TypeUndefined:
		return nil
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeNumber:
		return v.Float()
	case js.TypeString:
		return v.String()
	}
	return v
}
