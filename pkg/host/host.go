// Package host defines the document tree contract the view layer renders
// into.
//
// The view engine and every builder on top of it are expressed purely in
// terms of these interfaces and add no tree manipulation of their own.
// Package memdom provides an in-memory implementation; package jsdom binds
// the browser DOM through syscall/js.
package host

// Namespace URIs for CreateElementNS.
const (
	NamespaceHTML = "http://www.w3.org/1999/xhtml"
	NamespaceSVG  = "http://www.w3.org/2000/svg"
)

// NodeType discriminates host nodes.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
	FragmentNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case FragmentNode:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Document creates nodes.
type Document interface {
	CreateElement(tag string) Node
	CreateElementNS(namespace, tag string) Node
	CreateText(text string) Node
	// CreateFragment returns a detached container whose children are moved,
	// not the fragment itself, when it is appended or inserted.
	CreateFragment() Node
}

// Node is a node of the host tree.
//
// Navigation methods return nil when there is no such node. Inserting a node
// that is already attached elsewhere moves it. Inserting a fragment moves
// its children, in order, and leaves it empty.
type Node interface {
	Type() NodeType

	// Tag returns the element tag name, or "" for other nodes.
	Tag() string

	Parent() Node
	FirstChild() Node
	LastChild() Node
	NextSibling() Node
	PreviousSibling() Node

	AppendChild(child Node)
	// InsertBefore inserts child before ref. A nil ref appends.
	InsertBefore(child, ref Node)
	RemoveChild(child Node)
	ReplaceChild(newChild, oldChild Node)

	// Text and SetText access a text node's value.
	Text() string
	SetText(text string)

	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	Style(property string) string
	SetStyle(property, value string)
	RemoveStyle(property string)

	// Field and SetField access arbitrary named properties of the node
	// object (value, checked, ...), as opposed to markup attributes.
	Field(name string) any
	SetField(name string, value any)

	AddEventListener(event string, fn func(Event))

	// Same reports whether other is the same host node.
	Same(other Node) bool
}

// Event is a host event delivered to a listener.
type Event interface {
	Type() string
	PreventDefault()
	DefaultPrevented() bool
	// Field returns a named property of the event (key, ctrlKey, ...).
	Field(name string) any
}

// Same reports whether a and b are the same host node. Nil only equals nil.
func Same(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Same(b)
}
