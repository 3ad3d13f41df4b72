package memdom

import (
	"github.com/QAddict/ruix/internal/errors"
	"github.com/QAddict/ruix/pkg/host"
)

// Document creates memdom nodes and owns the root html/head/body elements.
type Document struct {
	root      *Node
	head      *Node
	body      *Node
	mutations int
}

// NewDocument creates a document with empty head and body elements.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.newElement("", "html")
	d.head = d.newElement("", "head")
	d.body = d.newElement("", "body")
	d.root.AppendChild(d.head)
	d.root.AppendChild(d.body)
	d.mutations = 0
	return d
}

// Root returns the html element.
func (d *Document) Root() *Node { return d.root }

// Head returns the head element.
func (d *Document) Head() *Node { return d.head }

// Body returns the body element.
func (d *Document) Body() *Node { return d.body }

// Mutations returns the number of structural mutations (insertions and
// removals of children) performed on nodes of this document.
func (d *Document) Mutations() int { return d.mutations }

// ResetMutations sets the mutation counter back to zero.
func (d *Document) ResetMutations() { d.mutations = 0 }

// CreateElement implements host.Document.
func (d *Document) CreateElement(tag string) host.Node {
	return d.newElement("", tag)
}

// CreateElementNS implements host.Document.
func (d *Document) CreateElementNS(namespace, tag string) host.Node {
	if namespace == host.NamespaceHTML {
		namespace = ""
	}
	return d.newElement(namespace, tag)
}

// CreateText implements host.Document.
func (d *Document) CreateText(text string) host.Node {
	return &Node{doc: d, kind: host.TextNode, text: text}
}

// CreateFragment implements host.Document.
func (d *Document) CreateFragment() host.Node {
	return &Node{doc: d, kind: host.FragmentNode}
}

func (d *Document) newElement(namespace, tag string) *Node {
	return &Node{doc: d, kind: host.ElementNode, tag: tag, namespace: namespace}
}

type pair struct {
	name  string
	value string
}

// Node is a memdom node. Children form a doubly linked list.
type Node struct {
	doc       *Document
	kind      host.NodeType
	tag       string
	namespace string
	text      string

	parent      *Node
	first, last *Node
	prev, next  *Node

	attrs     []pair
	styles    []pair
	fields    map[string]any
	listeners map[string][]func(host.Event)
}

var _ host.Node = (*Node)(nil)

// Type implements host.Node.
func (n *Node) Type() host.NodeType { return n.kind }

// Tag implements host.Node.
func (n *Node) Tag() string { return n.tag }

// Namespace returns the element namespace, "" for HTML.
func (n *Node) Namespace() string { return n.namespace }

// Parent implements host.Node.
func (n *Node) Parent() host.Node { return wrap(n.parent) }

// FirstChild implements host.Node.
func (n *Node) FirstChild() host.Node { return wrap(n.first) }

// LastChild implements host.Node.
func (n *Node) LastChild() host.Node { return wrap(n.last) }

// NextSibling implements host.Node.
func (n *Node) NextSibling() host.Node { return wrap(n.next) }

// PreviousSibling implements host.Node.
func (n *Node) PreviousSibling() host.Node { return wrap(n.prev) }

// wrap avoids returning a typed nil inside a host.Node.
func wrap(n *Node) host.Node {
	if n == nil {
		return nil
	}
	return n
}

// Children returns the child nodes in order.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.first; c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}

// AppendChild implements host.Node.
func (n *Node) AppendChild(child host.Node) {
	n.InsertBefore(child, nil)
}

// InsertBefore implements host.Node. It panics with an R002 error when ref
// is not a child of n or a node belongs to another implementation.
func (n *Node) InsertBefore(child, ref host.Node) {
	c := mustNode(child)
	var r *Node
	if ref != nil {
		r = mustNode(ref)
		if r.parent != n {
			panic(errors.New("R002").WithDetail("reference node is not a child of this node"))
		}
	}

	if c.kind == host.FragmentNode {
		for c.first != nil {
			n.InsertBefore(c.first, ref)
		}
		return
	}
	if c == r {
		return
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			panic(errors.New("R002").WithDetail("cannot insert a node into its own subtree"))
		}
	}

	c.detach()
	c.parent = n
	c.next = r
	if r == nil {
		c.prev = n.last
		if n.last != nil {
			n.last.next = c
		} else {
			n.first = c
		}
		n.last = c
	} else {
		c.prev = r.prev
		if r.prev != nil {
			r.prev.next = c
		} else {
			n.first = c
		}
		r.prev = c
	}
	n.doc.mutations++
}

// RemoveChild implements host.Node. It panics with an R002 error when child
// is not a child of n.
func (n *Node) RemoveChild(child host.Node) {
	c := mustNode(child)
	if c.parent != n {
		panic(errors.New("R002").WithDetail("node is not a child of this node"))
	}
	c.detach()
}

// ReplaceChild implements host.Node.
func (n *Node) ReplaceChild(newChild, oldChild host.Node) {
	o := mustNode(oldChild)
	if o.parent != n {
		panic(errors.New("R002").WithDetail("node is not a child of this node"))
	}
	if Same(newChild, oldChild) {
		return
	}
	n.InsertBefore(newChild, o)
	n.RemoveChild(o)
}

// Remove detaches n from its parent, if any.
func (n *Node) Remove() {
	n.detach()
}

func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		p.first = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		p.last = n.prev
	}
	n.parent, n.prev, n.next = nil, nil, nil
	p.doc.mutations++
}

// Text implements host.Node. For elements and fragments it returns the
// concatenated text of all descendants, like textContent.
func (n *Node) Text() string {
	if n.kind == host.TextNode {
		return n.text
	}
	var s string
	for c := n.first; c != nil; c = c.next {
		s += c.Text()
	}
	return s
}

// SetText implements host.Node. On elements it replaces all children with a
// single text node.
func (n *Node) SetText(text string) {
	if n.kind == host.TextNode {
		n.text = text
		return
	}
	for n.first != nil {
		n.first.detach()
	}
	if text != "" {
		n.AppendChild(n.doc.CreateText(text))
	}
}

// Attribute implements host.Node.
func (n *Node) Attribute(name string) (string, bool) {
	if name == "style" && len(n.styles) > 0 {
		return styleString(n.styles), true
	}
	for _, a := range n.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// SetAttribute implements host.Node.
func (n *Node) SetAttribute(name, value string) {
	n.attrs = setPair(n.attrs, name, value)
}

// RemoveAttribute implements host.Node.
func (n *Node) RemoveAttribute(name string) {
	n.attrs = removePair(n.attrs, name)
	if name == "style" {
		n.styles = nil
	}
}

// Attributes returns the attribute names in the order they were first set.
func (n *Node) Attributes() []string {
	names := make([]string, len(n.attrs))
	for i, a := range n.attrs {
		names[i] = a.name
	}
	return names
}

// Style implements host.Node.
func (n *Node) Style(property string) string {
	for _, s := range n.styles {
		if s.name == property {
			return s.value
		}
	}
	return ""
}

// SetStyle implements host.Node.
func (n *Node) SetStyle(property, value string) {
	n.styles = setPair(n.styles, property, value)
}

// RemoveStyle implements host.Node.
func (n *Node) RemoveStyle(property string) {
	n.styles = removePair(n.styles, property)
}

// Field implements host.Node.
func (n *Node) Field(name string) any {
	return n.fields[name]
}

// SetField implements host.Node.
func (n *Node) SetField(name string, value any) {
	if n.fields == nil {
		n.fields = make(map[string]any)
	}
	n.fields[name] = value
}

// AddEventListener implements host.Node.
func (n *Node) AddEventListener(event string, fn func(host.Event)) {
	if fn == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]func(host.Event))
	}
	n.listeners[event] = append(n.listeners[event], fn)
}

// Listeners returns the number of listeners registered for event.
func (n *Node) Listeners(event string) int {
	return len(n.listeners[event])
}

// Dispatch delivers a new event of the given type to n's listeners, in
// registration order, and returns it. Events do not bubble.
func (n *Node) Dispatch(eventType string, fields map[string]any) *Event {
	e := &Event{typ: eventType, fields: fields}
	for _, fn := range append([]func(host.Event){}, n.listeners[eventType]...) {
		fn(e)
	}
	return e
}

// Same implements host.Node.
func (n *Node) Same(other host.Node) bool {
	o, ok := other.(*Node)
	return ok && o == n
}

// Same reports whether a and b are the same node.
func Same(a, b host.Node) bool {
	return host.Same(a, b)
}

func mustNode(n host.Node) *Node {
	m, ok := n.(*Node)
	if !ok || m == nil {
		panic(errors.New("R002").WithDetailf("%T is not a memdom node", n))
	}
	return m
}

func setPair(pairs []pair, name, value string) []pair {
	for i := range pairs {
		if pairs[i].name == name {
			pairs[i].value = value
			return pairs
		}
	}
	return append(pairs, pair{name, value})
}

func removePair(pairs []pair, name string) []pair {
	for i := range pairs {
		if pairs[i].name == name {
			return append(pairs[:i], pairs[i+1:]...)
		}
	}
	return pairs
}

// Event is a memdom event.
type Event struct {
	typ       string
	fields    map[string]any
	prevented bool
}

var _ host.Event = (*Event)(nil)

// NewEvent creates an event, for listeners invoked directly in tests.
func NewEvent(eventType string, fields map[string]any) *Event {
	return &Event{typ: eventType, fields: fields}
}

// Type implements host.Event.
func (e *Event) Type() string { return e.typ }

// PreventDefault implements host.Event.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented implements host.Event.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Field implements host.Event.
func (e *Event) Field(name string) any { return e.fields[name] }
