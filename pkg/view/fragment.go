package view

import (
	"github.com/QAddict/ruix/pkg/host"
)

// Fragment builds a host fragment. Once the fragment is inserted its
// children move to the new parent and the fragment is empty again.
type Fragment struct {
	*Content
}

// NewFragment creates a fragment holding items.
func NewFragment(doc host.Document, items ...any) *Fragment {
	f := &Fragment{Content: NewContent(doc, doc.CreateFragment())}
	return f.Add(items...)
}

// Add appends items. Nil items are skipped.
func (f *Fragment) Add(items ...any) *Fragment {
	for _, it := range flatten(items) {
		f.node.AppendChild(NodeOf(f.doc, it))
	}
	return f
}

// Clear removes every child.
func (f *Fragment) Clear() {
	for c := f.node.FirstChild(); c != nil; c = f.node.FirstChild() {
		f.node.RemoveChild(c)
	}
}

// DynamicFragment is a region bracketed by two empty text markers. Content
// is always inserted before the end marker, so the region keeps working
// after the fragment itself has been inserted into a parent.
type DynamicFragment struct {
	*Fragment
	start host.Node
	end   host.Node
}

// NewDynamicFragment creates an empty region.
func NewDynamicFragment(doc host.Document) *DynamicFragment {
	d := &DynamicFragment{
		Fragment: &Fragment{Content: NewContent(doc, doc.CreateFragment())},
		start:    doc.CreateText(""),
		end:      doc.CreateText(""),
	}
	d.node.AppendChild(d.start)
	d.node.AppendChild(d.end)
	return d
}

// Start returns the start marker.
func (d *DynamicFragment) Start() host.Node { return d.start }

// End returns the end marker.
func (d *DynamicFragment) End() host.Node { return d.end }

// Add inserts items before the end marker.
func (d *DynamicFragment) Add(items ...any) *DynamicFragment {
	p := d.end.Parent()
	for _, it := range flatten(items) {
		p.InsertBefore(NodeOf(d.doc, it), d.end)
	}
	return d
}

// Clear removes everything between the markers.
func (d *DynamicFragment) Clear() {
	d.clear()
}

func (d *DynamicFragment) clear() int {
	p := d.end.Parent()
	n := 0
	for c := d.start.NextSibling(); c != nil && !host.Same(c, d.end); c = d.start.NextSibling() {
		p.RemoveChild(c)
		n++
	}
	return n
}

// Set replaces the region content with items.
func (d *DynamicFragment) Set(items ...any) *DynamicFragment {
	d.clear()
	return d.Add(items...)
}

// Nodes returns the nodes currently between the markers.
func (d *DynamicFragment) Nodes() []host.Node {
	var out []host.Node
	for c := d.start.NextSibling(); c != nil && !host.Same(c, d.end); c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}
