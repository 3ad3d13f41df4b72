package memdom

import (
	"bytes"
	"io"
	"strings"

	"github.com/QAddict/ruix/pkg/host"
)

// RenderOptions configures HTML serialization.
type RenderOptions struct {
	// Pretty puts child elements on their own indented lines when an
	// element has no text content of its own. Intended for development.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// OuterHTML serializes n and its subtree.
func OuterHTML(n host.Node) string {
	var buf bytes.Buffer
	_ = Render(&buf, n, RenderOptions{})
	return buf.String()
}

// InnerHTML serializes the children of n.
func InnerHTML(n host.Node) string {
	var buf bytes.Buffer
	r := renderer{w: &buf}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.node(c, "", 0)
	}
	return buf.String()
}

// Render writes the HTML serialization of n to w.
func Render(w io.Writer, n host.Node, opts RenderOptions) error {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	r := renderer{w: w, opts: opts}
	r.node(n, "", 0)
	return r.err
}

// RenderDocument writes a complete HTML page: doctype plus the html element.
func RenderDocument(w io.Writer, d *Document, opts RenderOptions) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := Render(w, d.Root(), opts); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

type renderer struct {
	w    io.Writer
	opts RenderOptions
	err  error
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *renderer) node(n host.Node, parentTag string, depth int) {
	switch n.Type() {
	case host.TextNode:
		if rawTextElements[parentTag] {
			r.write(n.Text())
		} else {
			r.write(escapeHTML(n.Text()))
		}
	case host.FragmentNode:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			r.node(c, parentTag, depth)
		}
	case host.ElementNode:
		r.element(n, depth)
	}
}

func (r *renderer) element(n host.Node, depth int) {
	tag := n.Tag()
	r.write("<" + tag)
	r.attributes(n)
	r.write(">")

	if isVoid(n) {
		return
	}

	pretty := r.opts.Pretty && n.FirstChild() != nil && !hasText(n)
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if pretty {
			if c.Type() == host.TextNode {
				continue
			}
			r.write("\n" + strings.Repeat(r.opts.Indent, depth+1))
		}
		r.node(c, tag, depth+1)
	}
	if pretty {
		r.write("\n" + strings.Repeat(r.opts.Indent, depth))
	}
	r.write("</" + tag + ">")
}

func (r *renderer) attributes(n host.Node) {
	m, ok := n.(*Node)
	if !ok {
		return
	}
	styleDone := false
	for _, a := range m.attrs {
		value := a.value
		if a.name == "style" && len(m.styles) > 0 {
			value = styleString(m.styles)
			styleDone = true
		}
		r.write(" " + a.name + `="` + escapeAttr(value) + `"`)
	}
	if !styleDone && len(m.styles) > 0 {
		r.write(` style="` + escapeAttr(styleString(m.styles)) + `"`)
	}
}

func isVoid(n host.Node) bool {
	if m, ok := n.(*Node); ok && m.namespace != "" {
		return false
	}
	return voidElements[n.Tag()]
}

// hasText reports whether n has a text child with visible content.
func hasText(n host.Node) bool {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() == host.TextNode && strings.TrimSpace(c.Text()) != "" {
			return true
		}
	}
	return false
}

func styleString(styles []pair) string {
	parts := make([]string, len(styles))
	for i, s := range styles {
		parts[i] = s.name + ": " + s.value
	}
	return strings.Join(parts, "; ")
}
