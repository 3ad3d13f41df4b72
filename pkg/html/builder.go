package html

import (
	"github.com/QAddict/ruix/pkg/host"
	"github.com/QAddict/ruix/pkg/model"
	"github.com/QAddict/ruix/pkg/view"
)

// Builder creates elements in one document.
type Builder struct {
	doc host.Document
}

// New returns a Builder for doc.
func New(doc host.Document) *Builder {
	return &Builder{doc: doc}
}

// Document returns the builder's document.
func (b *Builder) Document() host.Document { return b.doc }

// El creates an element with an arbitrary tag.
func (b *Builder) El(tag string, items ...any) *view.Element {
	return view.El(b.doc, tag, items...)
}

// Wrap returns an element builder for an existing node, adding items to it.
func (b *Builder) Wrap(node host.Node, items ...any) *view.Element {
	return view.NewElement(b.doc, node).Add(items...)
}

// Text creates a text node, bound when v is observable.
func (b *Builder) Text(v any) *view.Content {
	return view.Text(b.doc, v)
}

// Fragment groups items without a wrapping element.
func (b *Builder) Fragment(items ...any) *view.Fragment {
	return view.NewFragment(b.doc, items...)
}

// Each renders a collection. See view.Each.
func (b *Builder) Each(items model.Observable, fn view.ItemFunc, opts ...view.Option) *view.Region {
	return view.Each(b.doc, items, fn, opts...)
}

// Render renders a single value. See view.Render.
func (b *Builder) Render(m model.Observable, fn func(any) any, null func() any) *view.DynamicFragment {
	return view.Render(b.doc, m, fn, null)
}

func (b *Builder) Header(items ...any) *view.Element  { return b.El("header", items...) }
func (b *Builder) Footer(items ...any) *view.Element  { return b.El("footer", items...) }
func (b *Builder) Main(items ...any) *view.Element    { return b.El("main", items...) }
func (b *Builder) Nav(items ...any) *view.Element     { return b.El("nav", items...) }
func (b *Builder) Section(items ...any) *view.Element { return b.El("section", items...) }
func (b *Builder) Div(items ...any) *view.Element     { return b.El("div", items...) }
func (b *Builder) Span(items ...any) *view.Element    { return b.El("span", items...) }
func (b *Builder) A(items ...any) *view.Element       { return b.El("a", items...) }
func (b *Builder) H1(items ...any) *view.Element      { return b.El("h1", items...) }
func (b *Builder) H2(items ...any) *view.Element      { return b.El("h2", items...) }
func (b *Builder) H3(items ...any) *view.Element      { return b.El("h3", items...) }
func (b *Builder) P(items ...any) *view.Element       { return b.El("p", items...) }
func (b *Builder) Pre(items ...any) *view.Element     { return b.El("pre", items...) }
func (b *Builder) Code(items ...any) *view.Element    { return b.El("code", items...) }
func (b *Builder) Strong(items ...any) *view.Element  { return b.El("strong", items...) }
func (b *Builder) Em(items ...any) *view.Element      { return b.El("em", items...) }
func (b *Builder) Small(items ...any) *view.Element   { return b.El("small", items...) }
func (b *Builder) Ul(items ...any) *view.Element      { return b.El("ul", items...) }
func (b *Builder) Ol(items ...any) *view.Element      { return b.El("ol", items...) }
func (b *Builder) Li(items ...any) *view.Element      { return b.El("li", items...) }
func (b *Builder) Table(items ...any) *view.Element   { return b.El("table", items...) }
func (b *Builder) Caption(items ...any) *view.Element { return b.El("caption", items...) }
func (b *Builder) Thead(items ...any) *view.Element   { return b.El("thead", items...) }
func (b *Builder) Tbody(items ...any) *view.Element   { return b.El("tbody", items...) }
func (b *Builder) Tfoot(items ...any) *view.Element   { return b.El("tfoot", items...) }
func (b *Builder) Tr(items ...any) *view.Element      { return b.El("tr", items...) }
func (b *Builder) Th(items ...any) *view.Element      { return b.El("th", items...) }
func (b *Builder) Td(items ...any) *view.Element      { return b.El("td", items...) }
func (b *Builder) Form(items ...any) *view.Element    { return b.El("form", items...) }
func (b *Builder) Label(items ...any) *view.Element   { return b.El("label", items...) }
func (b *Builder) Button(items ...any) *view.Element  { return b.El("button", items...) }
func (b *Builder) Select(items ...any) *view.Element  { return b.El("select", items...) }
func (b *Builder) Option(items ...any) *view.Element  { return b.El("option", items...) }
func (b *Builder) Br() *view.Element                  { return b.El("br") }
func (b *Builder) Hr() *view.Element                  { return b.El("hr") }

// Img creates an image with the given source.
func (b *Builder) Img(src ...any) *view.Element {
	return b.El("img").Set("src", src...)
}
