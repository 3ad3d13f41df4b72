// Package demo builds the bookstore page shown by the CLI and the preview
// server.
package demo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/QAddict/ruix/pkg/command"
	"github.com/QAddict/ruix/pkg/host"
	"github.com/QAddict/ruix/pkg/html"
	"github.com/QAddict/ruix/pkg/memdom"
	"github.com/QAddict/ruix/pkg/model"
	"github.com/QAddict/ruix/pkg/view"
)

//go:embed books.json
var defaultBooks []byte

// Book is one row of the bookstore table.
type Book struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	ISBN   string `json:"ISBN"`
}

// LoadBooks reads a JSON array of books from path, or the built-in list
// when path is empty.
func LoadBooks(path string) ([]any, error) {
	data := defaultBooks
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	return DecodeBooks(data)
}

// DecodeBooks decodes a JSON array of books.
func DecodeBooks(data []byte) ([]any, error) {
	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	items := make([]any, len(books))
	for i, b := range books {
		items[i] = b
	}
	return items, nil
}

// Page holds the cells behind the bookstore page.
type Page struct {
	Title string
	Label *model.State
	Books *model.State
}

// NewPage creates the page state.
func NewPage(title string, books []any) *Page {
	return &Page{
		Title: title,
		Label: model.NewState("Click me").Named("label"),
		Books: model.NewState(books).Named("books"),
	}
}

// States returns the externally writable cells by name.
func (p *Page) States() map[string]model.Settable {
	return map[string]model.Settable{
		p.Label.Name(): p.Label,
		p.Books.Name(): p.Books,
	}
}

// Build builds the page content in doc. Every pass of the book table is
// reported to obs, which may be nil.
func (p *Page) Build(doc host.Document, obs view.Observer) host.Node {
	h := html.New(doc)
	return h.Main(
		h.H1(p.Title),
		h.P("Hello world!"),
		h.Button(p.Label, html.OnClick(command.Set(p.Label, "Clicked"))),
		h.Br(),
		h.Table(h.Tbody(
			h.Tr(h.Th("Author"), h.Th("Title"), h.Th("ISBN")),
			h.Each(p.Books, func(book *model.State) any {
				m := model.NewMirror(book)
				return h.Tr(h.Td(m.Field("author")), h.Td(m.Field("title")), h.Td(m.Field("ISBN")))
			}, view.WithKey(isbn), view.WithName("books"), view.WithObserver(obs)),
		)),
		h.SVG(html.Size(120, 120),
			h.Rect(html.X(10), html.Y(10), html.Size(100, 100), html.Stroke("black"), html.Fill("red")),
			h.Line(html.X1(10), html.Y1(10), html.X2(100), html.Y2(100), html.Stroke("blue")),
			h.Circle(html.CX(55), html.CY(55), html.R(40), html.Fill("green")),
		),
	).Node()
}

// Document builds a complete memdom document around the page.
func (p *Page) Document(obs view.Observer) *memdom.Document {
	doc := memdom.NewDocument()
	h := html.New(doc)
	h.Wrap(doc.Head(),
		h.El("meta", html.Attr("charset", "utf-8")),
		h.El("title", p.Title),
	)
	doc.Body().AppendChild(p.Build(doc, obs))
	return doc
}

func isbn(v any) any {
	if k := model.Slot(v, "ISBN"); k != nil {
		return k
	}
	return v
}
