package demo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/QAddict/ruix/pkg/memdom"
)

func TestLoadBooks(t *testing.T) {
	books, err := LoadBooks("")
	if err != nil {
		t.Fatalf("LoadBooks() error: %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("len(books) = %d, want 3", len(books))
	}
	if b := books[0].(Book); b.Title != "Dune" || b.ISBN != "978-0441172719" {
		t.Errorf("books[0] = %+v", b)
	}

	path := filepath.Join(t.TempDir(), "books.json")
	if err := os.WriteFile(path, []byte(`[{"author":"A","title":"T","ISBN":"1"}]`), 0644); err != nil {
		t.Fatal(err)
	}
	books, err = LoadBooks(path)
	if err != nil || len(books) != 1 {
		t.Fatalf("LoadBooks(file) = %v, %v", books, err)
	}

	if _, err := DecodeBooks([]byte("{")); err == nil {
		t.Error("DecodeBooks() accepted invalid JSON")
	}
}

func TestPageDocument(t *testing.T) {
	books, _ := LoadBooks("")
	page := NewPage("Bookstore", books)
	doc := page.Document(nil)

	var sb strings.Builder
	if err := memdom.RenderDocument(&sb, doc, memdom.RenderOptions{}); err != nil {
		t.Fatalf("RenderDocument() error: %v", err)
	}
	out := sb.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<meta charset="utf-8">`,
		"<title>Bookstore</title>",
		"<h1>Bookstore</h1>",
		"<button>Click me</button>",
		"<tr><td>Frank Herbert</td><td>Dune</td><td>978-0441172719</td></tr>",
		`<circle cx="55" cy="55" r="40" fill="green"></circle>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document does not contain %s", want)
		}
	}
}

func TestPageInteraction(t *testing.T) {
	books, _ := LoadBooks("")
	page := NewPage("Bookstore", books)
	doc := page.Document(nil)

	var button *memdom.Node
	var walk func(n *memdom.Node)
	walk = func(n *memdom.Node) {
		if n.Tag() == "button" {
			button = n
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(doc.Body())
	if button == nil {
		t.Fatal("no button rendered")
	}
	button.Dispatch("click", nil)
	if got := button.Text(); got != "Clicked" {
		t.Errorf("button text = %q, want %q", got, "Clicked")
	}

	page.Books.Set([]any{
		map[string]any{"author": "Frank Herbert", "title": "Dune Messiah", "ISBN": "978-0441172719"},
	})
	body := memdom.InnerHTML(doc.Body())
	if !strings.Contains(body, "<td>Dune Messiah</td>") || strings.Contains(body, "Emma") {
		t.Errorf("body after update = %s", body)
	}

	if _, ok := page.States()["books"]; !ok {
		t.Error(`States() has no "books" entry`)
	}
}
