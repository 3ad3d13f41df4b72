package html

import (
	"testing"

	"github.com/QAddict/ruix/pkg/command"
	"github.com/QAddict/ruix/pkg/memdom"
	"github.com/QAddict/ruix/pkg/model"
	"github.com/QAddict/ruix/pkg/view"
)

func TestBuilderRendersMarkup(t *testing.T) {
	doc := memdom.NewDocument()
	h := New(doc)
	label := model.NewState("Click me")
	btn := h.Button(label, Class("primary"), OnClick(command.Set(label, "Clicked")))
	page := h.Div(h.H1("RUIX"), h.P("Hello ", h.Strong("world")), btn)

	want := `<div><h1>RUIX</h1><p>Hello <strong>world</strong></p><button class="primary">Click me</button></div>`
	if got := memdom.OuterHTML(page.Node()); got != want {
		t.Errorf("OuterHTML() = %s, want %s", got, want)
	}

	btn.Node().(*memdom.Node).Dispatch("click", nil)
	if got := btn.Node().Text(); got != "Clicked" {
		t.Errorf("button text = %q, want %q", got, "Clicked")
	}
}

func TestEachTable(t *testing.T) {
	doc := memdom.NewDocument()
	h := New(doc)
	books := model.NewState([]any{
		map[string]any{"author": "Herbert", "title": "Dune"},
	})
	table := h.Table(h.Tbody(
		h.Tr(h.Th("Author"), h.Th("Title")),
		h.Each(books, func(book *model.State) any {
			m := model.NewMirror(book)
			return h.Tr(h.Td(m.Field("author")), h.Td(m.Field("title")))
		}),
	))

	want := `<table><tbody><tr><th>Author</th><th>Title</th></tr><tr><td>Herbert</td><td>Dune</td></tr></tbody></table>`
	if got := memdom.OuterHTML(table.Node()); got != want {
		t.Errorf("OuterHTML() = %s, want %s", got, want)
	}

	books.Set(nil)
	want = `<table><tbody><tr><th>Author</th><th>Title</th></tr></tbody></table>`
	if got := memdom.OuterHTML(table.Node()); got != want {
		t.Errorf("OuterHTML() after clear = %s, want %s", got, want)
	}
}

func TestDisabledAndDisplay(t *testing.T) {
	doc := memdom.NewDocument()
	h := New(doc)
	busy := model.NewState(false)
	shown := model.NewState(true)
	btn := h.Button("Save", Disabled(busy), Display(shown))

	if _, ok := btn.Node().Attribute("disabled"); ok {
		t.Error("disabled set while not busy")
	}
	busy.Set(true)
	if _, ok := btn.Node().Attribute("disabled"); !ok {
		t.Error("disabled not set while busy")
	}
	shown.Set(false)
	if got := btn.Node().Style("display"); got != "none" {
		t.Errorf("display = %q, want %q", got, "none")
	}
	shown.Set("inline-block")
	if got := btn.Node().Style("display"); got != "inline-block" {
		t.Errorf("display = %q, want %q", got, "inline-block")
	}
}

func TestEditText(t *testing.T) {
	doc := memdom.NewDocument()
	h := New(doc)
	name := model.NewState("Ann").Named("name")
	in := h.InputText(name)
	node := in.Node().(*memdom.Node)

	if got, _ := node.Attribute("name"); got != "name" {
		t.Errorf("name = %q, want %q", got, "name")
	}
	if got := node.Field("value"); got != "Ann" {
		t.Errorf("value = %v, want %q", got, "Ann")
	}

	name.Set("Bob")
	if got := node.Field("value"); got != "Bob" {
		t.Errorf("value after Set = %v, want %q", got, "Bob")
	}

	node.SetField("value", "Cid")
	node.Dispatch("change", nil)
	if got := name.Get(); got != "Cid" {
		t.Errorf("model after change = %v, want %q", got, "Cid")
	}
}

func TestEditCheckbox(t *testing.T) {
	doc := memdom.NewDocument()
	h := New(doc)
	agree := model.NewState(false)
	node := h.Checkbox(agree).Node().(*memdom.Node)

	if got := node.Field("checked"); got != false {
		t.Errorf("checked = %v, want false", got)
	}
	node.SetField("checked", true)
	node.Dispatch("change", nil)
	if got := agree.Get(); got != true {
		t.Errorf("model = %v, want true", got)
	}
}

func TestEditRadio(t *testing.T) {
	doc := memdom.NewDocument()
	h := New(doc)
	size := model.NewState("m")
	small := h.Radio(size, "s").Node().(*memdom.Node)
	medium := h.Radio(size, "m").Node().(*memdom.Node)

	if small.Field("checked") != false || medium.Field("checked") != true {
		t.Errorf("checked = %v/%v, want false/true", small.Field("checked"), medium.Field("checked"))
	}

	small.SetField("checked", true)
	small.Dispatch("change", nil)
	if got := size.Get(); got != "s" {
		t.Errorf("model = %v, want %q", got, "s")
	}
	if medium.Field("checked") != false {
		t.Error("medium still checked")
	}
}

func TestSVG(t *testing.T) {
	doc := memdom.NewDocument()
	h := New(doc)
	pic := h.SVG(Size(120, 120),
		h.Rect(X(10), Y(10), Size(100, 100), Stroke("black"), Fill("red")),
		h.Circle(CX(55), CY(55), R(40), Fill("green")),
	)

	want := `<svg width="120" height="120">` +
		`<rect x="10" y="10" width="100" height="100" stroke="black" fill="red"></rect>` +
		`<circle cx="55" cy="55" r="40" fill="green"></circle></svg>`
	if got := memdom.OuterHTML(pic.Node()); got != want {
		t.Errorf("OuterHTML() = %s, want %s", got, want)
	}
}

func TestDragAndDropModifiers(t *testing.T) {
	doc := memdom.NewDocument()
	h := New(doc)
	channels := view.NewChannels()
	done := model.NewState([]any{})

	task := h.Li("write tests", DragTo(channels, done, "write tests"))
	zone := h.Ul(DropTo(channels, done, nil, "over"))

	task.Node().(*memdom.Node).Dispatch("dragstart", nil)
	zone.Node().(*memdom.Node).Dispatch("drop", nil)

	if got := done.Get().([]any); len(got) != 1 || got[0] != "write tests" {
		t.Errorf("done = %v, want [write tests]", got)
	}
}
