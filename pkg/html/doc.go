// Package html provides HTML and SVG element constructors and attribute
// modifiers on top of package view.
//
// Constructors live on a Builder bound to a document; modifiers are plain
// functions that can be mixed with content in any constructor call:
//
//	h := html.New(doc)
//	h.Button(label, html.OnClick(command.Set(label, "Clicked")))
//	h.Table(h.Tbody(
//	    h.Tr(h.Th("Author"), h.Th("Title")),
//	    h.Each(books, func(book *model.State) any {
//	        m := model.NewMirror(book)
//	        return h.Tr(h.Td(m.Field("author")), h.Td(m.Field("title")))
//	    }),
//	))
//
// Every modifier accepts static and observable values. Observable values stay
// bound for the life of the element.
package html
