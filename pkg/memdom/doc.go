// Package memdom is an in-memory implementation of the host tree contract.
//
// It follows the DOM's structural rules closely enough for the view engine:
// inserting an attached node moves it, inserting a fragment moves its
// children, and text, attribute, style and field writes are kept separately.
// Documents count structural mutations, which tests use to check that a
// reconciliation pass did not touch nodes that were already in place.
//
// The tree can be serialized to HTML:
//
//	doc := memdom.NewDocument()
//	body := doc.Body()
//	body.AppendChild(doc.CreateText("Hello <world>"))
//	fmt.Println(memdom.InnerHTML(body)) // Hello &lt;world&gt;
//
// memdom is not safe for concurrent use.
package memdom
