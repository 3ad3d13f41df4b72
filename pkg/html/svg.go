package html

import (
	"github.com/QAddict/ruix/pkg/host"
	"github.com/QAddict/ruix/pkg/view"
)

// SVGEl creates an element in the SVG namespace.
func (b *Builder) SVGEl(tag string, items ...any) *view.Element {
	return view.ElNS(b.doc, host.NamespaceSVG, tag, items...)
}

func (b *Builder) SVG(items ...any) *view.Element      { return b.SVGEl("svg", items...) }
func (b *Builder) G(items ...any) *view.Element        { return b.SVGEl("g", items...) }
func (b *Builder) Rect(items ...any) *view.Element     { return b.SVGEl("rect", items...) }
func (b *Builder) Circle(items ...any) *view.Element   { return b.SVGEl("circle", items...) }
func (b *Builder) Ellipse(items ...any) *view.Element  { return b.SVGEl("ellipse", items...) }
func (b *Builder) Line(items ...any) *view.Element     { return b.SVGEl("line", items...) }
func (b *Builder) Polyline(items ...any) *view.Element { return b.SVGEl("polyline", items...) }
func (b *Builder) Path(items ...any) *view.Element     { return b.SVGEl("path", items...) }
func (b *Builder) SVGText(items ...any) *view.Element  { return b.SVGEl("text", items...) }

func X(args ...any) view.Modifier           { return Attr("x", args...) }
func Y(args ...any) view.Modifier           { return Attr("y", args...) }
func X1(args ...any) view.Modifier          { return Attr("x1", args...) }
func Y1(args ...any) view.Modifier          { return Attr("y1", args...) }
func X2(args ...any) view.Modifier          { return Attr("x2", args...) }
func Y2(args ...any) view.Modifier          { return Attr("y2", args...) }
func CX(args ...any) view.Modifier          { return Attr("cx", args...) }
func CY(args ...any) view.Modifier          { return Attr("cy", args...) }
func R(args ...any) view.Modifier           { return Attr("r", args...) }
func D(args ...any) view.Modifier           { return Attr("d", args...) }
func Points(args ...any) view.Modifier      { return Attr("points", args...) }
func ViewBox(args ...any) view.Modifier     { return Attr("viewBox", args...) }
func Fill(args ...any) view.Modifier        { return Attr("fill", args...) }
func Stroke(args ...any) view.Modifier      { return Attr("stroke", args...) }
func StrokeWidth(args ...any) view.Modifier { return Attr("stroke-width", args...) }

// Size sets the width and height attributes of an SVG element.
func Size(width, height any) view.Modifier {
	return func(e *view.Element) { e.Set("width", width).Set("height", height) }
}
