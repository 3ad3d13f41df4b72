package html

import (
	"github.com/QAddict/ruix/pkg/model"
	"github.com/QAddict/ruix/pkg/view"
)

// Attr sets attribute name. A nil value removes it.
func Attr(name string, args ...any) view.Modifier {
	return func(e *view.Element) { e.Set(name, args...) }
}

// Style sets CSS property prop. A nil value removes it.
func Style(prop string, args ...any) view.Modifier {
	return func(e *view.Element) { e.CSS(prop, args...) }
}

// Prop sets a field of the node object.
func Prop(name string, args ...any) view.Modifier {
	return func(e *view.Element) { e.SetProperty(name, args...) }
}

func Class(values ...any) view.Modifier {
	return func(e *view.Element) { e.Class(values...) }
}

func AddClass(values ...any) view.Modifier {
	return func(e *view.Element) { e.AddClass(values...) }
}

func ID(args ...any) view.Modifier          { return Attr("id", args...) }
func Title(args ...any) view.Modifier       { return Attr("title", args...) }
func Href(args ...any) view.Modifier        { return Attr("href", args...) }
func Src(args ...any) view.Modifier         { return Attr("src", args...) }
func Alt(args ...any) view.Modifier         { return Attr("alt", args...) }
func Name(args ...any) view.Modifier        { return Attr("name", args...) }
func Type(args ...any) view.Modifier        { return Attr("type", args...) }
func For(args ...any) view.Modifier         { return Attr("for", args...) }
func Placeholder(args ...any) view.Modifier { return Attr("placeholder", args...) }
func Colspan(args ...any) view.Modifier     { return Attr("colspan", args...) }
func Rowspan(args ...any) view.Modifier     { return Attr("rowspan", args...) }
func Value(args ...any) view.Modifier       { return Prop("value", args...) }
func Checked(v any) view.Modifier           { return Prop("checked", v) }
func Color(args ...any) view.Modifier       { return Style("color", args...) }
func Background(args ...any) view.Modifier  { return Style("background", args...) }
func Width(args ...any) view.Modifier       { return Style("width", args...) }
func Height(args ...any) view.Modifier      { return Style("height", args...) }
func Cursor(args ...any) view.Modifier      { return Style("cursor", args...) }

// Disabled sets the disabled attribute while v is truthy. A static false
// leaves the attribute out.
func Disabled(v any) view.Modifier {
	return Attr("disabled", model.Map(v, model.To(true, nil)))
}

// Display sets the display style. True clears the property, false hides the
// element and other values are used as is.
func Display(v any) view.Modifier {
	return Style("display", model.Map(v, displayValue))
}

func displayValue(v any) any {
	switch v {
	case false:
		return "none"
	case true:
		return nil
	}
	return v
}

// Hidden hides the element while v is truthy.
func Hidden(v any) view.Modifier {
	return Style("display", model.Map(v, model.To("none", nil)))
}

// Flex lays children out in a row or column.
func Flex(direction string) view.Modifier {
	return func(e *view.Element) {
		e.CSS("display", "flex").CSS("flex-direction", direction)
	}
}
