package html

import (
	"github.com/QAddict/ruix/pkg/model"
	"github.com/QAddict/ruix/pkg/view"
)

// Edit binds a form control to m in both directions. The control's name is
// set to the cell name. Checkboxes bind their checked state, radio buttons
// select m's value when checked, and other controls bind their value.
// Changes are written back on the change event.
func Edit(m model.Settable) view.Modifier {
	return func(e *view.Element) {
		if name := m.Name(); name != "" {
			e.Set("name", name)
		}
		typ, _ := e.Node().Attribute("type")
		switch typ {
		case "checkbox":
			e.SetProperty("checked", model.Transform(m, func(v any) any { return model.Truthy(v) }))
			e.Listen("change", func() { m.Set(model.Truthy(e.Property("checked"))) }, false)
		case "radio":
			e.SetProperty("checked", model.Transform(m, func(v any) any { return v == controlValue(e) }))
			e.Listen("change", func() {
				if model.Truthy(e.Property("checked")) {
					m.Set(controlValue(e))
				}
			}, false)
		default:
			e.SetProperty("value", m)
			e.Listen("change", func() { m.Set(e.Property("value")) }, false)
		}
	}
}

// controlValue returns the value property, falling back to the value
// attribute for controls whose property was never set.
func controlValue(e *view.Element) any {
	if v := e.Property("value"); v != nil {
		return v
	}
	if v, ok := e.Node().Attribute("value"); ok {
		return v
	}
	return nil
}

// Input creates an input of the given type. An observable name is bound
// with Edit; any other value is used as the name attribute.
func (b *Builder) Input(name any, typ string, items ...any) *view.Element {
	in := b.El("input").Set("type", typ)
	if m, ok := name.(model.Settable); ok {
		in.Apply(Edit(m))
	} else if name != nil {
		in.Set("name", name)
	}
	return in.Add(items...)
}

func (b *Builder) InputText(name any, items ...any) *view.Element {
	return b.Input(name, "text", items...)
}

func (b *Builder) InputNumber(name any, items ...any) *view.Element {
	return b.Input(name, "number", items...)
}

func (b *Builder) Password(name any, items ...any) *view.Element {
	return b.Input(name, "password", items...)
}

func (b *Builder) Checkbox(name any, items ...any) *view.Element {
	return b.Input(name, "checkbox", items...)
}

// Radio creates a radio button carrying value.
func (b *Builder) Radio(name any, value string, items ...any) *view.Element {
	in := b.El("input").Set("type", "radio").Set("value", value)
	if m, ok := name.(model.Settable); ok {
		in.Apply(Edit(m))
	} else if name != nil {
		in.Set("name", name)
	}
	return in.Add(items...)
}

// Submit creates a submit button labelled value.
func (b *Builder) Submit(value any, items ...any) *view.Element {
	return b.Input(nil, "submit", Value(value)).Add(items...)
}

// Textarea creates a text area, bound with Edit when name is observable.
func (b *Builder) Textarea(name any, items ...any) *view.Element {
	ta := b.El("textarea")
	if m, ok := name.(model.Settable); ok {
		ta.Apply(Edit(m))
	} else if name != nil {
		ta.Set("name", name)
	}
	return ta.Add(items...)
}

// DragTo makes the element draggable towards target.
func DragTo(channels *view.Channels, target *model.State, data any) view.Modifier {
	return func(e *view.Element) { e.DragTo(channels, target, data) }
}

// DropTo makes the element append dropped items to target.
func DropTo(channels *view.Channels, target *model.State, dragStartClass, dragOverClass any) view.Modifier {
	return func(e *view.Element) { e.DropTo(channels, target, dragStartClass, dragOverClass) }
}
