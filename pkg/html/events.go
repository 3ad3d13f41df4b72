package html

import "github.com/QAddict/ruix/pkg/view"

// On handles event, preventing the default action. h is anything
// view.HandlerOf accepts.
func On(event string, h any) view.Modifier {
	return func(e *view.Element) { e.On(event, h) }
}

// Listen handles event without preventing the default action.
func Listen(event string, h any) view.Modifier {
	return func(e *view.Element) { e.Listen(event, h, false) }
}

func OnClick(h any) view.Modifier       { return On("click", h) }
func OnDoubleClick(h any) view.Modifier { return On("dblclick", h) }
func OnSubmit(h any) view.Modifier      { return On("submit", h) }
func OnReset(h any) view.Modifier       { return Listen("reset", h) }
func OnInput(h any) view.Modifier       { return Listen("input", h) }
func OnChange(h any) view.Modifier      { return Listen("change", h) }
func OnKeyDown(h any) view.Modifier     { return Listen("keydown", h) }
func OnKeyUp(h any) view.Modifier       { return Listen("keyup", h) }
func OnMouseOver(h any) view.Modifier   { return Listen("mouseover", h) }
func OnMouseOut(h any) view.Modifier    { return Listen("mouseout", h) }
