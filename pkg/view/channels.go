package view

import (
	"runtime"
	"sync"
	"weak"

	"github.com/QAddict/ruix/pkg/host"
	"github.com/QAddict/ruix/pkg/model"
)

// Channels maps drop targets to the drag channels that carry the dragged
// item to them. The registry holds targets weakly: once a target cell is
// garbage collected its channel is forgotten.
type Channels struct {
	mu sync.Mutex
	m  map[weak.Pointer[model.State]]*model.State
}

// NewChannels creates an empty registry.
func NewChannels() *Channels {
	return &Channels{m: make(map[weak.Pointer[model.State]]*model.State)}
}

// Of returns the channel of target, creating it on first use. The channel
// holds the item being dragged, or nil.
func (c *Channels) Of(target *model.State) *model.State {
	key := weak.Make(target)
	c.mu.Lock()
	defer c.mu.Unlock()
	if ch, ok := c.m[key]; ok {
		return ch
	}
	ch := model.NewState(nil).Named("channel")
	c.m[key] = ch
	runtime.AddCleanup(target, c.forget, key)
	return ch
}

// Len returns the number of live channels.
func (c *Channels) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

func (c *Channels) forget(key weak.Pointer[model.State]) {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()
}

// Transfer makes the element draggable; while it is dragged channel holds
// data.
func (e *Element) Transfer(channel *model.State, data any) *Element {
	e.Set("draggable", "true").CSS("cursor", "grab")
	e.Listen("dragstart", func() { channel.Set(data) }, false)
	e.Listen("dragend", func() { channel.Set(nil) }, false)
	return e
}

// Receive makes the element a drop zone for channel. action is called with
// the dropped item. While a drag is in progress the element gets
// dragStartClass, and dragOverClass while the item is over it; either may
// be nil.
func (e *Element) Receive(channel *model.State, action func(item any), dragStartClass, dragOverClass any) *Element {
	over := model.NewState(false)
	e.Listen("dragover", func(ev host.Event) {
		if channel.Get() != nil {
			ev.PreventDefault()
		}
	}, false)
	e.Listen("dragenter", func() { over.Set(channel.Get() != nil) }, false)
	e.Listen("dragleave", func() { over.Set(false) }, false)
	e.Listen("drop", func(ev host.Event) {
		ev.PreventDefault()
		over.Set(false)
		if item := channel.Get(); item != nil {
			action(item)
		}
	}, false)
	active := model.Transform(channel, func(v any) any {
		if v != nil {
			return dragStartClass
		}
		return nil
	})
	hovering := model.Transform(over, model.To(dragOverClass, nil))
	return e.AddClass(active, hovering)
}

// DragTo makes the element draggable towards target.
func (e *Element) DragTo(channels *Channels, target *model.State, data any) *Element {
	return e.Transfer(channels.Of(target), data)
}

// DropTo makes the element append dropped items to the list held by
// target. The element refers to target weakly, as the channel keeps the
// element reachable.
func (e *Element) DropTo(channels *Channels, target *model.State, dragStartClass, dragOverClass any) *Element {
	wp := weak.Make(target)
	return e.Receive(channels.Of(target), func(item any) {
		t := wp.Value()
		if t == nil {
			return
		}
		t.Update(func(v any) any {
			return append(append([]any(nil), Items(v)...), item)
		})
	}, dragStartClass, dragOverClass)
}
