package view

import (
	"reflect"
	"runtime"
	"testing"
	"time"

	"github.com/QAddict/ruix/pkg/memdom"
	"github.com/QAddict/ruix/pkg/model"
)

func TestChannelsOf(t *testing.T) {
	channels := NewChannels()
	a := model.NewState(nil)
	b := model.NewState(nil)

	if channels.Of(a) != channels.Of(a) {
		t.Error("Of returned different channels for the same target")
	}
	if channels.Of(a) == channels.Of(b) {
		t.Error("Of returned the same channel for different targets")
	}
	if n := channels.Len(); n != 2 {
		t.Errorf("Len() = %d, want 2", n)
	}
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
}

func TestChannelsForgetCollectedTargets(t *testing.T) {
	channels := NewChannels()
	func() {
		target := model.NewState([]any{"x"})
		channels.Of(target)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for channels.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("Len() = %d after GC, want 0", channels.Len())
		}
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
}

func TestChannelsForgetDropTargets(t *testing.T) {
	doc := memdom.NewDocument()
	channels := NewChannels()
	func() {
		target := model.NewState([]any{"x"})
		El(doc, "div").DropTo(channels, target, "dragging", "over")
	}()

	deadline := time.Now().Add(5 * time.Second)
	for channels.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("Len() = %d after GC, want 0", channels.Len())
		}
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDragAndDrop(t *testing.T) {
	doc := memdom.NewDocument()
	channels := NewChannels()
	basket := model.NewState([]any{"pear"})

	apple := El(doc, "span", "apple").DragTo(channels, basket, "apple")
	zone := El(doc, "div").DropTo(channels, basket, "dragging", "over")

	src := apple.Node().(*memdom.Node)
	dst := zone.Node().(*memdom.Node)

	if got := attr(apple, "draggable"); got != "true" {
		t.Errorf("draggable = %q, want %q", got, "true")
	}
	if e := dst.Dispatch("dragover", nil); e.DefaultPrevented() {
		t.Error("dragover accepted without a drag in progress")
	}

	src.Dispatch("dragstart", nil)
	if got := attr(zone, "class"); got != "dragging" {
		t.Errorf("class during drag = %q, want %q", got, "dragging")
	}
	dst.Dispatch("dragenter", nil)
	if got := attr(zone, "class"); got != "dragging over" {
		t.Errorf("class over zone = %q, want %q", got, "dragging over")
	}
	if e := dst.Dispatch("dragover", nil); !e.DefaultPrevented() {
		t.Error("dragover not accepted during a drag")
	}

	dst.Dispatch("drop", nil)
	src.Dispatch("dragend", nil)

	if got := basket.Get(); !reflect.DeepEqual(got, []any{"pear", "apple"}) {
		t.Errorf("basket = %v, want [pear apple]", got)
	}
	if got := attr(zone, "class"); got != "<unset>" {
		t.Errorf("class after drop = %q, want unset", got)
	}
}
