package system

import (
	"image"
	"slices"
	"testing"

	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
)

type scriptedInput struct {
	sample PointerSample
}

func (s *scriptedInput) Pointer() PointerSample { return s.sample }

func eventTypes(w *ecs.World) []ecs.EventType {
	var out []ecs.EventType
	for _, evt := range w.Events().Drain() {
		out = append(out, evt.Type)
	}
	return out
}

func TestInputSystemEvents(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	ptr := &component.Pointer{}
	if err := ecs.Add(w, e, component.PointerComponent, ptr); err != nil {
		t.Fatal(err)
	}

	in := &scriptedInput{sample: PointerSample{X: 5, Y: 5}}
	sys := NewInputSystem(in)
	sys.SetBounds(image.Rect(100, 100, 300, 200))

	steps := []struct {
		name   string
		sample PointerSample
		want   []ecs.EventType
	}{
		{"outside", PointerSample{X: 5, Y: 5}, nil},
		{"enter", PointerSample{X: 150, Y: 150}, []ecs.EventType{ecs.EventHoverEnter}},
		{"move inside", PointerSample{X: 160, Y: 150}, nil},
		{"press", PointerSample{X: 160, Y: 150, Pressed: true}, []ecs.EventType{ecs.EventPointerDown}},
		{"release", PointerSample{X: 170, Y: 150}, []ecs.EventType{ecs.EventPointerUp, ecs.EventClick}},
		{"press again", PointerSample{X: 170, Y: 150, Pressed: true}, []ecs.EventType{ecs.EventPointerDown}},
		{"drag out and release", PointerSample{X: 400, Y: 150}, []ecs.EventType{ecs.EventHoverLeave, ecs.EventPointerUp}},
	}
	for _, step := range steps {
		in.sample = step.sample
		sys.Update(w)
		if got := eventTypes(w); !slices.Equal(got, step.want) {
			t.Fatalf("%s: events = %v, want %v", step.name, got, step.want)
		}
	}

	in.sample = PointerSample{X: 130, Y: 120}
	sys.Update(w)
	if ptr.X != 30 || ptr.Y != 20 || !ptr.Inside {
		t.Fatalf("pointer not container local: %+v", ptr)
	}
}

func TestInputSystemEmptyBounds(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewInputSystem(&scriptedInput{sample: PointerSample{X: 0, Y: 0, Pressed: true}})
	sys.Update(w)
	for _, typ := range eventTypes(w) {
		if typ == ecs.EventHoverEnter || typ == ecs.EventPointerDown {
			t.Fatalf("empty container produced %s", typ)
		}
	}
}
