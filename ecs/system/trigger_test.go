package system

import (
	"testing"

	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
)

func newTriggerWorld(t *testing.T, mode component.TriggerMode) (*ecs.World, *component.Activation) {
	t.Helper()
	w := ecs.NewWorld()
	act := &component.Activation{Mode: mode}
	if err := ecs.Add(w, w.CreateEntity(), component.ActivationComponent, act); err != nil {
		t.Fatal(err)
	}
	return w, act
}

func TestTriggerSystemActivatesOnce(t *testing.T) {
	w, act := newTriggerWorld(t, component.TriggerHover)
	calls := 0
	sys := NewTriggerSystem(func() bool { calls++; return true })

	for i := 0; i < 3; i++ {
		w.Events().Push(ecs.Event{Type: ecs.EventClick})
		w.Events().Push(ecs.Event{Type: ecs.EventHoverEnter})
		sys.Update(w)
	}
	if calls != 1 || !act.Active() {
		t.Fatalf("calls = %d active = %v, want 1 and true", calls, act.Active())
	}

	activated := 0
	for _, evt := range w.Events().Drain() {
		if evt.Type == ecs.EventActivated {
			activated++
		}
	}
	if activated != 1 {
		t.Fatalf("activated events = %d, want 1", activated)
	}
}

func TestTriggerSystemFailedBuildStaysIdle(t *testing.T) {
	w, act := newTriggerWorld(t, component.TriggerClick)
	ok := false
	calls := 0
	sys := NewTriggerSystem(func() bool { calls++; return ok })

	w.Events().Push(ecs.Event{Type: ecs.EventClick})
	sys.Update(w)
	w.Events().Drain()
	if act.Active() {
		t.Fatalf("failed build must leave the machine idle")
	}

	ok = true
	w.Events().Push(ecs.Event{Type: ecs.EventClick})
	sys.Update(w)
	if !act.Active() || calls != 2 {
		t.Fatalf("retry: active = %v calls = %d", act.Active(), calls)
	}
}
