package system

import (
	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
)

// TriggerSystem feeds hover and click events into the activation state
// machine and runs the activation hook on the idle -> active transition.
type TriggerSystem struct {
	// OnActivate builds the world. Returning false aborts the cycle and
	// leaves the machine idle so a later event can retry.
	OnActivate func() bool
}

func NewTriggerSystem(onActivate func() bool) *TriggerSystem {
	return &TriggerSystem{OnActivate: onActivate}
}

func (t *TriggerSystem) Update(w *ecs.World) {
	if t == nil || w == nil {
		return
	}
	ent, ok := w.First(component.ActivationComponent.Kind())
	if !ok {
		return
	}
	act, _ := ecs.Get(w, ent, component.ActivationComponent)

	for _, evt := range w.Events().Pending() {
		var ev component.TriggerEvent
		switch evt.Type {
		case ecs.EventHoverEnter:
			ev = component.TriggerEventHoverEnter
		case ecs.EventClick:
			ev = component.TriggerEventClick
		default:
			continue
		}
		if !act.Fire(ev) {
			continue
		}
		if t.OnActivate != nil && !t.OnActivate() {
			act.Reset()
			continue
		}
		w.Events().Push(ecs.Event{Type: ecs.EventActivated})
	}
}
