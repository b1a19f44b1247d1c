package system

import (
	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
)

// PointerSystem drives the pointer constraint. The Pointer component gives
// the position; press, release and leave events decide the grab.
type PointerSystem struct{}

func NewPointerSystem() *PointerSystem {
	return &PointerSystem{}
}

func (p *PointerSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	ent, ok := w.First(component.PointerComponent.Kind())
	if !ok {
		return
	}
	ptr, _ := ecs.Get(w, ent, component.PointerComponent)

	pw.PointerMove(ptr.X, ptr.Y)
	for _, evt := range w.Events().Pending() {
		switch evt.Type {
		case ecs.EventPointerDown:
			pw.PointerDown(ptr.X, ptr.Y)
		case ecs.EventPointerUp, ecs.EventHoverLeave:
			pw.PointerUp()
		}
	}
	// a release can be missed when the events were flushed before this ran
	if !ptr.Pressed {
		pw.PointerUp()
	}
}
