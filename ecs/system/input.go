package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
)

// PointerSample is one raw pointer reading in screen coordinates.
type PointerSample struct {
	X       float64
	Y       float64
	Pressed bool
}

// InputSource supplies the pointer each frame.
type InputSource interface {
	Pointer() PointerSample
}

// EbitenInput reads the mouse, or the first touch when one is active.
type EbitenInput struct{}

func (EbitenInput) Pointer() PointerSample {
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		return PointerSample{X: float64(x), Y: float64(y), Pressed: true}
	}
	x, y := ebiten.CursorPosition()
	return PointerSample{X: float64(x), Y: float64(y), Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)}
}

// InputSystem turns raw pointer samples into the container-local Pointer
// component and hover/click/press events.
type InputSystem struct {
	source InputSource
	bounds image.Rectangle

	wasInside  bool
	wasPressed bool
	pressedIn  bool
}

func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = EbitenInput{}
	}
	return &InputSystem{source: source}
}

// SetBounds sets the container rectangle in screen coordinates.
func (i *InputSystem) SetBounds(r image.Rectangle) {
	if i == nil {
		return
	}
	i.bounds = r
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.source == nil {
		return
	}

	s := i.source.Pointer()
	pt := image.Pt(int(s.X), int(s.Y))
	inside := !i.bounds.Empty() && pt.In(i.bounds)

	justPressed := s.Pressed && !i.wasPressed
	justReleased := !s.Pressed && i.wasPressed

	events := w.Events()
	if inside && !i.wasInside {
		events.Push(ecs.Event{Type: ecs.EventHoverEnter})
	}
	if !inside && i.wasInside {
		events.Push(ecs.Event{Type: ecs.EventHoverLeave})
	}
	if justPressed {
		i.pressedIn = inside
		if inside {
			events.Push(ecs.Event{Type: ecs.EventPointerDown})
		}
	}
	if justReleased {
		events.Push(ecs.Event{Type: ecs.EventPointerUp})
		// a click is a press and release inside the container
		if inside && i.pressedIn {
			events.Push(ecs.Event{Type: ecs.EventClick})
		}
		i.pressedIn = false
	}

	i.wasInside = inside
	i.wasPressed = s.Pressed

	localX := s.X - float64(i.bounds.Min.X)
	localY := s.Y - float64(i.bounds.Min.Y)
	ecs.ForEach(w, component.PointerComponent, func(_ ecs.Entity, p *component.Pointer) {
		p.X = localX
		p.Y = localY
		p.Inside = inside
		p.Pressed = s.Pressed
	})
}
