package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
	"github.com/milk9111/fallingtext/ecs/render"
	"github.com/milk9111/fallingtext/words"
)

var ErrMissingElements = errors.New("entity: overlay elements do not match tokens")

// BuildWords creates one overlay element entity per token, laid out in flow.
func BuildWords(w *ecs.World, tokens []words.Token, m render.Measurer, l Layout) ([]ecs.Entity, error) {
	if w == nil {
		return nil, fmt.Errorf("entity: build words: nil world")
	}
	boxes := FlowLayout(tokens, m, l)
	if len(boxes) != len(tokens) {
		return nil, fmt.Errorf("entity: build words: no measurer for %d tokens", len(tokens))
	}
	out := make([]ecs.Entity, 0, len(tokens))
	for i, tok := range tokens {
		e := w.CreateEntity()
		word := &component.Word{Text: tok.Text, Index: tok.Index, Highlighted: tok.Highlighted}
		if err := ecs.Add(w, e, component.WordComponent, word); err != nil {
			return out, fmt.Errorf("entity: add word %d: %w", i, err)
		}
		b := boxes[i]
		el := &component.Element{FlowX: b.X, FlowY: b.Y, Width: b.W, Height: b.H}
		if err := ecs.Add(w, e, component.ElementComponent, el); err != nil {
			return out, fmt.Errorf("entity: add element %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// Reflow recomputes flow boxes for elements that are not yet positioned.
func Reflow(w *ecs.World, m render.Measurer, l Layout) {
	ents := WordEntities(w)
	if len(ents) == 0 {
		return
	}
	tokens := make([]words.Token, len(ents))
	for i, e := range ents {
		word, _ := ecs.Get(w, e, component.WordComponent)
		tokens[i] = words.Token{Text: word.Text, Index: word.Index, Highlighted: word.Highlighted}
	}
	boxes := FlowLayout(tokens, m, l)
	if len(boxes) != len(ents) {
		return
	}
	for i, e := range ents {
		el, ok := ecs.Get(w, e, component.ElementComponent)
		if !ok || el.Positioned {
			continue
		}
		el.FlowX, el.FlowY, el.Width, el.Height = boxes[i].X, boxes[i].Y, boxes[i].W, boxes[i].H
	}
}

// WordEntities returns word entities ordered by token index.
func WordEntities(w *ecs.World) []ecs.Entity {
	ents := w.Query(component.WordComponent.Kind(), component.ElementComponent.Kind())
	sort.Slice(ents, func(i, j int) bool {
		a, _ := ecs.Get(w, ents[i], component.WordComponent)
		b, _ := ecs.Get(w, ents[j], component.WordComponent)
		return a.Index < b.Index
	})
	return ents
}

// DestroyWords removes every word entity.
func DestroyWords(w *ecs.World) int {
	n := 0
	for _, e := range w.Query(component.WordComponent.Kind()) {
		if w.DestroyEntity(e) {
			n++
		}
	}
	return n
}

// AttachBodies creates one body per word element, sized to the element and
// centered on it, and switches every element to absolute positioning. The
// element count must match want; otherwise nothing is attached.
func AttachBodies(w *ecs.World, pw *ecs.PhysicsWorld, want int) error {
	if w == nil || pw == nil {
		return fmt.Errorf("entity: attach bodies: %w", ErrMissingElements)
	}
	ents := WordEntities(w)
	if len(ents) != want {
		return fmt.Errorf("entity: attach bodies: have %d elements for %d tokens: %w", len(ents), want, ErrMissingElements)
	}

	for _, e := range ents {
		word, _ := ecs.Get(w, e, component.WordComponent)
		el, _ := ecs.Get(w, e, component.ElementComponent)
		cx, cy := el.FlowCenter()

		h, props := pw.AddWordBody(cx, cy, el.Width, el.Height, word.Highlighted)
		word.Hue, word.HasHue = props.Hue, props.HasHue

		body := &component.PhysicsBody{
			Handle:      int(h),
			Width:       el.Width,
			Height:      el.Height,
			Restitution: props.Restitution,
			Friction:    props.Friction,
			AirFriction: props.AirFriction,
			Density:     props.Density,
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent, body); err != nil {
			return fmt.Errorf("entity: attach body %d: %w", word.Index, err)
		}
		pose, _ := pw.Pose(h)
		if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: pose.X, Y: pose.Y, Rotation: pose.Angle}); err != nil {
			return fmt.Errorf("entity: attach transform %d: %w", word.Index, err)
		}
		el.Position()
	}
	return nil
}

// DetachBodies puts every element back into flow and drops its body link.
// Used when an activation is abandoned after bodies were attached.
func DetachBodies(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range WordEntities(w) {
		ecs.Remove(w, e, component.PhysicsBodyComponent)
		ecs.Remove(w, e, component.TransformComponent)
		if el, ok := ecs.Get(w, e, component.ElementComponent); ok {
			el.Positioned = false
			el.X, el.Y, el.Rotation = 0, 0, 0
		}
		if word, ok := ecs.Get(w, e, component.WordComponent); ok {
			word.Hue, word.HasHue = 0, false
		}
	}
}
