package system

import (
	"github.com/milk9111/fallingtext/common"
	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
)

// PhysicsSystem steps the physics world and copies body poses into
// Transform components.
type PhysicsSystem struct {
	dt    float64
	steps int
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{dt: common.FrameStep}
}

// Steps returns how many simulation steps have run.
func (ps *PhysicsSystem) Steps() int {
	if ps == nil {
		return 0
	}
	return ps.steps
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	pw.Step(ps.dt)
	ps.steps++

	ps.syncTransforms(w, pw)
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World, pw *ecs.PhysicsWorld) {
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(_ ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		pose, ok := pw.Pose(ecs.BodyHandle(body.Handle))
		if !ok {
			return
		}
		t.X = pose.X
		t.Y = pose.Y
		t.Rotation = pose.Angle
	})
}
