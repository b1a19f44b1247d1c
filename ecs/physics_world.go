package ecs

import (
	"errors"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fallingtext/common"
)

var ErrDegenerateBounds = errors.New("ecs: container has zero area")

const (
	floorThickness = 50.0
	floorElastic   = 0.2
	floorFriction  = 0.8

	wordFriction    = 0.2
	wordAirFriction = 0.01
)

// BodyHandle identifies a word body. Handles are assigned in creation order
// so they line up with the word index of one activation.
type BodyHandle int

// Pose is the center and rotation of a body.
type Pose struct {
	X     float64
	Y     float64
	Angle float64
}

// BodyProps are the randomized material and start values of a word body.
type BodyProps struct {
	Restitution     float64
	Friction        float64
	AirFriction     float64
	Density         float64
	Angle           float64
	AngularVelocity float64
	VX              float64
	VY              float64
	Hue             float64
	HasHue          bool
}

// Counts summarizes what currently lives in the world.
type Counts struct {
	DynamicBodies      int
	Floors             int
	PointerConstraints int
}

type wordBody struct {
	body  *cp.Body
	shape *cp.Shape
}

type floorBoundary struct {
	shapes []*cp.Shape
}

type pointerConstraint struct {
	body      *cp.Body
	spring    *cp.Constraint
	grabbed   *cp.Body
	stiffness float64
	length    float64
	damping   float64
}

// PhysicsWorld owns the Chipmunk space of one activation: the floor, the
// word bodies and the pointer constraint.
type PhysicsWorld struct {
	space *cp.Space
	rng   *rand.Rand

	bodies  []*wordBody
	floor   *floorBoundary
	pointer *pointerConstraint
}

// NewPhysicsWorld creates a space with vertical gravity in configured units.
func NewPhysicsWorld(gravityY float64, rng *rand.Rand) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravityY * common.GravityScale})
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &PhysicsWorld{space: space, rng: rng}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddFloor adds the static boundary whose top edge is the container bottom.
// With walls set, two side walls join the same boundary.
func (pw *PhysicsWorld) AddFloor(width, height float64, walls bool) error {
	if pw == nil || pw.space == nil {
		return nil
	}
	if width <= 0 || height <= 0 {
		return ErrDegenerateBounds
	}
	if pw.floor != nil {
		pw.removeFloor()
	}

	boxes := []cp.BB{
		{L: 0, T: height + floorThickness, R: width, B: height},
	}
	if walls {
		// tall enough that words spawned above the fold stay inside
		top := -height * 2
		boxes = append(boxes,
			cp.BB{L: -floorThickness, B: top, R: 0, T: height + floorThickness},
			cp.BB{L: width, B: top, R: width + floorThickness, T: height + floorThickness},
		)
	}

	floor := &floorBoundary{}
	for _, bb := range boxes {
		shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
		shape.SetElasticity(floorElastic)
		shape.SetFriction(floorFriction)
		pw.space.AddShape(shape)
		floor.shapes = append(floor.shapes, shape)
	}
	pw.floor = floor
	return nil
}

// AddWordBody adds a dynamic box centered at x,y with randomized material.
func (pw *PhysicsWorld) AddWordBody(x, y, width, height float64, highlighted bool) (BodyHandle, BodyProps) {
	if pw == nil || pw.space == nil {
		return -1, BodyProps{}
	}
	width = math.Max(width, 1)
	height = math.Max(height, 1)

	props := BodyProps{
		Restitution:     common.RandRange(pw.rng, 0.8, 1.0),
		Friction:        wordFriction,
		AirFriction:     wordAirFriction,
		Density:         common.RandRange(pw.rng, 0.004, 0.006),
		Angle:           common.RandRange(pw.rng, 0, 2*math.Pi),
		AngularVelocity: common.RandRange(pw.rng, -0.1, 0.1),
		VX:              common.RandRange(pw.rng, -2.5, 2.5),
		VY:              common.RandRange(pw.rng, -1, 1),
	}
	if highlighted {
		props.Hue = common.RandRange(pw.rng, 0, 360)
		props.HasHue = true
	}

	mass := props.Density * width * height
	body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(props.Angle)
	// start values are per step, cp integrates per second
	body.SetAngularVelocity(props.AngularVelocity * common.TPS)
	body.SetVelocity(props.VX*common.TPS, props.VY*common.TPS)

	air := props.AirFriction
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(b, gravity, damping*math.Pow(1-air, dt*common.TPS), dt)
	})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetElasticity(props.Restitution)
	shape.SetFriction(props.Friction)

	handle := BodyHandle(len(pw.bodies))
	body.UserData = handle

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies = append(pw.bodies, &wordBody{body: body, shape: shape})
	return handle, props
}

// AddPointerConstraint installs the pointer body. The spring itself only
// exists while a body is grabbed.
func (pw *PhysicsWorld) AddPointerConstraint(stiffness, length, damping float64) {
	if pw == nil || pw.space == nil {
		return
	}
	if pw.pointer != nil {
		pw.PointerUp()
	}
	pw.pointer = &pointerConstraint{
		body:      cp.NewKinematicBody(),
		stiffness: stiffness,
		length:    length,
		damping:   damping,
	}
}

// PointerDown grabs the word body under p, if any.
func (pw *PhysicsWorld) PointerDown(x, y float64) bool {
	if pw == nil || pw.space == nil || pw.pointer == nil {
		return false
	}
	ptr := pw.pointer
	if ptr.spring != nil {
		return true
	}
	p := cp.Vector{X: x, Y: y}
	ptr.body.SetPosition(p)
	ptr.body.SetVelocity(0, 0)

	info := pw.space.PointQueryNearest(p, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return false
	}
	target := info.Shape.Body()
	if target == nil || target.GetType() != cp.BODY_DYNAMIC {
		return false
	}

	mass := target.Mass()
	k := ptr.stiffness * mass / (common.FrameStep * common.FrameStep)
	c := ptr.damping * 2 * math.Sqrt(k*mass)
	spring := cp.NewDampedSpring(ptr.body, target, cp.Vector{}, target.WorldToLocal(p), ptr.length, k, c)
	pw.space.AddConstraint(spring)
	ptr.spring = spring
	ptr.grabbed = target
	return true
}

// PointerMove moves the pointer body, carrying any grabbed body with it.
func (pw *PhysicsWorld) PointerMove(x, y float64) {
	if pw == nil || pw.pointer == nil {
		return
	}
	body := pw.pointer.body
	next := cp.Vector{X: x, Y: y}
	body.SetVelocityVector(next.Sub(body.Position()).Mult(common.TPS))
	body.SetPosition(next)
}

// PointerUp releases the grabbed body.
func (pw *PhysicsWorld) PointerUp() {
	if pw == nil || pw.pointer == nil || pw.pointer.spring == nil {
		return
	}
	if pw.space != nil {
		pw.space.RemoveConstraint(pw.pointer.spring)
	}
	pw.pointer.spring = nil
	pw.pointer.grabbed = nil
}

// Grabbed returns the handle of the body held by the pointer.
func (pw *PhysicsWorld) Grabbed() (BodyHandle, bool) {
	if pw == nil || pw.pointer == nil || pw.pointer.grabbed == nil {
		return -1, false
	}
	h, ok := pw.pointer.grabbed.UserData.(BodyHandle)
	return h, ok
}

// Step advances the simulation by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// Pose returns the current pose of a word body.
func (pw *PhysicsWorld) Pose(h BodyHandle) (Pose, bool) {
	wb := pw.wordBody(h)
	if wb == nil {
		return Pose{}, false
	}
	pos := wb.body.Position()
	return Pose{X: pos.X, Y: pos.Y, Angle: wb.body.Angle()}, true
}

// Mass returns the mass of a word body.
func (pw *PhysicsWorld) Mass(h BodyHandle) float64 {
	wb := pw.wordBody(h)
	if wb == nil {
		return 0
	}
	return wb.body.Mass()
}

// ApplyImpulse pushes a word body through its center. Units are px/s × mass.
func (pw *PhysicsWorld) ApplyImpulse(h BodyHandle, ix, iy float64) {
	wb := pw.wordBody(h)
	if wb == nil {
		return
	}
	wb.body.ApplyImpulseAtLocalPoint(cp.Vector{X: ix, Y: iy}, cp.Vector{})
}

// BodyCount returns the number of word bodies.
func (pw *PhysicsWorld) BodyCount() int {
	if pw == nil {
		return 0
	}
	return len(pw.bodies)
}

// Counts reports what the space holds right now. Floors counts the static
// boundary as one, including its side walls when they were added.
func (pw *PhysicsWorld) Counts() Counts {
	var c Counts
	if pw == nil || pw.space == nil {
		return c
	}
	pw.space.EachBody(func(b *cp.Body) {
		if b.GetType() == cp.BODY_DYNAMIC {
			c.DynamicBodies++
		}
	})
	if pw.floor != nil {
		c.Floors = 1
	}
	if pw.pointer != nil {
		c.PointerConstraints = 1
	}
	return c
}

// Dispose removes every constraint, shape and body and drops the space.
// It is safe to call more than once.
func (pw *PhysicsWorld) Dispose() {
	if pw == nil || pw.space == nil {
		return
	}
	pw.PointerUp()
	pw.pointer = nil

	for _, wb := range pw.bodies {
		pw.space.RemoveShape(wb.shape)
		pw.space.RemoveBody(wb.body)
	}
	pw.bodies = nil
	pw.removeFloor()
	pw.space = nil
}

func (pw *PhysicsWorld) removeFloor() {
	if pw.floor == nil {
		return
	}
	for _, shape := range pw.floor.shapes {
		pw.space.RemoveShape(shape)
	}
	pw.floor = nil
}

func (pw *PhysicsWorld) wordBody(h BodyHandle) *wordBody {
	if pw == nil || pw.space == nil || h < 0 || int(h) >= len(pw.bodies) {
		return nil
	}
	return pw.bodies[h]
}
