package fallingtext

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/entity"
	"github.com/milk9111/fallingtext/ecs/system"
)

var errContextClosed = errors.New("fallingtext: context torn down")

// onActivate is the trigger hook. A failed build is logged and leaves the
// context idle so a later event can retry.
func (c *ActivationContext) onActivate() bool {
	if err := c.activate(); err != nil {
		log.Printf("FallingText: activation aborted: %v", err)
		return false
	}
	return true
}

// activate measures the container, builds the world from the rendered word
// elements and starts the frame loop. On any failure nothing is left behind.
func (c *ActivationContext) activate() (err error) {
	if c == nil || c.closed || c.world == nil {
		return errContextClosed
	}
	if c.physics != nil {
		return nil
	}

	width, height := float64(c.bounds.Dx()), float64(c.bounds.Dy())
	if width <= 0 || height <= 0 {
		return fmt.Errorf("fallingtext: activate %vx%v: %w", width, height, ecs.ErrDegenerateBounds)
	}

	// boxes must match the size the floor is built for
	entity.Reflow(c.world, c.measurer, c.layout())

	rng := c.newRand()
	pw := ecs.NewPhysicsWorld(c.cfg.Gravity, rng)
	defer func() {
		if err != nil {
			entity.DetachBodies(c.world)
			c.world.SetPhysicsWorld(nil)
			pw.Dispose()
		}
	}()

	if err = pw.AddFloor(width, height, c.cfg.Walls); err != nil {
		return fmt.Errorf("fallingtext: activate: %w", err)
	}
	if err = entity.AttachBodies(c.world, pw, len(c.tokens)); err != nil {
		return fmt.Errorf("fallingtext: activate: %w", err)
	}
	pw.AddPointerConstraint(c.cfg.PointerStiffness, c.cfg.PointerLength, c.cfg.PointerDamping)
	c.world.SetPhysicsWorld(pw)

	c.stepper = system.NewPhysicsSystem()
	c.liveliness = system.NewLivelinessSystem(rng, c.cfg.JitterChance, c.script)
	c.loop = newFrameLoop(c.world,
		system.NewPointerSystem(),
		c.stepper,
		system.NewOverlaySystem(c.cfg.Wiggle, rng.Int63()),
		c.liveliness,
	)
	c.physics = pw
	c.activations++
	return nil
}

// activationLog prints a debug line for every activation the trigger
// reports.
type activationLog struct {
	c *ActivationContext
}

func (l activationLog) Update(w *ecs.World) {
	c := l.c
	if c == nil || !c.cfg.Debug || c.physics == nil {
		return
	}
	for _, evt := range w.Events().Pending() {
		if evt.Type != ecs.EventActivated {
			continue
		}
		counts := c.physics.Counts()
		log.Printf("FallingText: activated %d words in %dx%d (bodies=%d floors=%d pointers=%d)",
			len(c.tokens), c.bounds.Dx(), c.bounds.Dy(), counts.DynamicBodies, counts.Floors, counts.PointerConstraints)
	}
}

// teardown stops the loop, disposes the world, frees the surface and removes
// the word elements. It is safe on a context that never finished activating
// and safe to call twice.
func (c *ActivationContext) teardown() {
	if c == nil || c.closed {
		return
	}
	c.closed = true

	if c.loop != nil {
		c.loop.stop()
		c.loop = nil
	}
	if c.physics != nil {
		c.physics.Dispose()
		c.physics = nil
	}
	if c.world != nil {
		c.world.SetPhysicsWorld(nil)
		if act := c.activation(); act != nil {
			act.Reset()
		}
		entity.DestroyWords(c.world)
		c.world.DestroyEntity(c.control)
		c.world = nil
	}
	if c.surface != nil {
		c.surface.Deallocate()
		c.surface = nil
	}
	c.stepper = nil
	c.liveliness = nil

	if c.cfg.Debug {
		log.Printf("FallingText: torn down")
	}
}
