// Package fallingtext turns a block of text into words that fall, collide
// and can be dragged once the container is hovered or clicked.
package fallingtext

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
	"github.com/milk9111/fallingtext/ecs/entity"
	"github.com/milk9111/fallingtext/ecs/render"
	"github.com/milk9111/fallingtext/ecs/system"
)

type Option func(*FallingText)

// WithMeasurer replaces the font based measurer.
func WithMeasurer(m render.Measurer) Option {
	return func(f *FallingText) { f.env.measurer = m }
}

// WithInput replaces the ebiten mouse and touch reader.
func WithInput(src system.InputSource) Option {
	return func(f *FallingText) { f.env.input = src }
}

// WithBounds sets the container rectangle in screen coordinates.
func WithBounds(r image.Rectangle) Option {
	return func(f *FallingText) { f.env.bounds = r }
}

// Stats is a snapshot of the current cycle.
type Stats struct {
	State       component.ActivationState
	Words       int
	Bodies      ecs.Counts
	Steps       int
	Kicks       int
	Activations int
}

// FallingText is the effect as a component that an ebiten game calls from
// its own Update and Draw.
type FallingText struct {
	cfg Config
	env environment
	ctx *ActivationContext
}

func New(cfg Config, opts ...Option) *FallingText {
	f := &FallingText{cfg: cfg}
	for _, opt := range opts {
		opt(f)
	}
	f.ctx = newContext(cfg, f.env)
	return f
}

func (f *FallingText) Config() Config {
	if f == nil {
		return Config{}
	}
	return f.cfg
}

// SetConfig applies cfg. A change to anything that shapes the world ends
// the current cycle and starts an idle one.
func (f *FallingText) SetConfig(cfg Config) {
	if f == nil {
		return
	}
	f.cfg = cfg
	f.ctx = reconcile(f.ctx, cfg, f.env)
}

func (f *FallingText) SetBounds(r image.Rectangle) {
	if f == nil {
		return
	}
	f.env.bounds = r
	f.ctx.setBounds(r)
}

// Reset ends the current cycle and shows the text at rest again.
func (f *FallingText) Reset() {
	if f == nil {
		return
	}
	f.ctx.teardown()
	f.ctx = newContext(f.cfg, f.env)
}

// Update runs input and trigger handling, then one frame of the loop when
// the effect is active.
func (f *FallingText) Update() error {
	if f == nil || f.ctx == nil || f.ctx.closed {
		return nil
	}
	world := f.ctx.world
	f.ctx.idle.Run(world)
	// the loop flushes this frame's events; while idle nobody else will
	if !f.ctx.loop.tick() {
		world.Events().Drain()
	}
	return nil
}

// Draw paints the container onto screen at its bounds.
func (f *FallingText) Draw(screen *ebiten.Image) {
	if f == nil || screen == nil {
		return
	}
	c := f.ctx
	if c == nil || c.closed || c.bounds.Empty() {
		return
	}
	size := c.bounds.Size()
	if c.surface != nil && c.surface.Bounds().Size() != size {
		c.surface.Deallocate()
		c.surface = nil
	}
	if c.surface == nil {
		c.surface = ebiten.NewImage(size.X, size.Y)
	}
	c.surface.Clear()
	c.draw.Draw(c.world, c.surface)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(c.bounds.Min.X), float64(c.bounds.Min.Y))
	screen.DrawImage(c.surface, op)
}

// Close tears the effect down. The value must not be used afterwards.
func (f *FallingText) Close() {
	if f == nil {
		return
	}
	f.ctx.teardown()
}

func (f *FallingText) State() component.ActivationState {
	if f == nil {
		return component.StateIdle
	}
	return f.ctx.state()
}

func (f *FallingText) Stats() Stats {
	if f == nil || f.ctx == nil {
		return Stats{}
	}
	c := f.ctx
	s := Stats{
		State:       c.state(),
		Bodies:      c.physics.Counts(),
		Steps:       c.stepper.Steps(),
		Kicks:       c.liveliness.Kicks(),
		Activations: c.activations,
	}
	if c.world != nil {
		s.Words = len(entity.WordEntities(c.world))
	}
	return s
}
