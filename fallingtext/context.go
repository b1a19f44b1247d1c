package fallingtext

import (
	"image"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
	"github.com/milk9111/fallingtext/ecs/entity"
	"github.com/milk9111/fallingtext/ecs/render"
	"github.com/milk9111/fallingtext/ecs/system"
	"github.com/milk9111/fallingtext/prefabs"
	"github.com/milk9111/fallingtext/words"
)

const layoutPadding = 16.0

// environment is what the host hands every activation context.
type environment struct {
	measurer render.Measurer
	input    system.InputSource
	bounds   image.Rectangle
}

// ActivationContext holds everything one activation cycle owns. Nothing in
// it is shared with another cycle.
type ActivationContext struct {
	cfg    Config
	tokens []words.Token
	bounds image.Rectangle

	world    *ecs.World
	control  ecs.Entity
	measurer render.Measurer
	face     text.Face

	input   *system.InputSystem
	trigger *system.TriggerSystem
	idle    *ecs.Scheduler

	renderer *system.RenderSystem
	debug    *system.PhysicsDebugSystem
	draw     *ecs.Scheduler

	physics    *ecs.PhysicsWorld
	loop       *frameLoop
	stepper    *system.PhysicsSystem
	liveliness *system.LivelinessSystem
	script     *system.LivelinessScript

	surface *ebiten.Image

	activations int
	closed      bool
}

// newContext builds an idle context: word elements in flow, no physics.
func newContext(cfg Config, env environment) *ActivationContext {
	c := &ActivationContext{
		cfg:    cfg,
		tokens: cfg.Tokens(),
		bounds: env.bounds,
		world:  ecs.NewWorld(),
	}

	c.measurer = env.measurer
	if c.measurer == nil {
		fm, err := render.NewFaceMeasurer(cfg.fontPixels())
		if err != nil {
			log.Printf("FallingText: font: %v", err)
		} else {
			c.measurer = fm
			c.face = fm.Face
		}
	} else if fm, ok := env.measurer.(*render.FaceMeasurer); ok {
		c.face = fm.Face
	}

	c.control = c.world.CreateEntity()
	_ = ecs.Add(c.world, c.control, component.ActivationComponent, &component.Activation{Mode: cfg.Trigger})
	_ = ecs.Add(c.world, c.control, component.PointerComponent, &component.Pointer{})

	if _, err := entity.BuildWords(c.world, c.tokens, c.measurer, c.layout()); err != nil {
		log.Printf("FallingText: build words: %v", err)
	}

	c.input = system.NewInputSystem(env.input)
	c.input.SetBounds(env.bounds)
	c.trigger = system.NewTriggerSystem(c.onActivate)
	c.idle = ecs.NewScheduler(c.input, c.trigger, activationLog{c: c})

	c.renderer = system.NewRenderSystem(c.style())
	c.debug = system.NewPhysicsDebugSystem(cfg.Wireframes)
	c.draw = ecs.NewScheduler(c.renderer, c.debug)

	if cfg.LivelinessScript != "" {
		c.script = loadLivelinessScript(cfg.LivelinessScript)
	}
	return c
}

func loadLivelinessScript(name string) *system.LivelinessScript {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		log.Printf("FallingText: liveliness script %s: %v", name, err)
		return nil
	}
	script, err := system.CompileLivelinessScript(name, src)
	if err != nil {
		log.Printf("FallingText: %v", err)
		return nil
	}
	return script
}

func (c *ActivationContext) layout() entity.Layout {
	return entity.Layout{
		Width:   float64(c.bounds.Dx()),
		Height:  float64(c.bounds.Dy()),
		Padding: layoutPadding,
	}
}

func (c *ActivationContext) style() system.RenderStyle {
	def := DefaultConfig()
	st := system.RenderStyle{Face: c.face}
	if c.measurer != nil {
		st.LineHeight = c.measurer.LineHeight()
	}
	st.TextColor = parseColorOr(c.cfg.TextColor, def.TextColor)
	st.HighlightColor = parseColorOr(c.cfg.HighlightColor, def.HighlightColor)
	st.Background = parseColorOr(c.cfg.BackgroundColor, def.BackgroundColor)
	return st
}

// applyStyle takes the style fields of cfg without touching the cycle.
func (c *ActivationContext) applyStyle(cfg Config) {
	if c == nil || c.closed {
		return
	}
	c.cfg.HighlightColor = cfg.HighlightColor
	c.cfg.TextColor = cfg.TextColor
	c.cfg.BackgroundColor = cfg.BackgroundColor
	c.cfg.Wireframes = cfg.Wireframes
	c.cfg.Debug = cfg.Debug
	c.renderer.SetStyle(c.style())
	c.debug.Enabled = cfg.Wireframes
}

// setBounds moves the container. While idle the words reflow to the new
// size; an active world keeps the floor it was built with.
func (c *ActivationContext) setBounds(r image.Rectangle) {
	if c == nil || c.closed {
		return
	}
	resized := r.Dx() != c.bounds.Dx() || r.Dy() != c.bounds.Dy()
	c.bounds = r
	c.input.SetBounds(r)
	if resized && c.physics == nil {
		entity.Reflow(c.world, c.measurer, c.layout())
	}
}

func (c *ActivationContext) activation() *component.Activation {
	if c == nil || c.world == nil {
		return nil
	}
	act, _ := ecs.Get(c.world, c.control, component.ActivationComponent)
	return act
}

func (c *ActivationContext) state() component.ActivationState {
	if act := c.activation(); act != nil {
		return act.State
	}
	return component.StateIdle
}

func (c *ActivationContext) newRand() *rand.Rand {
	seed := c.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func parseColorOr(s, fallback string) color.NRGBA {
	c, err := render.ParseColor(s)
	if err != nil {
		c, _ = render.ParseColor(fallback)
	}
	return c
}
