package system

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/milk9111/fallingtext/common"
	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
)

const (
	wiggleTimeScale  = 0.8
	wiggleSpaceScale = 0.01
	swayAmplitude    = 0.05
	swayFrequency    = 2.2
)

// OverlaySystem writes each body's pose onto its overlay element, plus a
// small cosmetic wiggle that is a function of elapsed time and body x.
type OverlaySystem struct {
	noise     *perlin.Perlin
	amplitude float64
	dt        float64
	elapsed   float64
}

func NewOverlaySystem(amplitude float64, seed int64) *OverlaySystem {
	return &OverlaySystem{
		noise:     perlin.NewPerlin(2, 2, 3, seed),
		amplitude: amplitude,
		dt:        common.FrameStep,
	}
}

// Elapsed returns the seconds of simulated time seen so far.
func (o *OverlaySystem) Elapsed() float64 {
	if o == nil {
		return 0
	}
	return o.elapsed
}

func (o *OverlaySystem) Update(w *ecs.World) {
	if o == nil || w == nil {
		return
	}
	o.elapsed += o.dt

	ecs.ForEach2(w, component.TransformComponent, component.ElementComponent, func(_ ecs.Entity, t *component.Transform, el *component.Element) {
		if !el.Positioned {
			return
		}
		dx, dy := o.Wiggle(t.X)
		el.X = t.X + dx
		el.Y = t.Y + dy
		el.Rotation = t.Rotation + swayAmplitude*math.Sin(swayFrequency*o.elapsed+t.X*wiggleSpaceScale)
	})
}

// Wiggle returns the cosmetic offset for a body at x at the current time.
func (o *OverlaySystem) Wiggle(x float64) (float64, float64) {
	if o == nil || o.noise == nil || o.amplitude == 0 {
		return 0, 0
	}
	t := o.elapsed * wiggleTimeScale
	u := x * wiggleSpaceScale
	dx := o.noise.Noise2D(t, u) * o.amplitude
	dy := o.noise.Noise2D(u+17.3, t) * o.amplitude
	return dx, dy
}
