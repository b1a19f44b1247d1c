package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/fallingtext/common"
	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
)

// jitterStrength is the largest velocity change of one kick, px per step.
const jitterStrength = 0.5

// LivelinessSystem occasionally kicks bodies so a settled pile keeps moving.
type LivelinessSystem struct {
	rng    *rand.Rand
	chance float64
	script *LivelinessScript

	elapsed     float64
	scriptFault bool
	kicks       int
}

func NewLivelinessSystem(rng *rand.Rand, chance float64, script *LivelinessScript) *LivelinessSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &LivelinessSystem{rng: rng, chance: common.Clamp(chance, 0, 1), script: script}
}

// Kicks returns the number of impulses applied so far.
func (l *LivelinessSystem) Kicks() int {
	if l == nil {
		return 0
	}
	return l.kicks
}

func (l *LivelinessSystem) Update(w *ecs.World) {
	if l == nil || w == nil || l.chance <= 0 {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	l.elapsed += common.FrameStep

	grabbed, holding := pw.Grabbed()
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(_ ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		h := ecs.BodyHandle(body.Handle)
		if holding && h == grabbed {
			return
		}
		if l.rng.Float64() >= l.chance {
			return
		}
		mass := pw.Mass(h)
		r1, r2 := l.rng.Float64(), l.rng.Float64()

		ix, iy := l.defaultImpulse(mass, r1, r2)
		if l.script != nil && !l.scriptFault {
			sx, sy, err := l.script.Impulse(ImpulseInput{
				X: t.X, Y: t.Y, Angle: t.Rotation,
				Width: body.Width, Height: body.Height, Mass: mass,
				Elapsed: l.elapsed, R1: r1, R2: r2,
			})
			if err != nil {
				log.Printf("Liveliness: script error, using built-in impulse: %v", err)
				l.scriptFault = true
			} else {
				ix, iy = sx, sy
			}
		}
		pw.ApplyImpulse(h, ix, iy)
		l.kicks++
	})
}

// defaultImpulse is a sideways nudge in either direction plus a small hop.
func (l *LivelinessSystem) defaultImpulse(mass, r1, r2 float64) (float64, float64) {
	dv := jitterStrength * common.TPS
	return (r1 - 0.5) * 2 * dv * mass, -r2 * dv * mass
}
