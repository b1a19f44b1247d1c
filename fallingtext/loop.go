package fallingtext

import "github.com/milk9111/fallingtext/ecs"

// frameLoop is the per-frame driver of an active cycle. Once stopped it
// never runs its systems again.
type frameLoop struct {
	world   *ecs.World
	sched   *ecs.Scheduler
	stopped bool
	frames  int
}

func newFrameLoop(w *ecs.World, systems ...ecs.System) *frameLoop {
	return &frameLoop{world: w, sched: ecs.NewScheduler(systems...)}
}

// tick runs one frame and reports whether it did.
func (l *frameLoop) tick() bool {
	if l == nil || l.stopped || l.world == nil {
		return false
	}
	l.sched.Update(l.world)
	l.frames++
	return true
}

func (l *frameLoop) stop() {
	if l == nil {
		return
	}
	l.stopped = true
	l.world = nil
}

func (l *frameLoop) running() bool {
	return l != nil && !l.stopped
}
