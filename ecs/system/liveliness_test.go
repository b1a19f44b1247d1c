package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
)

func TestLivelinessScriptImpulse(t *testing.T) {
	script, err := CompileLivelinessScript("test", []byte(`
impulse_x := body.mass * body.r1
impulse_y := -body.mass * 2
`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	ix, iy, err := script.Impulse(ImpulseInput{Mass: 4, R1: 0.5})
	if err != nil {
		t.Fatalf("Impulse: %v", err)
	}
	if ix != 2 || iy != -8 {
		t.Fatalf("impulse = (%v, %v), want (2, -8)", ix, iy)
	}
}

func TestLivelinessScriptErrors(t *testing.T) {
	if _, err := CompileLivelinessScript("bad", []byte(`impulse_x := (`)); err == nil {
		t.Fatalf("expected compile error")
	}

	script, err := CompileLivelinessScript("missing", []byte(`x := 1`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, _, err := script.Impulse(ImpulseInput{}); err == nil {
		t.Fatalf("expected error when impulse is not assigned")
	}

	var none *LivelinessScript
	if _, _, err := none.Impulse(ImpulseInput{}); err == nil {
		t.Fatalf("expected error for nil script")
	}
}

func newBodyWorld(t *testing.T, n int) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld(0, rand.New(rand.NewSource(5)))
	w.SetPhysicsWorld(pw)
	for i := 0; i < n; i++ {
		h, _ := pw.AddWordBody(100+float64(i)*80, 100, 60, 30, false)
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Handle: int(h), Width: 60, Height: 30}); err != nil {
			t.Fatal(err)
		}
		if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{}); err != nil {
			t.Fatal(err)
		}
	}
	return w
}

func TestLivelinessKickRate(t *testing.T) {
	tests := []struct {
		name   string
		chance float64
		check  func(kicks int) bool
	}{
		{"never", 0, func(k int) bool { return k == 0 }},
		{"always", 1, func(k int) bool { return k == 4*100 }},
		{"default", 0.05, func(k int) bool { return k > 0 && k < 60 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newBodyWorld(t, 4)
			sys := NewLivelinessSystem(rand.New(rand.NewSource(9)), tt.chance, nil)
			for i := 0; i < 100; i++ {
				sys.Update(w)
			}
			if !tt.check(sys.Kicks()) {
				t.Fatalf("kicks = %d", sys.Kicks())
			}
		})
	}
}

func TestLivelinessFallsBackOnScriptError(t *testing.T) {
	script, err := CompileLivelinessScript("fails", []byte(`impulse_x := 1 / body.zero`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	w := newBodyWorld(t, 2)
	sys := NewLivelinessSystem(rand.New(rand.NewSource(2)), 1, script)
	sys.Update(w)
	sys.Update(w)
	if !sys.scriptFault {
		t.Fatalf("script fault not recorded")
	}
	if sys.Kicks() != 4 {
		t.Fatalf("kicks = %d, want 4", sys.Kicks())
	}
}

func TestOverlayWiggleIsSmall(t *testing.T) {
	o := NewOverlaySystem(1.5, 11)
	w := ecs.NewWorld()
	for i := 0; i < 300; i++ {
		o.Update(w)
		for _, x := range []float64{0, 120, 640} {
			dx, dy := o.Wiggle(x)
			if math.Abs(dx) > 3 || math.Abs(dy) > 3 {
				t.Fatalf("wiggle (%v, %v) too large at t=%v", dx, dy, o.Elapsed())
			}
		}
	}

	still := NewOverlaySystem(0, 11)
	if dx, dy := still.Wiggle(50); dx != 0 || dy != 0 {
		t.Fatalf("zero amplitude must not wiggle")
	}
}
