package fallingtext

import (
	"errors"
	"image"
	"testing"

	"github.com/milk9111/fallingtext/ecs/component"
	"github.com/milk9111/fallingtext/prefabs"
)

func TestConfigFromSpecDefaults(t *testing.T) {
	spec, err := prefabs.DefaultFallingTextSpec()
	if err != nil {
		t.Fatalf("DefaultFallingTextSpec: %v", err)
	}
	cfg := ConfigFromSpec(spec)
	def := DefaultConfig()

	if cfg.Trigger != component.TriggerHover || cfg.Gravity != def.Gravity || cfg.FontSize != def.FontSize {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.PointerStiffness != def.PointerStiffness || cfg.BackgroundColor != def.BackgroundColor {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Wireframes || !cfg.Walls {
		t.Fatalf("wireframes=%v walls=%v", cfg.Wireframes, cfg.Walls)
	}
}

func TestConfigFromSpecFallbacks(t *testing.T) {
	def := DefaultConfig()
	tests := []struct {
		name  string
		edit  func(*prefabs.FallingTextSpec)
		check func(Config) bool
	}{
		{"bad trigger", func(s *prefabs.FallingTextSpec) { s.Trigger = "doubleclick" }, func(c Config) bool { return c.Trigger == component.TriggerHover }},
		{"click trigger", func(s *prefabs.FallingTextSpec) { s.Trigger = "Click" }, func(c Config) bool { return c.Trigger == component.TriggerClick }},
		{"bad color", func(s *prefabs.FallingTextSpec) { s.HighlightColor = "notacolor" }, func(c Config) bool { return c.HighlightColor == def.HighlightColor }},
		{"named color", func(s *prefabs.FallingTextSpec) { s.TextColor = "rebeccapurple" }, func(c Config) bool { return c.TextColor == "rebeccapurple" }},
		{"bad font size", func(s *prefabs.FallingTextSpec) { s.FontSize = "-3px" }, func(c Config) bool { return c.FontSize == def.FontSize }},
		{"px font size", func(s *prefabs.FallingTextSpec) { s.FontSize = "48px" }, func(c Config) bool { return c.FontSize == "48px" }},
		{"zero stiffness", func(s *prefabs.FallingTextSpec) { s.PointerStiffness = 0 }, func(c Config) bool { return c.PointerStiffness == def.PointerStiffness }},
		{"jitter above one", func(s *prefabs.FallingTextSpec) { s.JitterChance = 2 }, func(c Config) bool { return c.JitterChance == def.JitterChance }},
		{"negative wiggle", func(s *prefabs.FallingTextSpec) { s.Wiggle = -1 }, func(c Config) bool { return c.Wiggle == def.Wiggle }},
		{"negative gravity kept", func(s *prefabs.FallingTextSpec) { s.Gravity = -0.3 }, func(c Config) bool { return c.Gravity == -0.3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := prefabs.DefaultFallingTextSpec()
			if err != nil {
				t.Fatal(err)
			}
			tt.edit(&spec)
			if cfg := ConfigFromSpec(spec); !tt.check(cfg) {
				t.Fatalf("unexpected config: %+v", cfg)
			}
		})
	}
}

func TestParseTrigger(t *testing.T) {
	if m, err := ParseTrigger("click"); err != nil || m != component.TriggerClick {
		t.Fatalf("ParseTrigger(click) = %v, %v", m, err)
	}
	if _, err := ParseTrigger("press"); !errors.Is(err, ErrInvalidTrigger) {
		t.Fatalf("err = %v, want ErrInvalidTrigger", err)
	}
}

func TestSameContent(t *testing.T) {
	base := DefaultConfig()
	base.Text = "React Bits is great"
	base.HighlightWords = []string{"React"}

	tests := []struct {
		name string
		edit func(*Config)
		want bool
	}{
		{"identical", func(*Config) {}, true},
		{"extra whitespace", func(c *Config) { c.Text = "  React   Bits is\ngreat " }, true},
		{"style only", func(c *Config) { c.TextColor = "#000"; c.Wireframes = true; c.BackgroundColor = "navy" }, true},
		{"text", func(c *Config) { c.Text = "React Bits is fine" }, false},
		{"highlights", func(c *Config) { c.HighlightWords = []string{"Bits"} }, false},
		{"unused highlight", func(c *Config) { c.HighlightWords = []string{"React", "Vue"} }, true},
		{"trigger", func(c *Config) { c.Trigger = component.TriggerClick }, false},
		{"gravity", func(c *Config) { c.Gravity = 1 }, false},
		{"font size", func(c *Config) { c.FontSize = "3rem" }, false},
		{"stiffness", func(c *Config) { c.PointerStiffness = 0.5 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := base
			next.HighlightWords = append([]string(nil), base.HighlightWords...)
			tt.edit(&next)
			if got := sameContent(base, next); got != tt.want {
				t.Fatalf("sameContent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	f, in := newTestEffect(t, "React Bits great", component.TriggerHover, image.Rect(0, 0, 800, 400))
	in.moveTo(400, 200)
	_ = f.Update()
	old := f.ctx

	t.Run("style change keeps cycle", func(t *testing.T) {
		cfg := f.Config()
		cfg.Wireframes = true
		cfg.TextColor = "#222222"
		next := reconcile(old, cfg, f.env)
		if next != old {
			t.Fatalf("style change rebuilt the context")
		}
		if next.state() != component.StateActive || !next.debug.Enabled {
			t.Fatalf("state=%v wireframes=%v", next.state(), next.debug.Enabled)
		}
		if next.physics.Counts().DynamicBodies != 3 {
			t.Fatalf("bodies lost on style change")
		}
	})

	t.Run("content change rebuilds", func(t *testing.T) {
		pw := old.physics
		cfg := f.Config()
		cfg.Text = "brand new words here"
		next := reconcile(old, cfg, f.env)
		f.ctx = next
		if next == old {
			t.Fatalf("content change kept the old context")
		}
		if !old.closed || old.physics != nil || old.world != nil {
			t.Fatalf("old context not torn down")
		}
		if pw.Counts().DynamicBodies != 0 {
			t.Fatalf("old world still has bodies")
		}
		if next.state() != component.StateIdle || next.physics != nil {
			t.Fatalf("new context must be idle")
		}
		if len(next.tokens) != 4 {
			t.Fatalf("tokens = %d, want 4", len(next.tokens))
		}
	})

	t.Run("nil old context", func(t *testing.T) {
		next := reconcile(nil, DefaultConfig(), environment{measurer: fixedMeasurer{charW: 10, h: 20}})
		if next == nil || next.closed {
			t.Fatalf("expected a fresh context")
		}
		next.teardown()
	})
}
