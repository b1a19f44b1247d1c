package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ImpulseInput is what a liveliness script sees for one body.
type ImpulseInput struct {
	X, Y, Angle   float64
	Width, Height float64
	Mass          float64
	Elapsed       float64
	// R1 and R2 are uniform in [0,1), drawn from the seeded generator.
	R1, R2 float64
}

// LivelinessScript is a compiled tengo script that computes the kick for a
// body. The script reads `body` and must assign `impulse_x` and `impulse_y`.
type LivelinessScript struct {
	name     string
	compiled *tengo.Compiled
}

// CompileLivelinessScript compiles src once; Impulse reruns it per kick.
func CompileLivelinessScript(name string, src []byte) (*LivelinessScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("body", map[string]any{})
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("liveliness: compile %s: %w", name, err)
	}
	return &LivelinessScript{name: name, compiled: compiled}, nil
}

func (s *LivelinessScript) Impulse(in ImpulseInput) (float64, float64, error) {
	if s == nil || s.compiled == nil {
		return 0, 0, fmt.Errorf("liveliness: nil script")
	}
	body := map[string]any{
		"x":       in.X,
		"y":       in.Y,
		"angle":   in.Angle,
		"width":   in.Width,
		"height":  in.Height,
		"mass":    in.Mass,
		"elapsed": in.Elapsed,
		"r1":      in.R1,
		"r2":      in.R2,
	}
	if err := s.compiled.Set("body", body); err != nil {
		return 0, 0, fmt.Errorf("liveliness: %s: set body: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return 0, 0, fmt.Errorf("liveliness: %s: run: %w", s.name, err)
	}
	if !s.compiled.IsDefined("impulse_x") || !s.compiled.IsDefined("impulse_y") {
		return 0, 0, fmt.Errorf("liveliness: %s: impulse_x and impulse_y must be assigned", s.name)
	}
	return s.compiled.Get("impulse_x").Float(), s.compiled.Get("impulse_y").Float(), nil
}
