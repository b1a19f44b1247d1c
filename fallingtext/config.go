package fallingtext

import (
	"errors"
	"fmt"
	"log"
	"math"
	"slices"

	"github.com/milk9111/fallingtext/common"
	"github.com/milk9111/fallingtext/ecs/component"
	"github.com/milk9111/fallingtext/ecs/entity"
	"github.com/milk9111/fallingtext/ecs/render"
	"github.com/milk9111/fallingtext/prefabs"
	"github.com/milk9111/fallingtext/words"
)

var (
	ErrInvalidTrigger  = errors.New("fallingtext: invalid trigger mode")
	ErrMissingElements = entity.ErrMissingElements
)

// Config is fixed for one activation cycle. Changing a content field through
// SetConfig starts a new cycle; style fields apply in place.
type Config struct {
	Text           string
	HighlightWords []string
	Trigger        component.TriggerMode

	Gravity          float64
	FontSize         string
	PointerStiffness float64
	PointerLength    float64
	PointerDamping   float64
	Walls            bool
	JitterChance     float64
	Wiggle           float64
	// Seed 0 picks a time based seed per activation.
	Seed             int64
	LivelinessScript string

	// style
	HighlightColor  string
	TextColor       string
	BackgroundColor string
	Wireframes      bool
	Debug           bool
}

func DefaultConfig() Config {
	return Config{
		Trigger:          component.TriggerHover,
		Gravity:          common.DefaultGravity,
		FontSize:         common.DefaultFontSize,
		PointerStiffness: common.DefaultPointerStiffness,
		PointerDamping:   common.DefaultPointerDamping,
		Walls:            true,
		JitterChance:     common.DefaultJitterChance,
		Wiggle:           common.DefaultWiggle,
		HighlightColor:   common.DefaultHighlightColor,
		TextColor:        common.DefaultTextColor,
		BackgroundColor:  common.DefaultBackground,
	}
}

// ParseTrigger maps "hover" or "click" onto a trigger mode.
func ParseTrigger(s string) (component.TriggerMode, error) {
	m, err := component.ParseTriggerMode(s)
	if err != nil {
		return component.TriggerHover, fmt.Errorf("%w: %q", ErrInvalidTrigger, s)
	}
	return m, nil
}

// ConfigFromSpec converts a YAML spec. Values that do not parse or are out
// of range are logged and replaced by their default.
func ConfigFromSpec(spec prefabs.FallingTextSpec) Config {
	def := DefaultConfig()
	cfg := def
	cfg.Text = spec.Text
	cfg.HighlightWords = append([]string(nil), spec.HighlightWords...)
	cfg.Walls = spec.Walls
	cfg.Wireframes = spec.Wireframes
	cfg.Seed = spec.Seed
	cfg.LivelinessScript = spec.LivelinessScript

	if m, err := ParseTrigger(spec.Trigger); err != nil {
		log.Printf("FallingText: %v, using %s", err, def.Trigger)
	} else {
		cfg.Trigger = m
	}

	cfg.HighlightColor = colorOr("highlightColor", spec.HighlightColor, def.HighlightColor)
	cfg.TextColor = colorOr("textColor", spec.TextColor, def.TextColor)
	cfg.BackgroundColor = colorOr("backgroundColor", spec.BackgroundColor, def.BackgroundColor)

	if _, err := render.ParseFontSize(spec.FontSize); err != nil {
		log.Printf("FallingText: fontSize %q: %v, using %s", spec.FontSize, err, def.FontSize)
	} else {
		cfg.FontSize = spec.FontSize
	}

	cfg.Gravity = floatOr("gravity", spec.Gravity, def.Gravity, math.Inf(-1), math.Inf(1))
	cfg.PointerStiffness = floatOr("mouseConstraintStiffness", spec.PointerStiffness, def.PointerStiffness, math.SmallestNonzeroFloat64, 1)
	cfg.PointerLength = floatOr("pointerLength", spec.PointerLength, def.PointerLength, 0, math.Inf(1))
	cfg.PointerDamping = floatOr("pointerDamping", spec.PointerDamping, def.PointerDamping, 0, math.Inf(1))
	cfg.JitterChance = floatOr("jitterChance", spec.JitterChance, def.JitterChance, 0, 1)
	cfg.Wiggle = floatOr("wiggle", spec.Wiggle, def.Wiggle, 0, math.Inf(1))
	return cfg
}

func colorOr(field, s, fallback string) string {
	if _, err := render.ParseColor(s); err != nil {
		log.Printf("FallingText: %s: %v, using %s", field, err, fallback)
		return fallback
	}
	return s
}

func floatOr(field string, v, fallback, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < lo || v > hi {
		log.Printf("FallingText: %s %v out of range, using %v", field, v, fallback)
		return fallback
	}
	return v
}

// Tokens segments the configured text.
func (c Config) Tokens() []words.Token {
	return words.Segment(c.Text, c.HighlightWords)
}

// sameContent reports whether a and b would build the same world.
func sameContent(a, b Config) bool {
	return slices.Equal(a.Tokens(), b.Tokens()) &&
		a.Trigger == b.Trigger &&
		a.Gravity == b.Gravity &&
		a.FontSize == b.FontSize &&
		a.PointerStiffness == b.PointerStiffness &&
		a.PointerLength == b.PointerLength &&
		a.PointerDamping == b.PointerDamping &&
		a.Walls == b.Walls &&
		a.JitterChance == b.JitterChance &&
		a.Wiggle == b.Wiggle &&
		a.Seed == b.Seed &&
		a.LivelinessScript == b.LivelinessScript
}

func (c Config) fontPixels() float64 {
	px, err := render.ParseFontSize(c.FontSize)
	if err != nil {
		px, _ = render.ParseFontSize(common.DefaultFontSize)
	}
	return px
}
