package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/fallingtext/ecs"
	"github.com/milk9111/fallingtext/ecs/component"
	"github.com/milk9111/fallingtext/ecs/render"
)

const (
	highlightSaturation = 0.75
	highlightValue      = 0.95
)

// RenderStyle is how words and the container background are painted.
type RenderStyle struct {
	Face           text.Face
	LineHeight     float64
	TextColor      color.Color
	HighlightColor color.Color
	Background     color.NRGBA
}

// RenderSystem draws every word element onto the container surface.
type RenderSystem struct {
	style RenderStyle
}

func NewRenderSystem(style RenderStyle) *RenderSystem {
	return &RenderSystem{style: style}
}

// SetStyle replaces the colors and face used from the next frame on.
func (r *RenderSystem) SetStyle(style RenderStyle) {
	if r == nil {
		return
	}
	r.style = style
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil || r.style.Face == nil {
		return
	}
	if r.style.Background.A > 0 {
		screen.Fill(r.style.Background)
	}

	ecs.ForEach2(w, component.WordComponent, component.ElementComponent, func(_ ecs.Entity, word *component.Word, el *component.Element) {
		op := &text.DrawOptions{}
		op.LineSpacing = r.style.LineHeight
		if el.Positioned {
			op.GeoM.Translate(-el.Width/2, -el.Height/2)
			op.GeoM.Rotate(el.Rotation)
			op.GeoM.Translate(el.X, el.Y)
		} else {
			op.GeoM.Translate(el.FlowX, el.FlowY)
		}
		op.ColorScale.ScaleWithColor(r.wordColor(word))
		text.Draw(screen, word.Text, r.style.Face, op)
	})
}

func (r *RenderSystem) wordColor(word *component.Word) color.Color {
	switch {
	case word.Highlighted && word.HasHue:
		return render.HueColor(word.Hue, highlightSaturation, highlightValue)
	case word.Highlighted && r.style.HighlightColor != nil:
		return r.style.HighlightColor
	case r.style.TextColor != nil:
		return r.style.TextColor
	default:
		return color.White
	}
}
