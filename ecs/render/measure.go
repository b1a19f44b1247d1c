package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/fallingtext/common"
)

// Measurer reports the on-screen box of a run of text.
type Measurer interface {
	Measure(s string) (width, height float64)
	LineHeight() float64
}

// FaceMeasurer measures text with an ebiten text face.
type FaceMeasurer struct {
	Face text.Face
	Size float64
}

// NewFaceMeasurer builds a measurer over the bold face at size px.
func NewFaceMeasurer(size float64) (*FaceMeasurer, error) {
	face, err := Face(size)
	if err != nil {
		return nil, err
	}
	return &FaceMeasurer{Face: face, Size: size}, nil
}

func (m *FaceMeasurer) Measure(s string) (float64, float64) {
	if m == nil || m.Face == nil {
		return 0, 0
	}
	return text.Measure(s, m.Face, m.LineHeight())
}

func (m *FaceMeasurer) LineHeight() float64 {
	if m == nil {
		return 0
	}
	return m.Size * 1.2
}

// ParseFontSize converts a CSS font size ("2rem", "32px", "1.5em", "24pt",
// "18") into pixels.
func ParseFontSize(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("render: empty font size")
	}

	scale := 1.0
	switch {
	case strings.HasSuffix(s, "rem"):
		s, scale = strings.TrimSuffix(s, "rem"), common.RootFontSize
	case strings.HasSuffix(s, "em"):
		s, scale = strings.TrimSuffix(s, "em"), common.RootFontSize
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "pt"):
		s, scale = strings.TrimSuffix(s, "pt"), 96.0/72.0
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("render: parse font size: %w", err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("render: font size must be positive, got %v", v)
	}
	return v * scale, nil
}
