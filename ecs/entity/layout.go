package entity

import (
	"math"

	"github.com/milk9111/fallingtext/ecs/render"
	"github.com/milk9111/fallingtext/words"
)

// Layout describes the container the words flow inside.
type Layout struct {
	Width   float64
	Height  float64
	Padding float64
}

// Box is a measured flow box, top-left based.
type Box struct {
	X, Y, W, H float64
}

// FlowLayout lays tokens out like inline text: words separated by one
// measured space, wrapped at the container width, each line centered, the
// whole block centered vertically.
func FlowLayout(tokens []words.Token, m render.Measurer, l Layout) []Box {
	if len(tokens) == 0 || m == nil {
		return nil
	}

	spaceW, _ := m.Measure(" ")
	lineH := m.LineHeight()
	maxW := math.Max(l.Width-2*l.Padding, 0)

	boxes := make([]Box, len(tokens))
	type line struct {
		first, last int
		width       float64
	}
	var lines []line
	cur := line{first: 0, last: -1}

	for i, tok := range tokens {
		w, h := m.Measure(tok.Text)
		boxes[i] = Box{W: w, H: math.Max(h, lineH)}

		next := w
		if cur.last >= cur.first {
			next = cur.width + spaceW + w
		}
		// always keep at least one word per line
		if cur.last >= cur.first && next > maxW {
			lines = append(lines, cur)
			cur = line{first: i, last: i, width: w}
			continue
		}
		cur.last = i
		cur.width = next
	}
	lines = append(lines, cur)

	blockH := float64(len(lines)) * lineH
	y := math.Max((l.Height-blockH)/2, l.Padding)
	for _, ln := range lines {
		x := l.Padding + math.Max((maxW-ln.width)/2, 0)
		for i := ln.first; i <= ln.last; i++ {
			boxes[i].X = x
			boxes[i].Y = y + (lineH-boxes[i].H)/2
			x += boxes[i].W + spaceW
		}
		y += lineH
	}
	return boxes
}
