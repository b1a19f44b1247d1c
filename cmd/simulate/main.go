// Command simulate runs the falling text effect without a window and prints
// how the pile behaves, for tuning a config.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/milk9111/fallingtext/ecs/render"
	"github.com/milk9111/fallingtext/ecs/system"
	"github.com/milk9111/fallingtext/fallingtext"
	"github.com/milk9111/fallingtext/prefabs"
)

// hoverInput rests outside the container, then enters it at frame enterAt.
type hoverInput struct {
	frame   int
	enterAt int
	target  system.PointerSample
}

func (h *hoverInput) Pointer() system.PointerSample {
	h.frame++
	if h.frame < h.enterAt {
		return system.PointerSample{X: -1, Y: -1}
	}
	return h.target
}

func main() {
	configPath := flag.String("config", "", "falling text YAML file")
	frames := flag.Int("frames", 600, "frames to simulate")
	width := flag.Int("width", 800, "container width")
	height := flag.Int("height", 400, "container height")
	seed := flag.Int64("seed", 1, "random seed, overrides the config")
	every := flag.Int("every", 60, "print stats every n frames")
	flag.Parse()

	spec, err := prefabs.LoadFallingTextSpec(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg := fallingtext.ConfigFromSpec(spec)
	cfg.Seed = *seed

	px, err := render.ParseFontSize(cfg.FontSize)
	if err != nil {
		log.Fatal(err)
	}
	m, err := render.NewFaceMeasurer(px)
	if err != nil {
		log.Fatal(err)
	}

	in := &hoverInput{enterAt: 2, target: system.PointerSample{X: float64(*width) / 2, Y: float64(*height) / 2}}
	effect := fallingtext.New(cfg,
		fallingtext.WithMeasurer(m),
		fallingtext.WithInput(in),
		fallingtext.WithBounds(image.Rect(0, 0, *width, *height)),
	)
	defer effect.Close()

	for i := 1; i <= *frames; i++ {
		if err := effect.Update(); err != nil {
			log.Fatal(err)
		}
		if *every > 0 && i%*every == 0 {
			st := effect.Stats()
			fmt.Fprintf(os.Stdout, "frame %5d  state=%-6s words=%d bodies=%d floors=%d pointers=%d steps=%d kicks=%d\n",
				i, st.State, st.Words, st.Bodies.DynamicBodies, st.Bodies.Floors, st.Bodies.PointerConstraints, st.Steps, st.Kicks)
		}
	}
}
