package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fallingtext/common"
)

func main() {
	configPath := flag.String("config", "", "falling text YAML file (defaults to prefabs/falling_text.yaml)")
	text := flag.String("text", "", "text to drop, overrides the config")
	trigger := flag.String("trigger", "", "hover or click, overrides the config")
	wireframes := flag.Bool("wireframes", false, "draw the raw physics shapes")
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "reload the config and scripts when they change on disk")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("falling text")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(gameOptions{
		configPath: *configPath,
		text:       *text,
		trigger:    *trigger,
		wireframes: *wireframes,
		debug:      *debug,
		watch:      *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
