package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/fallingtext/common"
	"github.com/milk9111/fallingtext/ecs/component"
	"github.com/milk9111/fallingtext/fallingtext"
	"github.com/milk9111/fallingtext/prefabs"
	"golang.design/x/clipboard"
)

const (
	appName    = "fallingtext"
	barHeight  = 56
	stageInset = 80
)

var backdrop = color.NRGBA{R: 0x06, G: 0x00, B: 0x10, A: 0xff}

type gameOptions struct {
	configPath string
	text       string
	trigger    string
	wireframes bool
	debug      bool
	watch      bool
}

type Game struct {
	opts   gameOptions
	effect *fallingtext.FallingText
	ui     *ebitenui.UI
	bar    *controlBar

	watcher   *prefabs.Watcher
	store     *demoStore
	clipboard bool
}

func NewGame(opts gameOptions) (*Game, error) {
	g := &Game{opts: opts, store: openDemoStore(appName)}

	if st, ok, err := g.store.Load(); err != nil {
		log.Printf("Store: %v", err)
	} else if ok && opts.text == "" {
		g.opts.text = st.Text
		if opts.trigger == "" {
			g.opts.trigger = st.Trigger
		}
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	g.effect = fallingtext.New(cfg, fallingtext.WithBounds(stageBounds()))

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard: paste disabled: %v", err)
	} else {
		g.clipboard = true
	}

	if opts.watch {
		g.watcher = g.startWatcher()
	}

	g.ui, g.bar = newControlUI(g)
	return g, nil
}

// stageBounds is the container rectangle below the control bar.
func stageBounds() image.Rectangle {
	return image.Rect(stageInset, barHeight+stageInset/2, common.BaseWidth-stageInset, common.BaseHeight-stageInset/2)
}

// loadConfig reads the YAML config and applies the command line overrides.
func (g *Game) loadConfig() (fallingtext.Config, error) {
	spec, err := prefabs.LoadFallingTextSpec(g.opts.configPath)
	if err != nil {
		return fallingtext.Config{}, fmt.Errorf("game: %w", err)
	}
	cfg := fallingtext.ConfigFromSpec(spec)
	if g.opts.text != "" {
		cfg.Text = g.opts.text
	}
	if g.opts.trigger != "" {
		if m, err := fallingtext.ParseTrigger(g.opts.trigger); err != nil {
			log.Printf("Game: %v", err)
		} else {
			cfg.Trigger = m
		}
	}
	cfg.Wireframes = cfg.Wireframes || g.opts.wireframes
	cfg.Debug = g.opts.debug
	return cfg, nil
}

func (g *Game) startWatcher() *prefabs.Watcher {
	dirs := []string{}
	if g.opts.configPath != "" {
		dirs = append(dirs, filepath.Dir(g.opts.configPath))
	}
	for _, dir := range []string{prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		log.Printf("Watcher: nothing to watch")
		return nil
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("Watcher: %v", err)
		return nil
	}
	log.Printf("Watcher: watching %s", strings.Join(dirs, ", "))
	return w
}

func (g *Game) Update() error {
	g.drainWatcher()

	if g.clipboard && pasteShortcut() {
		g.paste()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.effect.Reset()
	}

	g.ui.Update()
	return g.effect.Update()
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if prefabs.IsScriptFile(name) {
		log.Printf("Watcher: %s changed, restarting", name)
		g.effect.Reset()
		return
	}
	cfg, err := g.loadConfig()
	if err != nil {
		log.Printf("Watcher: reload %s: %v", name, err)
		return
	}
	log.Printf("Watcher: %s changed, reloading", name)
	g.setConfig(cfg)
}

func pasteShortcut() bool {
	mod := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	return mod && inpututil.IsKeyJustPressed(ebiten.KeyV)
}

func (g *Game) paste() {
	text := strings.TrimSpace(string(clipboard.Read(clipboard.FmtText)))
	if text == "" {
		return
	}
	g.opts.text = text
	cfg := g.effect.Config()
	cfg.Text = text
	g.setConfig(cfg)
	g.remember()
}

func (g *Game) setConfig(cfg fallingtext.Config) {
	g.effect.SetConfig(cfg)
	if g.bar != nil {
		g.bar.sync(cfg)
	}
}

// toggleTrigger switches between hover and click and starts a new cycle.
func (g *Game) toggleTrigger() {
	cfg := g.effect.Config()
	if cfg.Trigger == component.TriggerHover {
		cfg.Trigger = component.TriggerClick
	} else {
		cfg.Trigger = component.TriggerHover
	}
	g.opts.trigger = cfg.Trigger.String()
	g.setConfig(cfg)
	g.remember()
}

func (g *Game) toggleWireframes() {
	cfg := g.effect.Config()
	cfg.Wireframes = !cfg.Wireframes
	g.opts.wireframes = cfg.Wireframes
	g.setConfig(cfg)
}

func (g *Game) remember() {
	cfg := g.effect.Config()
	if err := g.store.Save(demoState{Text: cfg.Text, Trigger: cfg.Trigger.String()}); err != nil {
		log.Printf("Store: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	g.effect.Draw(screen)
	g.ui.Draw(screen)

	if g.opts.debug {
		st := g.effect.Stats()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  state: %s  words: %d  bodies: %d  steps: %d  kicks: %d",
			ebiten.ActualFPS(), st.State, st.Words, st.Bodies.DynamicBodies, st.Steps, st.Kicks), 8, common.BaseHeight-20)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.effect.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
