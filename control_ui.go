package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/fallingtext/common"
	"github.com/milk9111/fallingtext/fallingtext"
)

// controlBar holds the buttons whose labels follow the config.
type controlBar struct {
	trigger    *widget.Button
	wireframes *widget.Button
}

func (b *controlBar) sync(cfg fallingtext.Config) {
	if b == nil {
		return
	}
	b.trigger.Text().Label = fmt.Sprintf("Trigger: %s", cfg.Trigger)
	b.wireframes.Text().Label = fmt.Sprintf("Wireframes: %s", onOff(cfg.Wireframes))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// newControlUI builds the top bar with Reset, trigger and wireframe buttons.
func newControlUI(g *Game) (*ebitenui.UI, *controlBar) {
	barImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x52, G: 0x27, B: 0xff, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	btnImage := &widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(btnImage),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	title := widget.NewText(
		widget.TextOpts.Text("Falling Text  (Ctrl+V pastes, R resets)", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	bar := &controlBar{
		trigger:    button("Trigger: hover", g.toggleTrigger),
		wireframes: button("Wireframes: off", g.toggleWireframes),
	}
	reset := button("Reset", func() { g.effect.Reset() })

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(barImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth, barHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(reset)
	panel.AddChild(bar.trigger)
	panel.AddChild(bar.wireframes)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	bar.sync(g.effect.Config())
	return &ebitenui.UI{Container: root}, bar
}
