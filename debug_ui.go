package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DebugInfo is the data shown by the F3 overlay.
type DebugInfo struct {
	Version  string
	FPS      float64
	TPS      float64
	MapW     int
	MapH     int
	PlayerX  float64
	PlayerY  float64
	Facing   string
	Boxes    int
	Watching bool

	// CursorX, CursorY is the world pixel under the mouse.
	CursorX     float64
	CursorY     float64
	CursorSolid bool
}

func (d DebugInfo) String() string {
	watch := "off"
	if d.Watching {
		watch = "on"
	}
	cursor := "clear"
	if d.CursorSolid {
		cursor = "solid"
	}
	return fmt.Sprintf("Version: %s\nFPS: %.0f  TPS: %.0f\nMap: %dx%d  Collision boxes: %d\nPlayer: (%.1f, %.1f) %s\nCursor: (%.1f, %.1f) %s\nHot reload: %s",
		d.Version, d.FPS, d.TPS, d.MapW, d.MapH, d.Boxes, d.PlayerX, d.PlayerY, d.Facing, d.CursorX, d.CursorY, cursor, watch)
}

// DebugUI is a translucent panel in the top-left corner.
type DebugUI struct {
	ui   *ebitenui.UI
	text *widget.Text
}

func NewDebugUI() *DebugUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 128})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	text := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(text)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &DebugUI{ui: &ebitenui.UI{Container: root}, text: text}
}

func (d *DebugUI) SetInfo(info DebugInfo) {
	d.text.Label = info.String()
}

func (d *DebugUI) Update() {
	d.ui.Update()
}

func (d *DebugUI) Draw(screen *ebiten.Image) {
	d.ui.Draw(screen)
}
