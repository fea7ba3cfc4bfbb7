package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PanelActions are the handlers behind the panel buttons.
type PanelActions struct {
	Save      func()
	Undo      func()
	AddRow    func()
	AddCol    func()
	LayerUp   func()
	LayerDown func()
	RunScript func()
}

// Panel is the translucent strip on the left of the editor window.
type Panel struct {
	ui *ebitenui.UI

	tile   *widget.Text
	layer  *widget.Text
	size   *widget.Text
	notice *widget.Text
}

func solidNineSlice(c color.Color) *imageui.NineSlice {
	return imageui.NewNineSliceColor(c)
}

func BuildPanel(width int, actions PanelActions) *Panel {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var face text.Face = &text.GoTextFace{Source: s, Size: 16}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	newText := func(label string) *widget.Text {
		return widget.NewText(widget.TextOpts.Text(label, &face, white))
	}

	btnImg := &widget.ButtonImage{
		Idle:    solidNineSlice(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
		Hover:   solidNineSlice(color.NRGBA{R: 0x48, G: 0x48, B: 0x48, A: 0xff}),
		Pressed: solidNineSlice(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}),
	}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
	}

	p := &Panel{
		tile:   newText(""),
		layer:  newText(""),
		size:   newText(""),
		notice: newText(""),
	}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, true}, nil),
			widget.GridLayoutOpts.Spacing(6, 6),
		)),
	)
	buttons.AddChild(newButton("Save (S)", actions.Save))
	buttons.AddChild(newButton("Undo (Ctrl+Z)", actions.Undo))
	buttons.AddChild(newButton("+Row (R)", actions.AddRow))
	buttons.AddChild(newButton("+Col (C)", actions.AddCol))
	buttons.AddChild(newButton("Layer Up", actions.LayerUp))
	buttons.AddChild(newButton("Layer Down", actions.LayerDown))
	buttons.AddChild(newButton("Script (F5)", actions.RunScript))

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.NRGBA{A: 128})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 32, Bottom: 32, Left: 32, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
	)
	panel.AddChild(newText("Map Editor:"))
	panel.AddChild(p.tile)
	panel.AddChild(p.layer)
	panel.AddChild(p.size)
	panel.AddChild(buttons)
	panel.AddChild(p.notice)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	p.ui = &ebitenui.UI{Container: root}
	return p
}

// Refresh copies the editor state into the labels.
func (p *Panel) Refresh(e *Editor) {
	p.tile.Label = fmt.Sprintf("Tile:\n%s", e.Brush)
	p.layer.Label = fmt.Sprintf("Layer: %s", e.Layer)
	p.size.Label = fmt.Sprintf("Size: %dx%d", e.Map.Width(), e.Map.Height())
	if msg, ok := e.Notice(); ok {
		p.notice.Label = msg
	} else {
		p.notice.Label = ""
	}
}

func (p *Panel) Update() {
	p.ui.Update()
}

func (p *Panel) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}
