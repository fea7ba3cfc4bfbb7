package main

import (
	"context"
	"errors"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/overworld/obj"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/tilemap"
	"golang.org/x/image/colornames"
)

const scriptTimeout = 2 * time.Second

// EditorGame is the ebiten front end over Editor.
type EditorGame struct {
	ed     *Editor
	panel  *Panel
	atlas  *obj.Atlas
	scale  float64
	panelW int

	// pan offset of the map in screen pixels
	panX float64
	panY float64

	cursorRow int
	cursorCol int
	hovering  bool

	// scriptWatch reruns the map script when it is saved. nil when off.
	scriptWatch *prefabs.Watcher
}

func NewEditorGame(ed *Editor, atlas *obj.Atlas, scale float64, panelW int) *EditorGame {
	g := &EditorGame{ed: ed, atlas: atlas, scale: scale, panelW: panelW}
	g.panel = BuildPanel(panelW, PanelActions{
		Save:      func() { _ = g.ed.Save() },
		Undo:      func() { g.ed.Undo() },
		AddRow:    func() { _ = g.ed.AddRow() },
		AddCol:    func() { _ = g.ed.AddCol() },
		LayerUp:   g.ed.LayerUp,
		LayerDown: g.ed.LayerDown,
		RunScript: g.runScript,
	})
	return g
}

func (g *EditorGame) cellSize() float64 {
	return float64(g.atlas.TileSize) * g.scale
}

// mapGeo places map pixels to the right of the panel, shifted by the pan.
func (g *EditorGame) mapGeo() ebiten.GeoM {
	var geo ebiten.GeoM
	geo.Translate(float64(g.panelW)+g.panX, g.panY)
	return geo
}

func (g *EditorGame) updateCursor() {
	mx, my := ebiten.CursorPosition()
	if mx < g.panelW {
		g.hovering = false
		return
	}
	size := g.cellSize()
	g.cursorCol = int(math.Floor((float64(mx-g.panelW) - g.panX) / size))
	g.cursorRow = int(math.Floor((float64(my) - g.panY) / size))
	g.hovering = g.ed.Map.InBounds(g.cursorRow, g.cursorCol)
}

func ctrlHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func shiftHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift)
}

// ignoreOutside drops errors from clicks that missed the grid.
func ignoreOutside(err error) {
	if err != nil && !errors.Is(err, tilemap.ErrIndexOutOfBounds) {
		log.Printf("editor: %v", err)
	}
}

func (g *EditorGame) runScript() {
	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()
	_ = g.ed.RunScript(ctx)
}

func (g *EditorGame) Update() error {
	g.panel.Update()
	g.updateCursor()

	for _, path := range g.scriptWatch.Drain() {
		if g.ed.ScriptChanged(path) {
			g.runScript()
			break
		}
	}

	g.handleMouse()
	g.handleKeys()

	if _, wy := ebiten.Wheel(); wy != 0 {
		step := wy * g.cellSize()
		if shiftHeld() {
			g.panX += step
		} else {
			g.panY += step
		}
	}

	g.ed.Tick()
	g.panel.Refresh(g.ed)
	return nil
}

func (g *EditorGame) handleMouse() {
	if g.hovering {
		switch {
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			ignoreOutside(g.ed.Paint(g.cursorRow, g.cursorCol))
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
			ignoreOutside(g.ed.Erase(g.cursorRow, g.cursorCol))
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
			ignoreOutside(g.ed.Pick(g.cursorRow, g.cursorCol))
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.ed.EndStroke()
	}
}

func (g *EditorGame) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.ed.MoveBrush(-1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.ed.MoveBrush(1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.ed.MoveBrush(0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.ed.MoveBrush(0, 1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.ed.LayerUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.ed.LayerDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.runScript()
	}

	if ctrlHeld() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyZ):
			g.ed.Undo()
		case inpututil.IsKeyJustPressed(ebiten.KeyC):
			if err := g.ed.CopyBrush(); err != nil {
				log.Printf("editor: copy: %v", err)
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyV):
			_ = g.ed.PasteBrush()
		}
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		_ = g.ed.Save()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if shiftHeld() {
			_ = g.ed.RemoveRow()
		} else {
			_ = g.ed.AddRow()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if shiftHeld() {
			_ = g.ed.RemoveCol()
		} else {
			_ = g.ed.AddCol()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		if g.hovering {
			ignoreOutside(g.ed.FloodFill(g.cursorRow, g.cursorCol))
		}
	}
}

var (
	highlightColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
	boundsColor    = colornames.Gray
)

func (g *EditorGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	geo := g.mapGeo()
	for _, role := range tilemap.LayerTypes() {
		layer, err := g.ed.Map.Layer(role)
		if err != nil {
			continue
		}
		obj.DrawLayer(screen, layer, g.atlas, g.scale, geo)
	}

	size := g.cellSize()
	ox, oy := geo.Apply(0, 0)
	vector.StrokeRect(screen, float32(ox), float32(oy), float32(size*float64(g.ed.Map.Width())), float32(size*float64(g.ed.Map.Height())), 1, boundsColor, false)
	if g.hovering {
		x, y := geo.Apply(float64(g.cursorCol)*size, float64(g.cursorRow)*size)
		vector.FillRect(screen, float32(x), float32(y), float32(size), float32(size), highlightColor, false)
	}

	g.panel.Draw(screen)

	// brush preview next to the title
	var preview ebiten.GeoM
	preview.Translate(float64(g.panelW)-size-32, 32)
	obj.DrawTile(screen, 0, 0, g.ed.Brush, g.atlas, g.scale, preview)
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
