package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/overworld/tilemap"
)

const (
	statusLines = 2
	// modeAll shows the top-most non-empty layer of each cell.
	modeAll = -1
)

var layerGlyphs = [tilemap.LayerCount]rune{
	tilemap.Base:    '.',
	tilemap.Collide: '#',
	tilemap.Decor:   '*',
	tilemap.Overlay: '^',
}

var tilePalette = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorGray,
	tcell.ColorBlue,
	tcell.ColorOlive,
	tcell.ColorTeal,
	tcell.ColorMaroon,
	tcell.ColorPurple,
	tcell.ColorSilver,
}

// View is the viewer state: the map, which layers to show, the cursor and
// the scroll offset.
type View struct {
	Map  *tilemap.Map
	Path string
	Mode int

	CurRow int
	CurCol int
	OffRow int
	OffCol int

	// anchor is where the route starts; nil hides the route.
	anchor *tilemap.Cell
	route  map[tilemap.Cell]bool
	steps  int
}

func NewView(m *tilemap.Map, path string) *View {
	return &View{Map: m, Path: path, Mode: modeAll}
}

// SetMap swaps in a reloaded map and keeps the cursor on it.
func (v *View) SetMap(m *tilemap.Map) {
	v.Map = m
	v.Move(0, 0)
}

// ToggleRoute anchors a walking route at the cursor, or clears it.
func (v *View) ToggleRoute() {
	if v.anchor != nil {
		v.anchor = nil
		v.route = nil
		return
	}
	v.anchor = &tilemap.Cell{Row: v.CurRow, Col: v.CurCol}
	v.updateRoute()
}

// updateRoute recomputes the shortest walk from the anchor to the cursor.
func (v *View) updateRoute() {
	v.route = nil
	v.steps = 0
	if v.anchor == nil {
		return
	}
	path := v.Map.FindPath(*v.anchor, tilemap.Cell{Row: v.CurRow, Col: v.CurCol}, 0)
	if path == nil {
		return
	}
	v.route = make(map[tilemap.Cell]bool, len(path))
	for _, c := range path {
		v.route[c] = true
	}
	v.steps = len(path) - 1
}

// Move shifts the cursor, clamped to the map.
func (v *View) Move(dRow, dCol int) {
	v.CurRow = min(max(v.CurRow+dRow, 0), v.Map.Height()-1)
	v.CurCol = min(max(v.CurCol+dCol, 0), v.Map.Width()-1)
	if v.anchor != nil && !v.Map.InBounds(v.anchor.Row, v.anchor.Col) {
		v.anchor = nil
	}
	v.updateRoute()
}

// Follow scrolls so the cursor is inside a w x h viewport.
func (v *View) Follow(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if v.CurCol < v.OffCol {
		v.OffCol = v.CurCol
	} else if v.CurCol >= v.OffCol+w {
		v.OffCol = v.CurCol - w + 1
	}
	if v.CurRow < v.OffRow {
		v.OffRow = v.CurRow
	} else if v.CurRow >= v.OffRow+h {
		v.OffRow = v.CurRow - h + 1
	}
}

// CycleMode steps through all layers, then each layer on its own.
func (v *View) CycleMode() {
	v.Mode++
	if v.Mode >= tilemap.LayerCount {
		v.Mode = modeAll
	}
}

func (v *View) ModeName() string {
	if v.Mode == modeAll {
		return "All"
	}
	return tilemap.LayerType(v.Mode).String()
}

// Cell returns the glyph and style for a map cell in the current mode.
func (v *View) Cell(row, col int) (rune, tcell.Style) {
	if v.route[tilemap.Cell{Row: row, Col: col}] {
		return 'o', tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}
	roles := []tilemap.LayerType{tilemap.Overlay, tilemap.Decor, tilemap.Collide, tilemap.Base}
	if v.Mode != modeAll {
		roles = []tilemap.LayerType{tilemap.LayerType(v.Mode)}
	}
	for _, role := range roles {
		t, err := v.Map.Tile(role, row, col)
		if err != nil || t.IsEmpty() {
			continue
		}
		return layerGlyphs[role], tcell.StyleDefault.Foreground(tileColor(t))
	}
	return ' ', tcell.StyleDefault
}

func tileColor(t tilemap.Tile) tcell.Color {
	return tilePalette[(int(t.Col)+int(t.Row)*3)%len(tilePalette)]
}

// Status returns the lines shown under the map.
func (v *View) Status() []string {
	var cells []string
	for _, role := range tilemap.LayerTypes() {
		t, err := v.Map.Tile(role, v.CurRow, v.CurCol)
		if err != nil {
			continue
		}
		cells = append(cells, fmt.Sprintf("%s=%s", strings.ToLower(role.String()), t))
	}
	head := fmt.Sprintf("%s %dx%d  layer: %s  cursor: row %d col %d", v.Path, v.Map.Width(), v.Map.Height(), v.ModeName(), v.CurRow, v.CurCol)
	switch {
	case v.anchor == nil:
	case v.route == nil:
		head += fmt.Sprintf("  route from %d,%d: blocked", v.anchor.Row, v.anchor.Col)
	default:
		head += fmt.Sprintf("  route from %d,%d: %d steps", v.anchor.Row, v.anchor.Col, v.steps)
	}
	return []string{
		head,
		strings.Join(cells, "  ") + "  [arrows/hjkl move, tab layer, p route, q quit]",
	}
}
