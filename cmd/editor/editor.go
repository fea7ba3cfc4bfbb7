package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/mapscript"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/tilemap"
)

// Editor holds the map being edited and everything the user has selected.
// It has no rendering or input code so it can be driven from tests.
type Editor struct {
	Map   *tilemap.Map
	Path  string
	Layer tilemap.LayerType
	Brush tilemap.Tile
	// SaveSound plays after a successful save. nil is silent.
	SaveSound *component.Sound

	history   *History
	clipboard Clipboard
	script    string

	notice       string
	noticeAge    int
	noticeFrames int
}

func NewEditor(m *tilemap.Map, path string, spec *prefabs.EditorSpec, clip Clipboard) *Editor {
	e := &Editor{
		Map:          m,
		Path:         path,
		Layer:        tilemap.Base,
		Brush:        tilemap.Tile{Col: 1, Row: 0},
		history:      NewHistory(spec.UndoDepth),
		clipboard:    clip,
		script:       spec.Script,
		noticeFrames: spec.NotifyFrames,
	}
	if spec.Brush != "" {
		if t, err := tilemap.ParseTile(spec.Brush); err == nil && !t.IsEmpty() {
			e.Brush = t
		} else {
			log.Printf("editor: ignoring brush %q", spec.Brush)
		}
	}
	e.Notify(fmt.Sprintf("Loaded:\n%s", path))
	return e
}

// Notify shows msg in the panel for the configured number of frames.
func (e *Editor) Notify(msg string) {
	e.notice = msg
	e.noticeAge = 0
}

// Notice returns the current notification and whether it is still showing.
func (e *Editor) Notice() (string, bool) {
	return e.notice, e.noticeAge < e.noticeFrames
}

// Tick ages the notification by one frame.
func (e *Editor) Tick() {
	if e.noticeAge < e.noticeFrames {
		e.noticeAge++
	}
}

func (e *Editor) set(row, col int, t tilemap.Tile) error {
	prev, err := e.Map.Tile(e.Layer, row, col)
	if err != nil {
		return err
	}
	if prev == t {
		return nil
	}
	e.history.Record(e.Layer, row, col, prev)
	return e.Map.SetTile(e.Layer, row, col, t)
}

// Paint writes the brush tile at (row, col) on the active layer.
func (e *Editor) Paint(row, col int) error {
	return e.set(row, col, e.Brush)
}

// Erase clears (row, col) on the active layer.
func (e *Editor) Erase(row, col int) error {
	return e.set(row, col, tilemap.Empty)
}

// Pick copies the tile at (row, col) on the active layer into the brush.
func (e *Editor) Pick(row, col int) error {
	t, err := e.Map.Tile(e.Layer, row, col)
	if err != nil {
		return err
	}
	e.Brush = t
	return nil
}

// FloodFill paints the brush over the 4-connected region of cells that
// match the tile at (row, col).
func (e *Editor) FloodFill(row, col int) error {
	target, err := e.Map.Tile(e.Layer, row, col)
	if err != nil {
		return err
	}
	if target == e.Brush {
		return nil
	}
	stack := [][2]int{{row, col}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t, err := e.Map.Tile(e.Layer, p[0], p[1])
		if err != nil || t != target {
			continue
		}
		if err := e.set(p[0], p[1], e.Brush); err != nil {
			return err
		}
		stack = append(stack, [2]int{p[0] + 1, p[1]}, [2]int{p[0] - 1, p[1]}, [2]int{p[0], p[1] + 1}, [2]int{p[0], p[1] - 1})
	}
	e.EndStroke()
	return nil
}

// EndStroke groups the cell edits since the last call into one undo step.
func (e *Editor) EndStroke() {
	e.history.Commit()
}

// MoveBrush shifts the brush through the atlas. Col stays >= 1 and both
// coordinates saturate at the byte range.
func (e *Editor) MoveBrush(dCol, dRow int) {
	e.Brush.Col = uint8(clampInt(int(e.Brush.Col)+dCol, 1, tilemap.MaxDimension))
	e.Brush.Row = uint8(clampInt(int(e.Brush.Row)+dRow, 0, tilemap.MaxDimension))
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func (e *Editor) LayerUp() {
	e.Layer = e.Layer.Higher()
}

func (e *Editor) LayerDown() {
	e.Layer = e.Layer.Lower()
}

// Save writes the map to its path and reports the outcome in the panel.
func (e *Editor) Save() error {
	e.EndStroke()
	if err := e.Map.Save(e.Path); err != nil {
		log.Printf("editor: save %s: %v", e.Path, err)
		e.Notify(fmt.Sprintf("Save failed:\n%s", e.Path))
		return err
	}
	log.Printf("editor: saved %s", e.Path)
	e.Notify(fmt.Sprintf("Saved:\n%s", e.Path))
	e.SaveSound.Play()
	return nil
}

// resize runs a shape-changing edit behind a full undo snapshot.
func (e *Editor) resize(what string, op func() error) error {
	snap := e.Map.Clone()
	if err := op(); err != nil {
		switch {
		case errors.Is(err, tilemap.ErrDimensionOverflow):
			e.Notify(fmt.Sprintf("%s:\nmap is at %d", what, tilemap.MaxDimension))
		case errors.Is(err, tilemap.ErrInvalidDimensions):
			e.Notify(fmt.Sprintf("%s:\nmap cannot be empty", what))
		default:
			e.Notify(fmt.Sprintf("%s failed", what))
		}
		return err
	}
	e.history.PushFull(snap)
	e.Notify(fmt.Sprintf("%s:\n%dx%d", what, e.Map.Width(), e.Map.Height()))
	return nil
}

func (e *Editor) AddRow() error {
	return e.resize("Added row", func() error { return e.Map.AddRow(tilemap.Empty) })
}

func (e *Editor) AddCol() error {
	return e.resize("Added column", func() error { return e.Map.AddCol(tilemap.Empty) })
}

func (e *Editor) RemoveRow() error {
	return e.resize("Removed row", e.Map.RemoveRow)
}

func (e *Editor) RemoveCol() error {
	return e.resize("Removed column", e.Map.RemoveCol)
}

// ResizeTo changes the map to width x height in one undoable step. Cells
// outside the old map start empty.
func (e *Editor) ResizeTo(width, height int) error {
	return e.resize("Resized", func() error { return e.Map.Resize(width, height, tilemap.Empty) })
}

// Undo reverts the last stroke or resize.
func (e *Editor) Undo() bool {
	m, ok := e.history.Undo(e.Map)
	if !ok {
		e.Notify("Nothing to undo")
		return false
	}
	e.Map = m
	e.Notify("Undone")
	return true
}

// CopyBrush puts the brush on the clipboard as "col,row".
func (e *Editor) CopyBrush() error {
	s := fmt.Sprintf("%d,%d", e.Brush.Col, e.Brush.Row)
	if err := e.clipboard.WriteText(s); err != nil {
		return err
	}
	e.Notify(fmt.Sprintf("Copied %s", e.Brush))
	return nil
}

// PasteBrush sets the brush from clipboard text in "col,row" form.
func (e *Editor) PasteBrush() error {
	s, err := e.clipboard.ReadText()
	if err != nil {
		return err
	}
	t, err := tilemap.ParseTile(strings.TrimSpace(s))
	if err != nil {
		e.Notify("Clipboard is not a tile")
		return err
	}
	e.Brush = t
	e.Notify(fmt.Sprintf("Pasted %s", t))
	return nil
}

// ScriptChanged reports whether a changed file is the configured script.
func (e *Editor) ScriptChanged(path string) bool {
	if e.script == "" {
		return false
	}
	return filepath.Clean(path) == filepath.Clean(prefabs.ScriptPath(e.script))
}

// RunScript runs the configured map script over the map as one undo step.
// A failing script leaves the map as it was.
func (e *Editor) RunScript(ctx context.Context) error {
	if e.script == "" {
		e.Notify("No script configured")
		return nil
	}
	src, err := prefabs.LoadScript(e.script)
	if err != nil {
		e.Notify(fmt.Sprintf("Script not found:\n%s", e.script))
		return fmt.Errorf("editor: load script %s: %w", e.script, err)
	}

	work := e.Map.Clone()
	if err := mapscript.Run(ctx, work, src); err != nil {
		log.Printf("editor: %v", err)
		e.Notify(fmt.Sprintf("Script failed:\n%s", e.script))
		return err
	}
	e.history.PushFull(e.Map)
	e.Map = work
	e.Notify(fmt.Sprintf("Ran:\n%s", e.script))
	return nil
}
