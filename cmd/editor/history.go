package main

import "github.com/milk9111/overworld/tilemap"

// cellChange is the previous value of one cell.
type cellChange struct {
	layer tilemap.LayerType
	row   int
	col   int
	prev  tilemap.Tile
}

// undoSnapshot is either a full copy of the map (full != nil) or the cells
// changed by one stroke.
type undoSnapshot struct {
	full  *tilemap.Map
	cells []cellChange
}

// History is a bounded undo stack. Cell edits collect into a pending stroke
// until Commit.
type History struct {
	stack   []undoSnapshot
	max     int
	pending []cellChange
	seen    map[cellChange]struct{}
}

func NewHistory(max int) *History {
	if max <= 0 {
		max = 1
	}
	return &History{max: max, seen: map[cellChange]struct{}{}}
}

// Record notes the value a cell had before the current stroke touched it.
// Only the first change to a cell within a stroke is kept.
func (h *History) Record(layer tilemap.LayerType, row, col int, prev tilemap.Tile) {
	key := cellChange{layer: layer, row: row, col: col}
	if _, ok := h.seen[key]; ok {
		return
	}
	h.seen[key] = struct{}{}
	h.pending = append(h.pending, cellChange{layer: layer, row: row, col: col, prev: prev})
}

// Commit closes the current stroke. Empty strokes are dropped.
func (h *History) Commit() {
	if len(h.pending) == 0 {
		return
	}
	h.push(undoSnapshot{cells: h.pending})
	h.pending = nil
	clear(h.seen)
}

// PushFull stores a copy of m, for edits that change the map's shape.
func (h *History) PushFull(m *tilemap.Map) {
	h.Commit()
	h.push(undoSnapshot{full: m.Clone()})
}

func (h *History) push(s undoSnapshot) {
	h.stack = append(h.stack, s)
	if len(h.stack) > h.max {
		// drop oldest
		h.stack = h.stack[1:]
	}
}

func (h *History) Len() int {
	n := len(h.stack)
	if len(h.pending) > 0 {
		n++
	}
	return n
}

// Undo reverts the most recent snapshot and returns the map to use from now
// on, which is m itself unless a full snapshot was restored.
func (h *History) Undo(m *tilemap.Map) (*tilemap.Map, bool) {
	h.Commit()
	n := len(h.stack)
	if n == 0 {
		return m, false
	}
	snap := h.stack[n-1]
	h.stack = h.stack[:n-1]

	if snap.full != nil {
		return snap.full, true
	}
	for i := len(snap.cells) - 1; i >= 0; i-- {
		c := snap.cells[i]
		// cells outside a since-shrunk map are gone
		_ = m.SetTile(c.layer, c.row, c.col, c.prev)
	}
	return m, true
}
