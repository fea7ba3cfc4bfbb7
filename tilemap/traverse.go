package tilemap

import "image"

// TileFunc receives one cell during ForEachTile. x and y are the cell's
// top-left corner in screen pixels.
type TileFunc func(x, y float64, row, col int, t Tile)

// ForEachTile visits every cell of g in row-major order. The pixel position
// of a cell is (col*tileSize*scale, row*tileSize*scale).
func ForEachTile(g Grid, tileSize int, scale float64, fn TileFunc) {
	step := float64(tileSize) * scale
	for row, cells := range g {
		for col, t := range cells {
			fn(float64(col)*step, float64(row)*step, row, col, t)
		}
	}
}

// SourceRect returns the atlas rectangle for t in an atlas of square
// tileSize cells. ok is false for empty tiles, which are never drawn.
func SourceRect(t Tile, tileSize int) (r image.Rectangle, ok bool) {
	if !ShouldDraw(t) {
		return image.Rectangle{}, false
	}
	x := (int(t.Col) - 1) * tileSize
	y := int(t.Row) * tileSize
	return image.Rect(x, y, x+tileSize, y+tileSize), true
}
