package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/tilemap"
)

// DrawLayer draws every non-empty tile of g. Tiles are laid out at
// tileSize*scale pixels per cell and then transformed by geo (camera or
// canvas offset).
func DrawLayer(dst *ebiten.Image, g tilemap.Grid, atlas *Atlas, scale float64, geo ebiten.GeoM) {
	if dst == nil || atlas == nil {
		return
	}
	tilemap.ForEachTile(g, atlas.TileSize, scale, func(x, y float64, _, _ int, t tilemap.Tile) {
		DrawTile(dst, x, y, t, atlas, scale, geo)
	})
}

// DrawTile draws one tile with its top-left corner at (x, y) before geo is
// applied. Empty tiles are skipped.
func DrawTile(dst *ebiten.Image, x, y float64, t tilemap.Tile, atlas *Atlas, scale float64, geo ebiten.GeoM) {
	cell, ok := atlas.Cell(t)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(geo)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(cell, op)
}
