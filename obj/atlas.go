package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/tilemap"
)

// Atlas is the tileset image sliced into square TileSize cells.
type Atlas struct {
	Image    *ebiten.Image
	TileSize int

	cache map[tilemap.Tile]*ebiten.Image
}

func NewAtlas(img *ebiten.Image, tileSize int) *Atlas {
	return &Atlas{Image: img, TileSize: tileSize, cache: map[tilemap.Tile]*ebiten.Image{}}
}

// LoadAtlas loads the tileset image at path, or the bundled tileset of the
// same name when the file is missing.
func LoadAtlas(path string, tileSize int) (*Atlas, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size %d", tileSize)
	}
	img, err := assets.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load atlas %s: %w", path, err)
	}
	return NewAtlas(img, tileSize), nil
}

// Cell returns the atlas cell for t. ok is false for empty tiles and for
// tiles that point outside the image.
func (a *Atlas) Cell(t tilemap.Tile) (*ebiten.Image, bool) {
	if a == nil || a.Image == nil {
		return nil, false
	}
	if img, ok := a.cache[t]; ok {
		return img, img != nil
	}
	r, ok := tilemap.SourceRect(t, a.TileSize)
	if !ok || !r.In(a.Image.Bounds()) {
		a.cache[t] = nil
		return nil, false
	}
	sub, ok := a.Image.SubImage(r).(*ebiten.Image)
	if !ok {
		a.cache[t] = nil
		return nil, false
	}
	a.cache[t] = sub
	return sub, true
}
