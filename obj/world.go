package obj

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/tilemap"
)

// World is a loaded map with its atlas and collision.
type World struct {
	Map      *tilemap.Map
	Atlas    *Atlas
	TileSize int

	collision *CollisionWorld
}

func NewWorld(m *tilemap.Map, atlas *Atlas, tileSize int) *World {
	w := &World{Atlas: atlas, TileSize: tileSize}
	w.SetMap(m)
	return w
}

// SetMap swaps in a new map and rebuilds collision.
func (w *World) SetMap(m *tilemap.Map) {
	w.Map = m
	w.collision = NewCollisionWorld(m, w.TileSize)
}

// PixelSize returns the world size in unscaled pixels.
func (w *World) PixelSize() (int, int) {
	if w.Map == nil {
		return 0, 0
	}
	return w.Map.Width() * w.TileSize, w.Map.Height() * w.TileSize
}

func (w *World) Collision() *CollisionWorld {
	return w.collision
}

// IsPlayerColliding reports whether any probe offset from pos lands on a
// solid tile or off the map.
func (w *World) IsPlayerColliding(pos mgl64.Vec2, probes []mgl64.Vec2) bool {
	return w.collision.Colliding(pos, probes)
}

// DrawBase draws the layers that sit under the player.
func (w *World) DrawBase(screen *ebiten.Image, geo ebiten.GeoM) {
	w.drawLayers(screen, geo, tilemap.Base, tilemap.Collide, tilemap.Decor)
}

// DrawOverlay draws the layer that sits over the player.
func (w *World) DrawOverlay(screen *ebiten.Image, geo ebiten.GeoM) {
	w.drawLayers(screen, geo, tilemap.Overlay)
}

func (w *World) drawLayers(screen *ebiten.Image, geo ebiten.GeoM, roles ...tilemap.LayerType) {
	if w.Map == nil {
		return
	}
	for _, role := range roles {
		g, err := w.Map.Layer(role)
		if err != nil {
			continue
		}
		DrawLayer(screen, g, w.Atlas, 1, geo)
	}
}

// DebugDraw outlines the collision boxes.
func (w *World) DebugDraw(screen *ebiten.Image, geo ebiten.GeoM) {
	w.collision.DebugDraw(screen, geo)
}
