package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/overworld/tilemap"
)

const collisionTypeSolid cp.CollisionType = 1

// CollisionWorld answers "is this point solid" for the collide layer. Solid
// tiles are merged into as few static boxes as possible.
type CollisionWorld struct {
	space    *cp.Space
	tileSize int
	width    int
	height   int
	boxes    int
}

func NewCollisionWorld(m *tilemap.Map, tileSize int) *CollisionWorld {
	cw := &CollisionWorld{space: cp.NewSpace(), tileSize: tileSize}
	if m != nil {
		cw.width = m.Width()
		cw.height = m.Height()
		cw.buildStaticShapes(m)
	}
	return cw
}

func (cw *CollisionWorld) buildStaticShapes(m *tilemap.Map) {
	layer, err := m.Layer(tilemap.Collide)
	if err != nil {
		return
	}
	solid := func(x, y int) bool { return !layer[y][x].IsEmpty() }

	// Greedily grow each rectangle rightwards, then downwards.
	processed := make([]bool, cw.width*cw.height)
	for y := 0; y < cw.height; y++ {
		for x := 0; x < cw.width; x++ {
			idx := y*cw.width + x
			if processed[idx] {
				continue
			}
			if !solid(x, y) {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < cw.width && !processed[y*cw.width+x+w] && solid(x+w, y) {
				w++
			}

			h := 1
		heightLoop:
			for y+h < cw.height {
				for xi := x; xi < x+w; xi++ {
					if processed[(y+h)*cw.width+xi] || !solid(xi, y+h) {
						break heightLoop
					}
				}
				h++
			}

			ts := float64(cw.tileSize)
			bb := cp.BB{L: float64(x) * ts, B: float64(y) * ts, R: float64(x+w) * ts, T: float64(y+h) * ts}
			shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
			shape.SetCollisionType(collisionTypeSolid)
			cw.space.AddShape(shape)
			cw.boxes++

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*cw.width+xx] = true
				}
			}
		}
	}
}

// Boxes returns the number of static shapes built from the collide layer.
func (cw *CollisionWorld) Boxes() int {
	return cw.boxes
}

// Blocked reports whether the world pixel (x, y) is inside a solid tile or
// outside the map.
func (cw *CollisionWorld) Blocked(x, y float64) bool {
	if cw == nil || cw.tileSize <= 0 {
		return true
	}
	col := int(math.Floor(x / float64(cw.tileSize)))
	row := int(math.Floor(y / float64(cw.tileSize)))
	if col < 0 || row < 0 || col >= cw.width || row >= cw.height {
		return true
	}
	// Box edges sit on tile boundaries, so the tile centre is strictly
	// inside or strictly outside every box.
	half := float64(cw.tileSize) / 2
	center := cp.Vector{X: float64(col*cw.tileSize) + half, Y: float64(row*cw.tileSize) + half}
	info := cw.space.PointQueryNearest(center, 0, cp.SHAPE_FILTER_ALL)
	return info.Shape != nil
}

// Colliding reports whether any probe offset from pos is blocked.
func (cw *CollisionWorld) Colliding(pos mgl64.Vec2, probes []mgl64.Vec2) bool {
	for _, p := range probes {
		at := pos.Add(p)
		if cw.Blocked(at.X(), at.Y()) {
			return true
		}
	}
	return false
}
