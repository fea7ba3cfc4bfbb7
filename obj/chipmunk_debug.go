package obj

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// DebugDraw outlines the merged collision boxes, transformed by geo.
func (cw *CollisionWorld) DebugDraw(screen *ebiten.Image, geo ebiten.GeoM) {
	if cw == nil || cw.space == nil || screen == nil {
		return
	}
	cp.DrawSpace(cw.space, &boxDrawer{screen: screen, geo: geo})
}

var (
	probeClear   = color.RGBA{G: 0xff, A: 0xff}
	probeBlocked = color.RGBA{R: 0xff, A: 0xff}
)

// DrawProbes marks each probe point around pos, red where it sits inside a
// solid tile.
func (cw *CollisionWorld) DrawProbes(screen *ebiten.Image, geo ebiten.GeoM, pos mgl64.Vec2, probes []mgl64.Vec2) {
	if screen == nil {
		return
	}
	for _, probe := range probes {
		pt := pos.Add(probe)
		c := probeClear
		if cw.Blocked(pt.X(), pt.Y()) {
			c = probeBlocked
		}
		sx, sy := geo.Apply(pt.X(), pt.Y())
		vector.FillRect(screen, float32(sx)-2, float32(sy)-2, 4, 4, c, false)
	}
}

type boxDrawer struct {
	screen *ebiten.Image
	geo    ebiten.GeoM
}

func (d *boxDrawer) line(a, b cp.Vector, c color.Color) {
	ax, ay := d.geo.Apply(a.X, a.Y)
	bx, by := d.geo.Apply(b.X, b.Y)
	ebitenutil.DrawLine(d.screen, ax, ay, bx, by, c)
}

func (d *boxDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	steps := 16
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		d.line(prev, cur, c)
		prev = cur
	}
}

func (d *boxDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(fill))
}

func (d *boxDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(outline))
}

func (d *boxDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}
	c := fcolorToRGBA(outline)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *boxDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(fill)
	l := size / 2
	d.line(cp.Vector{X: pos.X - l, Y: pos.Y}, cp.Vector{X: pos.X + l, Y: pos.Y}, c)
	d.line(cp.Vector{X: pos.X, Y: pos.Y - l}, cp.Vector{X: pos.X, Y: pos.Y + l}, c)
}

func (d *boxDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *boxDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.2, B: 0.2, A: 1.0}
}

func (d *boxDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 1.0, G: 0.2, B: 0.2, A: 0.4}
}

func (d *boxDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *boxDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 1.0, B: 0.1, A: 1.0}
}

func (d *boxDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
