package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/common"
)

// Camera centres the view on a world coordinate at a fixed zoom, clamped so
// it never shows space past the edge of the map.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow. 0 snaps.
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom}
	c.PosX = float64(screenW) / 2.0 / zoom
	c.PosY = float64(screenH) / 2.0 / zoom
	return c
}

// SetZoom updates the camera zoom.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// GeoM maps world pixels to screen pixels.
func (c *Camera) GeoM() ebiten.GeoM {
	var geo ebiten.GeoM
	x, y := c.ViewTopLeft()
	geo.Translate(-x, -y)
	geo.Scale(c.zoom, c.zoom)
	return geo
}

// ScreenToWorld converts a screen pixel to world pixels.
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	x, y := c.ViewTopLeft()
	return x + float64(sx)/c.zoom, y + float64(sy)/c.zoom
}

// Update moves the camera toward the target world coordinate. Call from the
// fixed-rate Update loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.SnapTo(targetX, targetY)
		return
	}
	c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
	c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
	c.constrain()
}

// SnapTo immediately centres the camera on (x, y), then rounds and clamps
// the same way Update does.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.constrain()
}

func (c *Camera) constrain() {
	// snap position to 1/zoom grid to align source texels to integer screen pixels
	c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
	c.PosY = math.Round(c.PosY*c.zoom) / c.zoom

	halfW := float64(c.screenW) / c.zoom / 2.0
	halfH := float64(c.screenH) / c.zoom / 2.0
	c.PosX = constrainAxis(c.PosX, halfW, c.worldW)
	c.PosY = constrainAxis(c.PosY, halfH, c.worldH)
}

func constrainAxis(pos, half, world float64) float64 {
	if world <= 0 {
		return pos
	}
	lo, hi := half, world-half
	if hi < lo {
		// world smaller than view: center on world
		return world / 2.0
	}
	return common.Clamp(pos, lo, hi)
}
