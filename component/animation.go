package component

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation steps through a row of equally sized frames on a spritesheet.
// Frames start at (X, Y) and run left to right.
type Animation struct {
	Sheet  *ebiten.Image
	Frames []image.Rectangle
	FPS    int
	Loop   bool

	current     int
	tick        int
	ticksPerFrm int
	finished    bool
}

// NewAnimationStrip builds an animation of frameCount frames of frameW x
// frameH pixels, the first one with its top-left corner at (x, y). fps
// defaults to 12 when <= 0. The sheet may be nil; the animation still ticks.
func NewAnimationStrip(sheet *ebiten.Image, x, y, frameW, frameH, frameCount, fps int, loop bool) *Animation {
	if fps <= 0 {
		fps = 12
	}
	a := &Animation{
		Sheet:       sheet,
		FPS:         fps,
		Loop:        loop,
		ticksPerFrm: int(math.Max(1, math.Round(60.0/float64(fps)))),
	}
	if frameW <= 0 || frameH <= 0 || frameCount <= 0 {
		return a
	}
	a.Frames = make([]image.Rectangle, frameCount)
	for i := range a.Frames {
		sx := x + i*frameW
		a.Frames[i] = image.Rect(sx, y, sx+frameW, y+frameH)
	}
	return a
}

// Update advances the animation by one game tick (1/60s).
func (a *Animation) Update() {
	if a == nil || len(a.Frames) <= 1 || a.finished {
		return
	}
	a.tick++
	if a.tick < a.ticksPerFrm {
		return
	}
	a.tick = 0
	a.current++
	if a.current >= len(a.Frames) {
		if a.Loop {
			a.current = 0
		} else {
			a.current = len(a.Frames) - 1
			a.finished = true
		}
	}
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.tick = 0
	a.finished = false
}

// Frame returns the index of the current frame.
func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return a.current
}

// SetFrame jumps to a specific frame index, clamped to the strip.
func (a *Animation) SetFrame(i int) {
	if a == nil || len(a.Frames) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(a.Frames) {
		i = len(a.Frames) - 1
	}
	a.current = i
	a.tick = 0
}

// Draw draws the current frame with op. A nil op draws at the origin.
func (a *Animation) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	if a == nil || a.Sheet == nil || len(a.Frames) == 0 || screen == nil {
		return
	}
	r := a.Frames[a.current%len(a.Frames)]
	if !r.In(a.Sheet.Bounds()) {
		return
	}
	var dop ebiten.DrawImageOptions
	if op != nil {
		dop = *op
	}
	dop.Filter = ebiten.FilterNearest
	screen.DrawImage(a.Sheet.SubImage(r).(*ebiten.Image), &dop)
}

// Size returns the frame width and height.
func (a *Animation) Size() (int, int) {
	if a == nil || len(a.Frames) == 0 {
		return 0, 0
	}
	return a.Frames[0].Dx(), a.Frames[0].Dy()
}
