package obj

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the per-frame movement and toggle state.
type Input struct {
	// Move is the raw direction: each axis is -1, 0 or +1.
	Move mgl64.Vec2
	// Sprint is true while left shift is held.
	Sprint bool
	// DebugPressed is true on the frame F3 was pressed.
	DebugPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and the first gamepad.
func (i *Input) Update() {
	var move mgl64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		move[0] -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		move[0] += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		move[1] -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		move[1] += 1
	}

	sprint := ebiten.IsKeyPressed(ebiten.KeyShiftLeft)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if lx < -0.3 {
			move[0] = -1
		} else if lx > 0.3 {
			move[0] = 1
		}
		if ly < -0.3 {
			move[1] = -1
		} else if ly > 0.3 {
			move[1] = 1
		}
		sprint = sprint || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightLeft)
	}

	i.Move = move
	i.Sprint = sprint
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
