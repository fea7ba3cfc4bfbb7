package obj

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/overworld/prefabs"
)

func TestFacingFor(t *testing.T) {
	tests := []struct {
		name string
		v    mgl64.Vec2
		want Facing
	}{
		{"still", mgl64.Vec2{0, 0}, FacingDown},
		{"down", mgl64.Vec2{0, 1}, FacingDown},
		{"up", mgl64.Vec2{0, -1}, FacingUp},
		{"left", mgl64.Vec2{-1, 0}, FacingLeft},
		{"right", mgl64.Vec2{1, 0}, FacingRight},
		{"mostly down", mgl64.Vec2{0.3, 0.9}, FacingDown},
		{"mostly left", mgl64.Vec2{-0.9, 0.3}, FacingLeft},
		{"diagonal tie", mgl64.Vec2{0.7, 0.7}, FacingDown},
		{"diagonal tie up left", mgl64.Vec2{-0.7, -0.7}, FacingDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FacingFor(tt.v); got != tt.want {
				t.Fatalf("FacingFor(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestMoveVelocity(t *testing.T) {
	if v := MoveVelocity(mgl64.Vec2{}, 1); v.Len() != 0 {
		t.Fatalf("expected zero velocity, got %v", v)
	}
	v := MoveVelocity(mgl64.Vec2{1, 1}, 0.5)
	if math.Abs(v.Len()-0.5) > 1e-9 {
		t.Fatalf("expected diagonal speed 0.5, got %v", v.Len())
	}
	if math.IsNaN(v.X()) || v.X() != v.Y() {
		t.Fatalf("expected equal components, got %v", v)
	}
}

func testPlayerSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		Spawn:       prefabs.PointSpec{X: 32, Y: 32},
		Speed:       0.5,
		SprintSpeed: 0.5,
		Probes: []prefabs.PointSpec{
			{X: -4, Y: 10}, {X: 4, Y: 10}, {X: -4, Y: 0}, {X: 4, Y: 0},
		},
		Animation: prefabs.AnimationSpec{FrameW: 16, FrameH: 24, Frames: 4, FPS: 4, Down: 4, Right: 36, Up: 68, Left: 100},
	}
}

func TestPlayerUpdateMoves(t *testing.T) {
	world := NewWorld(borderedMap(t, 6, 6), nil, 16)
	input := NewInput()
	p := NewPlayer(testPlayerSpec(), nil, input)

	input.Move = mgl64.Vec2{1, 0}
	if !p.Update(world) {
		t.Fatalf("expected player to move")
	}
	if p.Pos != (mgl64.Vec2{32.5, 32}) {
		t.Fatalf("expected position (32.5, 32), got %v", p.Pos)
	}
	if p.Facing() != FacingRight {
		t.Fatalf("expected facing right, got %v", p.Facing())
	}

	input.Sprint = true
	p.Update(world)
	if p.Pos != (mgl64.Vec2{33.5, 32}) {
		t.Fatalf("expected sprint to move 1px, got %v", p.Pos)
	}

	input.Move = mgl64.Vec2{}
	if p.Update(world) {
		t.Fatalf("expected no movement without input")
	}
	if p.Facing() != FacingDown {
		t.Fatalf("expected idle player to face down, got %v", p.Facing())
	}
}

func TestPlayerBlockedByWall(t *testing.T) {
	world := NewWorld(borderedMap(t, 6, 6), nil, 16)
	input := NewInput()
	p := NewPlayer(testPlayerSpec(), nil, input)

	input.Move = mgl64.Vec2{-1, 0}
	for i := 0; i < 100; i++ {
		p.Update(world)
	}
	// left probes stop at x-4 >= 16
	if p.Pos.X() != 20 {
		t.Fatalf("expected player to stop at x=20, got %v", p.Pos.X())
	}
	if p.Facing() != FacingLeft {
		t.Fatalf("expected facing left, got %v", p.Facing())
	}
}
