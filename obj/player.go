package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/prefabs"
)

// Facing is the direction the player sprite is drawn facing.
type Facing int

const (
	FacingDown Facing = iota
	FacingRight
	FacingUp
	FacingLeft
)

func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "right"
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	default:
		return "down"
	}
}

// FacingFor picks the facing for velocity v. The dominant axis wins; ties
// and a zero velocity face down.
func FacingFor(v mgl64.Vec2) Facing {
	ax, ay := math.Abs(v.X()), math.Abs(v.Y())
	switch {
	case v.Y() > 0 && ay > ax:
		return FacingDown
	case v.X() < 0 && ay < ax:
		return FacingLeft
	case v.Y() < 0 && ay > ax:
		return FacingUp
	case v.X() > 0 && ay < ax:
		return FacingRight
	default:
		return FacingDown
	}
}

// MoveVelocity scales the direction move to length speed. A zero direction
// gives a zero velocity.
func MoveVelocity(move mgl64.Vec2, speed float64) mgl64.Vec2 {
	if move.Len() == 0 {
		return mgl64.Vec2{}
	}
	return move.Normalize().Mul(speed)
}

// footstepFrames is how many moving frames pass between footstep sounds.
const footstepFrames = 20

type Player struct {
	Pos      mgl64.Vec2
	Velocity mgl64.Vec2
	Input    *Input
	// Footstep plays while walking. nil is silent.
	Footstep *component.Sound

	speed       float64
	sprintSpeed float64
	probes      []mgl64.Vec2
	origin      mgl64.Vec2
	anims       [4]*component.Animation
	facing      Facing
	stepTick    int
}

// NewPlayer creates a player at the spawn point of spec. sheet may be nil,
// in which case the player is not drawn.
func NewPlayer(spec *prefabs.PlayerSpec, sheet *ebiten.Image, input *Input) *Player {
	p := &Player{
		Pos:         mgl64.Vec2{spec.Spawn.X, spec.Spawn.Y},
		Input:       input,
		speed:       spec.Speed,
		sprintSpeed: spec.SprintSpeed,
		origin:      mgl64.Vec2{float64(spec.Animation.OriginX), float64(spec.Animation.OriginY)},
	}
	for _, pt := range spec.Probes {
		p.probes = append(p.probes, mgl64.Vec2{pt.X, pt.Y})
	}

	a := spec.Animation
	rows := [4]int{FacingDown: a.Down, FacingRight: a.Right, FacingUp: a.Up, FacingLeft: a.Left}
	for f, y := range rows {
		p.anims[f] = component.NewAnimationStrip(sheet, 0, y, a.FrameW, a.FrameH, a.Frames, a.FPS, true)
	}
	return p
}

// Probes returns the collision probe offsets.
func (p *Player) Probes() []mgl64.Vec2 {
	return p.probes
}

func (p *Player) Facing() Facing {
	return p.facing
}

// Update reads input, then moves the player unless the destination would
// put any probe inside a solid tile. It reports whether the player moved.
func (p *Player) Update(world *World) bool {
	var move mgl64.Vec2
	speed := p.speed
	if p.Input != nil {
		move = p.Input.Move
		if p.Input.Sprint {
			speed += p.sprintSpeed
		}
	}
	p.Velocity = MoveVelocity(move, speed)
	p.animate()

	if p.Velocity.Len() == 0 {
		p.stepTick = 0
		return false
	}
	next := p.Pos.Add(p.Velocity)
	if world != nil && world.IsPlayerColliding(next, p.probes) {
		return false
	}
	p.Pos = next
	if p.stepTick%footstepFrames == 0 {
		p.Footstep.Play()
	}
	p.stepTick++
	return true
}

func (p *Player) animate() {
	f := FacingFor(p.Velocity)
	if f != p.facing {
		p.anims[p.facing].Reset()
		p.facing = f
	}
	if p.Velocity.Len() == 0 {
		p.anims[p.facing].Reset()
		return
	}
	p.anims[p.facing].Update()
}

// Draw draws the current frame centred on the player's origin, transformed
// by geo.
func (p *Player) Draw(screen *ebiten.Image, geo ebiten.GeoM) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(p.Pos.X()-p.origin.X()), math.Round(p.Pos.Y()-p.origin.Y()))
	op.GeoM.Concat(geo)
	p.anims[p.facing].Draw(screen, op)
}
