package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/prefabs"
)

const (
	screenSize = 512
	zoom       = 4.0
)

var facings = []string{"down", "right", "up", "left"}

// animGame plays the four facing strips of the player sheet side by side.
type animGame struct {
	anims []*component.Animation
}

func newAnimGame(spec prefabs.AnimationSpec, sheet *ebiten.Image) *animGame {
	g := &animGame{}
	for _, y := range []int{spec.Down, spec.Right, spec.Up, spec.Left} {
		g.anims = append(g.anims, component.NewAnimationStrip(sheet, 0, y, spec.FrameW, spec.FrameH, spec.Frames, spec.FPS, true))
	}
	return g
}

func (g *animGame) Update() error {
	for _, a := range g.anims {
		a.Update()
	}
	return nil
}

func (g *animGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})
	cellW := screenSize / 2
	cellH := screenSize / 2
	for i, a := range g.anims {
		x := (i % 2) * cellW
		y := (i / 2) * cellH
		fw, fh := a.Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(float64(x)+(float64(cellW)-float64(fw)*zoom)/2, float64(y)+(float64(cellH)-float64(fh)*zoom)/2)
		a.Draw(screen, op)
		ebitenutil.DebugPrintAt(screen, facings[i], x+8, y+8)
	}
}

func (g *animGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	sheetPath := flag.String("sheet", "", "spritesheet to preview (default from player.yaml)")
	flag.Parse()

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *sheetPath != "" {
		spec.Animation.Sheet = *sheetPath
	}

	sheet, _, err := ebitenutil.NewImageFromFile(spec.Animation.Sheet)
	if err != nil {
		log.Fatalf("load %s: %v", spec.Animation.Sheet, err)
	}

	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("Player Animations")
	if err := ebiten.RunGame(newAnimGame(spec.Animation, sheet)); err != nil {
		log.Fatal(err)
	}
}
