package main

import (
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/obj"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/tilemap"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	version = "0.1.0"
)

type Game struct {
	frames int

	input  *obj.Input
	player *obj.Player
	world  *obj.World
	camera *obj.Camera

	debug   *DebugUI
	showDbg bool

	mapPath string
	watcher *prefabs.Watcher
}

func NewGame(worldSpec *prefabs.WorldSpec, playerSpec *prefabs.PlayerSpec, debug, mute bool) (*Game, error) {
	m, err := loadMap(worldSpec.MapPath)
	if err != nil {
		return nil, err
	}

	atlas, err := obj.LoadAtlas(worldSpec.AtlasPath, worldSpec.TileSize)
	if err != nil {
		return nil, err
	}
	world := obj.NewWorld(m, atlas, worldSpec.TileSize)

	input := obj.NewInput()
	player := obj.NewPlayer(playerSpec, loadPlayerSheet(playerSpec.Animation), input)
	if !mute && playerSpec.StepSound != "" {
		player.Footstep = component.LoadSound(playerSpec.StepSound, playerSpec.StepVolume)
	}

	camera := obj.NewCamera(baseWidth, baseHeight, worldSpec.Zoom)
	camera.SetWorldBounds(world.PixelSize())
	camera.SnapTo(player.Pos.X(), player.Pos.Y())

	g := &Game{
		input:   input,
		player:  player,
		world:   world,
		camera:  camera,
		showDbg: debug,
		mapPath: worldSpec.MapPath,
	}
	g.debug = NewDebugUI()

	if worldSpec.WatchMap {
		g.watchMap()
	}
	return g, nil
}

// watchMap reloads the world whenever the map file is saved, for example by
// the editor running alongside.
func (g *Game) watchMap() {
	if _, err := os.Stat(g.mapPath); err != nil {
		return
	}
	w, err := prefabs.NewWatcher(prefabs.MatchPaths(g.mapPath), filepath.Dir(g.mapPath))
	if err != nil {
		log.Printf("watch %s: %v", g.mapPath, err)
		return
	}
	g.watcher = w
}

func (g *Game) reloadMap() {
	m, err := tilemap.Load(g.mapPath)
	if err != nil {
		log.Printf("reload %s: %v", g.mapPath, err)
		return
	}
	g.world.SetMap(m)
	g.camera.SetWorldBounds(g.world.PixelSize())
	g.camera.SnapTo(g.player.Pos.X(), g.player.Pos.Y())
	log.Printf("reloaded %s (%dx%d)", g.mapPath, m.Width(), m.Height())
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		if len(g.watcher.Drain()) > 0 {
			g.reloadMap()
		}
		select {
		case err := <-g.watcher.Errors:
			log.Printf("watch %s: %v", g.mapPath, err)
		default:
		}
	}

	g.input.Update()
	if g.input.DebugPressed {
		g.showDbg = !g.showDbg
	}

	if g.player.Update(g.world) {
		g.camera.Update(g.player.Pos.X(), g.player.Pos.Y())
	}

	if g.showDbg {
		g.debug.SetInfo(g.debugInfo())
		g.debug.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	geo := g.camera.GeoM()
	g.world.DrawBase(screen, geo)
	g.player.Draw(screen, geo)
	g.world.DrawOverlay(screen, geo)

	if g.showDbg {
		g.world.DebugDraw(screen, geo)
		g.world.Collision().DrawProbes(screen, geo, g.player.Pos, g.player.Probes())
		g.debug.Draw(screen)
	}
}

func (g *Game) debugInfo() DebugInfo {
	info := DebugInfo{
		Version:  version,
		FPS:      ebiten.ActualFPS(),
		TPS:      ebiten.ActualTPS(),
		MapW:     g.world.Map.Width(),
		MapH:     g.world.Map.Height(),
		PlayerX:  g.player.Pos.X(),
		PlayerY:  g.player.Pos.Y(),
		Facing:   g.player.Facing().String(),
		Boxes:    g.world.Collision().Boxes(),
		Watching: g.watcher != nil,
	}
	cx, cy := ebiten.CursorPosition()
	info.CursorX, info.CursorY = g.camera.ScreenToWorld(cx, cy)
	info.CursorSolid = g.world.Collision().Blocked(info.CursorX, info.CursorY)
	return info
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return baseWidth, baseHeight
	}
	g.camera.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
