package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/prefabs"
)

func main() {
	mapPath := flag.String("map", "", "map file to load (overrides world.yaml and OVERWORLD_MAP)")
	atlasPath := flag.String("atlas", "", "tileset image (overrides world.yaml and OVERWORLD_ATLAS)")
	zoom := flag.Float64("zoom", 0, "camera zoom (overrides world.yaml and OVERWORLD_ZOOM)")
	debug := flag.Bool("debug", false, "start with the debug overlay shown")
	mute := flag.Bool("mute", false, "disable sound effects")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	prefabs.LoadEnv()

	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Fatal(err)
	}
	worldSpec.ApplyEnv()
	if *mapPath != "" {
		worldSpec.MapPath = *mapPath
	}
	if *atlasPath != "" {
		worldSpec.AtlasPath = *atlasPath
	}
	if *zoom > 0 {
		worldSpec.Zoom = *zoom
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("overworld")

	game, err := NewGame(worldSpec, playerSpec, *debug, *mute)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
