package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/levels"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/tilemap"
)

// loadMap reads the map at path. A missing file falls back to the bundled
// level; any other error is returned.
func loadMap(path string) (*tilemap.Map, error) {
	m, err := tilemap.Load(path)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	log.Printf("map %s not found, using bundled %s", path, levels.DefaultName)
	return levels.Default()
}

// loadPlayerSheet loads the player spritesheet. A sheet that cannot be read
// leaves the player invisible rather than stopping the game.
func loadPlayerSheet(spec prefabs.AnimationSpec) *ebiten.Image {
	img, err := assets.LoadImage(spec.Sheet)
	if err != nil {
		log.Printf("player sheet %s: %v", spec.Sheet, err)
		return nil
	}
	return img
}
