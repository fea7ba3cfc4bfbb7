package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/levels"
	"github.com/milk9111/overworld/obj"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/tilemap"
)

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("bad size %q, want WxH: %w", s, err)
	}
	return w, h, nil
}

// openMap returns the map to edit. newSize creates a blank map with the
// base layer filled by brush; otherwise the file is loaded, falling back to
// the bundled level when it does not exist yet.
func openMap(path, newSize string, brush tilemap.Tile) (*tilemap.Map, error) {
	if newSize != "" {
		w, h, err := parseSize(newSize)
		if err != nil {
			return nil, err
		}
		m, err := tilemap.New(w, h, tilemap.Empty)
		if err != nil {
			return nil, err
		}
		if err := m.Fill(tilemap.Base, brush); err != nil {
			return nil, err
		}
		return m, nil
	}

	m, err := tilemap.Load(path)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	log.Printf("%s does not exist yet, starting from %s", path, levels.DefaultName)
	return levels.Default()
}

func main() {
	mapPath := flag.String("map", "", "map file to edit (default from world.yaml)")
	atlasPath := flag.String("atlas", "", "tileset image (default from world.yaml)")
	newSize := flag.String("new", "", "start a new WxH map instead of loading")
	resize := flag.String("resize", "", "resize the loaded map to WxH (undoable)")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	log.Println("Editor starting...")
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

	editorSpec, err := prefabs.LoadEditorSpec()
	if err != nil {
		log.Fatal(err)
	}

	ed := NewEditor(nil, worldSpec.MapPath, editorSpec, newClipboard())
	m, err := openMap(worldSpec.MapPath, *newSize, ed.Brush)
	if err != nil {
		log.Fatal(err)
	}
	ed.Map = m
	if *resize != "" {
		w, h, err := parseSize(*resize)
		if err != nil {
			log.Fatal(err)
		}
		if err := ed.ResizeTo(w, h); err != nil {
			log.Fatal(err)
		}
	}

	atlas, err := obj.LoadAtlas(worldSpec.AtlasPath, worldSpec.TileSize)
	if err != nil {
		log.Fatal(err)
	}
	if !*mute && editorSpec.SaveSound != "" {
		ed.SaveSound = component.LoadSound(editorSpec.SaveSound, 1)
	}

	game := NewEditorGame(ed, atlas, editorSpec.Scale, editorSpec.PanelWidth)
	if editorSpec.WatchScript && editorSpec.Script != "" {
		script := prefabs.ScriptPath(editorSpec.Script)
		w, err := prefabs.NewWatcher(prefabs.IsScriptFile, filepath.Dir(script))
		if err != nil {
			log.Printf("editor: watch %s: %v", script, err)
		} else {
			defer w.Close()
			game.scriptWatch = w
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("Map Editor")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
