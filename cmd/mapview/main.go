package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/tilemap"
)

func main() {
	mapPath := flag.String("map", "", "map file to view (default from world.yaml)")
	watch := flag.Bool("watch", true, "reload when the map file changes")
	flag.Parse()

	prefabs.LoadEnv()
	path := *mapPath
	if path == "" {
		spec, err := prefabs.LoadWorldSpec()
		if err != nil {
			log.Fatal(err)
		}
		spec.ApplyEnv()
		path = spec.MapPath
	}

	m, err := tilemap.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	defer screen.Close()

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.MatchPaths(path), filepath.Dir(path))
		if err != nil {
			log.Printf("watch %s: %v", path, err)
		} else {
			defer watcher.Close()
			go func() {
				for range watcher.Events {
					screen.Wake()
				}
			}()
		}
	}

	view := NewView(m, path)
	for {
		screen.Render(view)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			if watcher == nil {
				continue
			}
			reloaded, err := tilemap.Load(path)
			if err != nil {
				// the file may be mid-write; the next event retries
				continue
			}
			view.SetMap(reloaded)
		case *tcell.EventKey:
			if !handleKey(view, ev) {
				return
			}
		}
	}
}

// handleKey applies a key press and reports whether to keep running.
func handleKey(v *View, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.Move(-1, 0)
	case tcell.KeyDown:
		v.Move(1, 0)
	case tcell.KeyLeft:
		v.Move(0, -1)
	case tcell.KeyRight:
		v.Move(0, 1)
	case tcell.KeyTab:
		v.CycleMode()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'k':
			v.Move(-1, 0)
		case 'j':
			v.Move(1, 0)
		case 'h':
			v.Move(0, -1)
		case 'l':
			v.Move(0, 1)
		case 'p':
			v.ToggleRoute()
		}
	}
	return true
}
