package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/overworld/tilemap"
)

func TestLoadMapFallsBackToBundledLevel(t *testing.T) {
	m, err := loadMap(filepath.Join(t.TempDir(), "missing.map"))
	if err != nil {
		t.Fatalf("expected fallback, got %v", err)
	}
	if m.Width() == 0 || m.Height() == 0 {
		t.Fatalf("expected bundled level, got %dx%d", m.Width(), m.Height())
	}
}

func TestLoadMapReportsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.map")
	if err := os.WriteFile(path, []byte{4, 4, 1}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadMap(path); !errors.Is(err, tilemap.ErrTruncatedFile) {
		t.Fatalf("expected ErrTruncatedFile, got %v", err)
	}
}

func TestLoadMapReadsFile(t *testing.T) {
	m, err := tilemap.New(3, 2, tilemap.Tile{Col: 1})
	if err != nil {
		t.Fatalf("new map: %v", err)
	}
	path := filepath.Join(t.TempDir(), "small.map")
	if err := m.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := loadMap(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Equal(m) {
		t.Fatalf("loaded map differs from saved map")
	}
}

func TestDebugInfoString(t *testing.T) {
	s := DebugInfo{Version: "1.2.3", FPS: 59.6, MapW: 20, MapH: 12, Boxes: 7, PlayerX: 32, PlayerY: 40.3, Facing: "left", Watching: true, CursorX: 16, CursorY: 8.5, CursorSolid: true}.String()
	for _, want := range []string{"Version: 1.2.3", "FPS: 60", "Map: 20x12", "Collision boxes: 7", "(32.0, 40.3) left", "Cursor: (16.0, 8.5) solid", "Hot reload: on"} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %q in %q", want, s)
		}
	}
}
