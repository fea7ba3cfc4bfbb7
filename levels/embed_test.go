package levels

import (
	"testing"

	"github.com/milk9111/overworld/tilemap"
)

func TestDefaultLevel(t *testing.T) {
	m, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if m.Width() != 20 || m.Height() != 12 {
		t.Fatalf("expected 20x12, got %dx%d", m.Width(), m.Height())
	}
	// the border is solid so the player cannot walk off the map
	for _, cell := range [][2]int{{0, 0}, {0, 19}, {11, 0}, {11, 19}, {5, 0}} {
		tile, err := m.Tile(tilemap.Collide, cell[0], cell[1])
		if err != nil {
			t.Fatalf("Tile: %v", err)
		}
		if tile.IsEmpty() {
			t.Fatalf("expected wall at %v", cell)
		}
	}
	if tile, _ := m.Tile(tilemap.Collide, 2, 2); !tile.IsEmpty() {
		t.Fatalf("expected open ground at spawn, got %s", tile)
	}
}

func TestLoadLevelMissing(t *testing.T) {
	if _, err := LoadLevelFromFS("nope.map"); err == nil {
		t.Fatalf("expected error")
	}
}
