package obj

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/overworld/tilemap"
)

var wall = tilemap.Tile{Col: 2, Row: 0}

func borderedMap(t *testing.T, w, h int) *tilemap.Map {
	t.Helper()
	m, err := tilemap.New(w, h, tilemap.Tile{Col: 1})
	if err != nil {
		t.Fatalf("new map: %v", err)
	}
	if err := m.Fill(tilemap.Collide, tilemap.Empty); err != nil {
		t.Fatalf("fill: %v", err)
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if row == 0 || col == 0 || row == h-1 || col == w-1 {
				if err := m.SetTile(tilemap.Collide, row, col, wall); err != nil {
					t.Fatalf("set tile: %v", err)
				}
			}
		}
	}
	return m
}

func TestCollisionWorldMergesBorder(t *testing.T) {
	cw := NewCollisionWorld(borderedMap(t, 5, 5), 16)
	if cw.Boxes() != 4 {
		t.Fatalf("expected border merged into 4 boxes, got %d", cw.Boxes())
	}
}

func TestCollisionWorldBlocked(t *testing.T) {
	m := borderedMap(t, 6, 5)
	// a lone rock in the middle
	if err := m.SetTile(tilemap.Collide, 2, 3, tilemap.Tile{Col: 3, Row: 1}); err != nil {
		t.Fatalf("set tile: %v", err)
	}
	cw := NewCollisionWorld(m, 16)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"border corner", 1, 1, true},
		{"border edge pixel", 15.9, 40, true},
		{"open ground", 16, 16, false},
		{"open ground far edge", 47.9, 47.9, false},
		{"rock", 48, 32, true},
		{"rock last pixel", 63.9, 47.9, true},
		{"right of rock", 64, 32, false},
		{"left of map", -0.1, 20, true},
		{"below map", 20, 80, true},
		{"right of map", 96, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cw.Blocked(tt.x, tt.y); got != tt.want {
				t.Fatalf("Blocked(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCollisionWorldRowZeroIsSolid(t *testing.T) {
	m, err := tilemap.New(3, 3, tilemap.Empty)
	if err != nil {
		t.Fatalf("new map: %v", err)
	}
	// col 1 row 0 is a real atlas cell and must block
	if err := m.SetTile(tilemap.Collide, 1, 1, tilemap.Tile{Col: 1, Row: 0}); err != nil {
		t.Fatalf("set tile: %v", err)
	}
	// col 0 is empty whatever the row
	if err := m.SetTile(tilemap.Collide, 0, 0, tilemap.Tile{Col: 0, Row: 7}); err != nil {
		t.Fatalf("set tile: %v", err)
	}
	cw := NewCollisionWorld(m, 16)
	if !cw.Blocked(24, 24) {
		t.Fatalf("expected (1, 0) tile to block")
	}
	if cw.Blocked(8, 8) {
		t.Fatalf("expected (0, 7) tile to be open")
	}
	if cw.Boxes() != 1 {
		t.Fatalf("expected 1 box, got %d", cw.Boxes())
	}
}

func TestCollisionWorldColliding(t *testing.T) {
	cw := NewCollisionWorld(borderedMap(t, 6, 6), 16)
	probes := []mgl64.Vec2{{-4, 10}, {4, 10}, {-4, 0}, {4, 0}}

	if cw.Colliding(mgl64.Vec2{32, 32}, probes) {
		t.Fatalf("expected spawn point to be clear")
	}
	// left probes at x=16 are still open, x=15.5 is in the wall
	if cw.Colliding(mgl64.Vec2{20, 32}, probes) {
		t.Fatalf("expected x=20 to be clear")
	}
	if !cw.Colliding(mgl64.Vec2{19.5, 32}, probes) {
		t.Fatalf("expected x=19.5 to touch the left wall")
	}
	// feet probes at y+10
	if !cw.Colliding(mgl64.Vec2{32, 70}, probes) {
		t.Fatalf("expected feet to touch the bottom wall")
	}
}

func TestCollisionWorldNilMap(t *testing.T) {
	cw := NewCollisionWorld(nil, 16)
	if !cw.Blocked(0, 0) {
		t.Fatalf("expected empty world to block everything")
	}
}
