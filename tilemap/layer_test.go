package tilemap

import (
	"errors"
	"testing"
)

func TestLayerTypeNavigation(t *testing.T) {
	cases := []struct {
		name   string
		from   LayerType
		higher LayerType
		lower  LayerType
	}{
		{"base", Base, Collide, Base},
		{"collide", Collide, Decor, Base},
		{"decor", Decor, Overlay, Collide},
		{"overlay", Overlay, Overlay, Decor},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.from.Higher(); got != c.higher {
				t.Fatalf("%s.Higher() = %s, want %s", c.from, got, c.higher)
			}
			if got := c.from.Lower(); got != c.lower {
				t.Fatalf("%s.Lower() = %s, want %s", c.from, got, c.lower)
			}
		})
	}
}

func TestLayerTypeCycleFromBase(t *testing.T) {
	l := Base
	var seen []LayerType
	for i := 0; i < 6; i++ {
		seen = append(seen, l)
		l = l.Higher()
	}
	want := []LayerType{Base, Collide, Decor, Overlay, Overlay, Overlay}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("step %d: got %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestParseLayerType(t *testing.T) {
	for _, l := range LayerTypes() {
		got, err := ParseLayerType(l.String())
		if err != nil {
			t.Fatalf("ParseLayerType(%q): %v", l.String(), err)
		}
		if got != l {
			t.Fatalf("ParseLayerType(%q) = %s", l.String(), got)
		}
	}
	if got, err := ParseLayerType("  OVERLAY "); err != nil || got != Overlay {
		t.Fatalf("expected case-insensitive parse, got %s, %v", got, err)
	}
	if _, err := ParseLayerType("sky"); !errors.Is(err, ErrUnknownLayer) {
		t.Fatalf("expected ErrUnknownLayer, got %v", err)
	}
}

func TestShouldDraw(t *testing.T) {
	cases := []struct {
		tile Tile
		want bool
	}{
		{Tile{Col: 0, Row: 5}, false},
		{Tile{Col: 0, Row: 0}, false},
		{Tile{Col: 1, Row: 0}, true},
		{Tile{Col: 255, Row: 255}, true},
	}
	for _, c := range cases {
		if got := ShouldDraw(c.tile); got != c.want {
			t.Errorf("ShouldDraw(%s) = %v, want %v", c.tile, got, c.want)
		}
	}
}

func TestParseTile(t *testing.T) {
	cases := []struct {
		in      string
		want    Tile
		wantErr bool
	}{
		{"3,7", Tile{3, 7}, false},
		{"(1, 0)", Tile{1, 0}, false},
		{" 12 , 4\n", Tile{12, 4}, false},
		{"256,0", Tile{}, true},
		{"-1,0", Tile{}, true},
		{"abc", Tile{}, true},
	}
	for _, c := range cases {
		got, err := ParseTile(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseTile(%q) expected error, got %s", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTile(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseTile(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}
