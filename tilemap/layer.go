package tilemap

import (
	"fmt"
	"strings"
)

// LayerType names one of the four fixed layers of a Map. The numeric order
// is both the navigation order and the on-disk order.
type LayerType int

const (
	Base LayerType = iota
	Collide
	Decor
	Overlay

	LayerCount = 4
)

// LayerTypes returns every layer in storage order.
func LayerTypes() []LayerType {
	return []LayerType{Base, Collide, Decor, Overlay}
}

// Valid reports whether l is one of the four known layers.
func (l LayerType) Valid() bool {
	return l >= Base && l <= Overlay
}

// Higher returns the next layer up, staying on Overlay at the top.
func (l LayerType) Higher() LayerType {
	switch l {
	case Base:
		return Collide
	case Collide:
		return Decor
	default:
		return Overlay
	}
}

// Lower returns the next layer down, staying on Base at the bottom.
func (l LayerType) Lower() LayerType {
	switch l {
	case Overlay:
		return Decor
	case Decor:
		return Collide
	default:
		return Base
	}
}

func (l LayerType) String() string {
	switch l {
	case Base:
		return "Base"
	case Collide:
		return "Collide"
	case Decor:
		return "Decor"
	case Overlay:
		return "Overlay"
	default:
		return fmt.Sprintf("LayerType(%d)", int(l))
	}
}

// ParseLayerType accepts the layer names case-insensitively.
func ParseLayerType(s string) (LayerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base":
		return Base, nil
	case "collide":
		return Collide, nil
	case "decor":
		return Decor, nil
	case "overlay":
		return Overlay, nil
	}
	return 0, fmt.Errorf("tilemap: layer %q: %w", s, ErrUnknownLayer)
}

// Grid is a row-major tile grid: grid[row][col].
type Grid [][]Tile

func newGrid(width, height int, fill Tile) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = newRow(width, fill)
	}
	return g
}

func newRow(width int, fill Tile) []Tile {
	row := make([]Tile, width)
	for x := range row {
		row[x] = fill
	}
	return row
}

func (g Grid) clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]Tile(nil), row...)
	}
	return out
}
