// Package mapscript runs tengo scripts against a tile map. Scripts see the
// globals width and height and a tiles object:
//
//	tiles.get(layer, row, col)           -> [tcol, trow]
//	tiles.set(layer, row, col, tcol, trow)
//	tiles.fill(layer, tcol, trow)
//
// Layers are named "base", "collide", "decor" or "overlay".
package mapscript

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/overworld/tilemap"
)

// ErrBadArgument is returned when a script passes a value of the wrong kind.
var ErrBadArgument = errors.New("mapscript: bad argument")

const maxAllocs = 1 << 22

// Run executes src against m. m is modified in place; on error it may be
// partially modified, so callers that care keep a copy.
func Run(ctx context.Context, m *tilemap.Map, src []byte) error {
	if m == nil {
		return fmt.Errorf("mapscript: nil map")
	}
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand", "text", "fmt"))
	script.SetMaxAllocs(maxAllocs)
	if err := script.Add("width", m.Width()); err != nil {
		return err
	}
	if err := script.Add("height", m.Height()); err != nil {
		return err
	}
	if err := script.Add("tiles", buildTiles(m)); err != nil {
		return err
	}

	if _, err := script.RunContext(ctx); err != nil {
		return fmt.Errorf("mapscript: %w", err)
	}
	return nil
}

func buildTiles(m *tilemap.Map) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["get"] = &tengo.UserFunction{Name: "get", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		layer, err := layerArg(args[0])
		if err != nil {
			return nil, err
		}
		row, col, err := intArgs(args[1], args[2])
		if err != nil {
			return nil, err
		}
		t, err := m.Tile(layer, row, col)
		if err != nil {
			return nil, err
		}
		return &tengo.Array{Value: []tengo.Object{
			&tengo.Int{Value: int64(t.Col)},
			&tengo.Int{Value: int64(t.Row)},
		}}, nil
	}}

	values["set"] = &tengo.UserFunction{Name: "set", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 5 {
			return nil, tengo.ErrWrongNumArguments
		}
		layer, err := layerArg(args[0])
		if err != nil {
			return nil, err
		}
		row, col, err := intArgs(args[1], args[2])
		if err != nil {
			return nil, err
		}
		t, err := tileArgs(args[3], args[4])
		if err != nil {
			return nil, err
		}
		if err := m.SetTile(layer, row, col, t); err != nil {
			return nil, err
		}
		return tengo.UndefinedValue, nil
	}}

	values["fill"] = &tengo.UserFunction{Name: "fill", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		layer, err := layerArg(args[0])
		if err != nil {
			return nil, err
		}
		t, err := tileArgs(args[1], args[2])
		if err != nil {
			return nil, err
		}
		if err := m.Fill(layer, t); err != nil {
			return nil, err
		}
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func layerArg(obj tengo.Object) (tilemap.LayerType, error) {
	s, ok := obj.(*tengo.String)
	if !ok {
		return 0, fmt.Errorf("%w: layer must be a string, got %s", ErrBadArgument, obj.TypeName())
	}
	return tilemap.ParseLayerType(strings.TrimSpace(s.Value))
}

func intArgs(a, b tengo.Object) (int, int, error) {
	x, ok := tengo.ToInt(a)
	if !ok {
		return 0, 0, fmt.Errorf("%w: expected int, got %s", ErrBadArgument, a.TypeName())
	}
	y, ok := tengo.ToInt(b)
	if !ok {
		return 0, 0, fmt.Errorf("%w: expected int, got %s", ErrBadArgument, b.TypeName())
	}
	return x, y, nil
}

func tileArgs(a, b tengo.Object) (tilemap.Tile, error) {
	col, row, err := intArgs(a, b)
	if err != nil {
		return tilemap.Tile{}, err
	}
	if col < 0 || col > 255 || row < 0 || row > 255 {
		return tilemap.Tile{}, fmt.Errorf("%w: tile (%d, %d) out of byte range", ErrBadArgument, col, row)
	}
	return tilemap.Tile{Col: uint8(col), Row: uint8(row)}, nil
}
