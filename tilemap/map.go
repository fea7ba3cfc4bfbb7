package tilemap

import "fmt"

// MaxDimension is the largest width or height a map file can describe.
const MaxDimension = 255

// Map is a rectangular world made of four equally sized tile layers.
//
// Width and height live on the Map itself and every resize goes through
// methods that touch all four layers, so the layers can never drift apart.
type Map struct {
	width  int
	height int
	layers [LayerCount]Grid
}

// New creates a width x height map with every cell of every layer set to
// fill.
func New(width, height int, fill Tile) (*Map, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	m := &Map{width: width, height: height}
	for i := range m.layers {
		m.layers[i] = newGrid(width, height, fill)
	}
	return m, nil
}

func checkDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrDimensionOverflow, width, height)
	}
	return nil
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

// Layer returns the grid for role. Cells of the returned grid may be read
// and written in place; appending to or replacing its rows does not reach
// the map. Use AddRow/AddCol to change its shape.
func (m *Map) Layer(role LayerType) (Grid, error) {
	g, err := m.grid(role)
	if err != nil {
		return nil, err
	}
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = row[:m.width:m.width]
	}
	return out, nil
}

// InBounds reports whether (row, col) addresses a cell.
func (m *Map) InBounds(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// Tile reads one cell.
func (m *Map) Tile(role LayerType, row, col int) (Tile, error) {
	g, err := m.cell(role, row, col)
	if err != nil {
		return Tile{}, err
	}
	return g[row][col], nil
}

// SetTile writes one cell.
func (m *Map) SetTile(role LayerType, row, col int, t Tile) error {
	g, err := m.cell(role, row, col)
	if err != nil {
		return err
	}
	g[row][col] = t
	return nil
}

// grid returns the live grid for role.
func (m *Map) grid(role LayerType) (Grid, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayer, int(role))
	}
	return m.layers[role], nil
}

func (m *Map) cell(role LayerType, row, col int) (Grid, error) {
	g, err := m.grid(role)
	if err != nil {
		return nil, err
	}
	if !m.InBounds(row, col) {
		return nil, fmt.Errorf("%w: %s (row=%d, col=%d) in %dx%d map",
			ErrIndexOutOfBounds, role, row, col, m.width, m.height)
	}
	return g, nil
}

// Fill overwrites every cell of one layer.
func (m *Map) Fill(role LayerType, t Tile) error {
	g, err := m.grid(role)
	if err != nil {
		return err
	}
	for _, row := range g {
		for x := range row {
			row[x] = t
		}
	}
	return nil
}

// AddRow appends a row at the bottom of every layer, filled with t.
func (m *Map) AddRow(t Tile) error {
	return m.AddRowFilled([LayerCount]Tile{t, t, t, t})
}

// AddRowFilled appends a row at the bottom of every layer using a separate
// fill tile per layer, indexed by LayerType.
func (m *Map) AddRowFilled(fills [LayerCount]Tile) error {
	if m.height+1 > MaxDimension {
		return fmt.Errorf("%w: height %d", ErrDimensionOverflow, m.height+1)
	}
	for i := range m.layers {
		m.layers[i] = append(m.layers[i], newRow(m.width, fills[i]))
	}
	m.height++
	return nil
}

// AddCol appends a column on the right of every layer, filled with t.
func (m *Map) AddCol(t Tile) error {
	return m.AddColFilled([LayerCount]Tile{t, t, t, t})
}

// AddColFilled is AddCol with a separate fill tile per layer.
func (m *Map) AddColFilled(fills [LayerCount]Tile) error {
	if m.width+1 > MaxDimension {
		return fmt.Errorf("%w: width %d", ErrDimensionOverflow, m.width+1)
	}
	for i, g := range m.layers {
		for y := range g {
			g[y] = append(g[y], fills[i])
		}
	}
	m.width++
	return nil
}

// RemoveRow drops the bottom row of every layer.
func (m *Map) RemoveRow() error {
	if m.height <= 1 {
		return fmt.Errorf("%w: cannot remove last row", ErrInvalidDimensions)
	}
	for i, g := range m.layers {
		m.layers[i] = g[:len(g)-1]
	}
	m.height--
	return nil
}

// RemoveCol drops the rightmost column of every layer.
func (m *Map) RemoveCol() error {
	if m.width <= 1 {
		return fmt.Errorf("%w: cannot remove last column", ErrInvalidDimensions)
	}
	for _, g := range m.layers {
		for y := range g {
			g[y] = g[y][:len(g[y])-1]
		}
	}
	m.width--
	return nil
}

// Resize grows or shrinks the map to width x height. Existing cells keep
// their position; new cells get fill.
func (m *Map) Resize(width, height int, fill Tile) error {
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	for i, g := range m.layers {
		out := newGrid(width, height, fill)
		for y := 0; y < height && y < len(g); y++ {
			copy(out[y], g[y])
		}
		m.layers[i] = out
	}
	m.width = width
	m.height = height
	return nil
}

// Clone returns a deep copy.
func (m *Map) Clone() *Map {
	c := &Map{width: m.width, height: m.height}
	for i, g := range m.layers {
		c.layers[i] = g.clone()
	}
	return c
}

// Equal reports whether both maps have the same size and the same tile in
// every cell of every layer.
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i := range m.layers {
		a, b := m.layers[i], o.layers[i]
		if len(a) != len(b) {
			return false
		}
		for y := range a {
			if len(a[y]) != len(b[y]) {
				return false
			}
			for x := range a[y] {
				if a[y][x] != b[y][x] {
					return false
				}
			}
		}
	}
	return true
}
