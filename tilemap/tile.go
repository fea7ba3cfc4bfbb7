package tilemap

import "fmt"

// Tile addresses one cell of the tileset image. Col is 1-based so that the
// zero value means "nothing here"; Row is 0-based.
type Tile struct {
	Col uint8
	Row uint8
}

// Empty is the tile erasers write.
var Empty = Tile{}

// IsEmpty reports whether the tile has no tileset column and is never drawn.
func (t Tile) IsEmpty() bool {
	return t.Col == 0
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d, %d)", t.Col, t.Row)
}

// ShouldDraw reports whether t refers to an atlas cell. The row index is
// irrelevant when the column is 0.
func ShouldDraw(t Tile) bool {
	return !t.IsEmpty()
}

// ParseTile parses the "col,row" form used on the command line and the
// clipboard. Surrounding parentheses and spaces are accepted.
func ParseTile(s string) (Tile, error) {
	var col, row int
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', ')', ' ', '\t', '\n', '\r':
			continue
		}
		clean = append(clean, s[i])
	}
	if _, err := fmt.Sscanf(string(clean), "%d,%d", &col, &row); err != nil {
		return Tile{}, fmt.Errorf("tilemap: parse tile %q: %w", s, err)
	}
	if col < 0 || col > 255 || row < 0 || row > 255 {
		return Tile{}, fmt.Errorf("tilemap: parse tile %q: %w", s, ErrDimensionOverflow)
	}
	return Tile{Col: uint8(col), Row: uint8(row)}, nil
}
