package tilemap

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedFile is returned when a map stream ends before the number
	// of tiles its header declares.
	ErrTruncatedFile = errors.New("tilemap: truncated map file")
	// ErrIndexOutOfBounds is returned for cell coordinates outside the map.
	ErrIndexOutOfBounds = errors.New("tilemap: index out of bounds")
	// ErrDimensionOverflow is returned when a mutation would grow the map
	// past what a single header byte can describe.
	ErrDimensionOverflow = errors.New("tilemap: dimension overflow")
	// ErrInvalidDimensions is returned for zero-sized maps.
	ErrInvalidDimensions = errors.New("tilemap: invalid dimensions")
	// ErrUnknownLayer is returned for a LayerType outside Base..Overlay.
	ErrUnknownLayer = errors.New("tilemap: unknown layer")
)

// IOError wraps a filesystem failure during Load or Save.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("tilemap: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
