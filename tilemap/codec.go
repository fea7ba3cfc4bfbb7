package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File layout:
//
//	byte 0   width
//	byte 1   height
//	then     Base, Collide, Decor, Overlay
//
// Each layer is height rows of width tiles, each tile two bytes (col, row).
const (
	headerSize   = 2
	bytesPerTile = 2
)

// EncodedSize returns the exact byte length of a width x height map file.
func EncodedSize(width, height int) int {
	return headerSize + LayerCount*width*height*bytesPerTile
}

// Encode writes m in the map file format.
func Encode(w io.Writer, m *Map) error {
	if err := checkDimensions(m.width, m.height); err != nil {
		return err
	}
	buf := make([]byte, 0, EncodedSize(m.width, m.height))
	buf = append(buf, uint8(m.width), uint8(m.height))
	for _, role := range LayerTypes() {
		g := m.layers[role]
		if len(g) != m.height {
			return fmt.Errorf("tilemap: encode %s: %d rows, want %d: %w", role, len(g), m.height, ErrInvalidDimensions)
		}
		for y, row := range g {
			if len(row) != m.width {
				return fmt.Errorf("tilemap: encode %s row %d: %d cols, want %d: %w", role, y, len(row), m.width, ErrInvalidDimensions)
			}
			for _, t := range row {
				buf = append(buf, t.Col, t.Row)
			}
		}
	}
	if _, err := w.Write(buf); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// Decode reads a map in the map file format. It returns ErrTruncatedFile if
// the stream ends early and never returns a partially filled map.
func Decode(r io.Reader) (*Map, error) {
	var header [headerSize]byte
	if err := readFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("tilemap: read header: %w", err)
	}
	width, height := int(header[0]), int(header[1])
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	m := &Map{width: width, height: height}
	rowBuf := make([]byte, width*bytesPerTile)
	for _, role := range LayerTypes() {
		g := make(Grid, height)
		for y := range g {
			if err := readFull(r, rowBuf); err != nil {
				return nil, fmt.Errorf("tilemap: read %s row %d: %w", role, y, err)
			}
			row := make([]Tile, width)
			for x := range row {
				row[x] = Tile{Col: rowBuf[x*2], Row: rowBuf[x*2+1]}
			}
			g[y] = row
		}
		m.layers[role] = g
	}
	return m, nil
}

func readFull(r io.Reader, p []byte) error {
	_, err := io.ReadFull(r, p)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return ErrTruncatedFile
	default:
		return &IOError{Op: "read", Err: err}
	}
}

// Load reads the map file at path.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	m, err := Decode(bufio.NewReader(f))
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = path
		}
		return nil, err
	}
	return m, nil
}

// Save writes m to path. The file is written next to path under a temporary
// name and renamed into place, so a failed save leaves the previous file
// untouched.
func Save(path string, m *Map) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = Encode(w, m); err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
		}
		return err
	}
	if err = w.Flush(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err = tmp.Chmod(saveMode(path)); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// saveMode keeps the permissions of the file being replaced; new files get
// 0644.
func saveMode(path string) os.FileMode {
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		return fi.Mode().Perm()
	}
	return 0o644
}

// Save writes the map to path. See Save.
func (m *Map) Save(path string) error {
	return Save(path, m)
}
