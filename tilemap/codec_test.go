package tilemap

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestEncodeTwoByTwo(t *testing.T) {
	m := mustNew(t, 2, 2, Empty)
	_ = m.SetTile(Base, 0, 0, Tile{1, 0})
	_ = m.SetTile(Base, 0, 1, Tile{2, 0})
	_ = m.SetTile(Base, 1, 0, Tile{0, 0})
	_ = m.SetTile(Base, 1, 1, Tile{5, 3})

	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := append([]byte{2, 2, 1, 0, 2, 0, 0, 0, 5, 3}, make([]byte, 24)...)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("encoded bytes\n got %v\nwant %v", buf.Bytes(), want)
	}

	got, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(m) {
		t.Fatalf("decoded map differs from original")
	}
}

func TestEncodedSize(t *testing.T) {
	cases := []struct{ w, h int }{{1, 1}, {2, 2}, {10, 10}, {255, 1}, {17, 33}}
	for _, c := range cases {
		m := mustNew(t, c.w, c.h, Tile{1, 1})
		var buf bytes.Buffer
		if err := Encode(&buf, m); err != nil {
			t.Fatalf("Encode %dx%d: %v", c.w, c.h, err)
		}
		if want := 2 + 8*c.w*c.h; buf.Len() != want || EncodedSize(c.w, c.h) != want {
			t.Fatalf("%dx%d: got %d bytes, want %d", c.w, c.h, buf.Len(), want)
		}
	}
}

// patterned fills every cell with a value derived from its position and layer
// so that any transposition or layer swap shows up on decode.
func patterned(t *testing.T, w, h int) *Map {
	t.Helper()
	m := mustNew(t, w, h, Empty)
	for _, role := range LayerTypes() {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				tile := Tile{Col: uint8(x*7 + int(role)), Row: uint8(y*3 + int(role)*11)}
				if err := m.SetTile(role, y, x, tile); err != nil {
					t.Fatalf("SetTile: %v", err)
				}
			}
		}
	}
	return m
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"one", 1, 1},
		{"wide", 40, 3},
		{"tall", 3, 40},
		{"square", 16, 16},
		{"max", 255, 255},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := patterned(t, c.w, c.h)
			var buf bytes.Buffer
			if err := Encode(&buf, m); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !got.Equal(m) {
				t.Fatalf("round trip mismatch for %dx%d", c.w, c.h)
			}
		})
	}
}

func TestLayerOrderIsPreserved(t *testing.T) {
	m := mustNew(t, 3, 2, Empty)
	sentinels := map[LayerType]Tile{
		Base:    {10, 1},
		Collide: {20, 2},
		Decor:   {30, 3},
		Overlay: {40, 4},
	}
	for role, tile := range sentinels {
		if err := m.Fill(role, tile); err != nil {
			t.Fatalf("Fill: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	raw := buf.Bytes()
	layerBytes := 3 * 2 * 2
	for i, role := range LayerTypes() {
		off := 2 + i*layerBytes
		if raw[off] != sentinels[role].Col || raw[off+1] != sentinels[role].Row {
			t.Fatalf("%s expected at offset %d, got (%d, %d)", role, off, raw[off], raw[off+1])
		}
	}

	got, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for role, tile := range sentinels {
		cell, _ := got.Tile(role, 1, 2)
		if cell != tile {
			t.Fatalf("%s: expected %s, got %s", role, tile, cell)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	full := make([]byte, EncodedSize(10, 10))
	full[0], full[1] = 10, 10

	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"one_byte", []byte{10}},
		{"header_only", full[:2]},
		{"mid_base", full[:2+100]},
		{"mid_overlay", full[:len(full)-1]},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := Decode(bytes.NewReader(c.data))
			if !errors.Is(err, ErrTruncatedFile) {
				t.Fatalf("expected ErrTruncatedFile, got %v", err)
			}
			if m != nil {
				t.Fatalf("expected no map on failure")
			}
		})
	}

	if _, err := Decode(bytes.NewReader(full)); err != nil {
		t.Fatalf("full file should decode: %v", err)
	}
}

func TestDecodeZeroDimensions(t *testing.T) {
	for _, header := range [][]byte{{0, 5}, {5, 0}, {0, 0}} {
		if _, err := Decode(bytes.NewReader(header)); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("header %v: expected ErrInvalidDimensions, got %v", header, err)
		}
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestDecodeReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Decode(io.MultiReader(bytes.NewReader([]byte{1, 1}), failingReader{boom}))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.map")
	m := patterned(t, 12, 9)

	if err := m.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != int64(EncodedSize(12, 9)) {
		t.Fatalf("unexpected file size %d", info.Size())
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(m) {
		t.Fatalf("loaded map differs")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the map file, found %d entries", len(entries))
	}
}

func TestSaveReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.map")
	if err := Save(path, mustNew(t, 4, 4, Tile{1, 0})); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	next := mustNew(t, 2, 3, Tile{2, 2})
	if err := Save(path, next); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(next) {
		t.Fatalf("expected replaced contents")
	}
}

func TestSaveFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	dir := t.TempDir()
	cases := []struct {
		name     string
		existing os.FileMode // 0 means no file before the save
		want     os.FileMode
	}{
		{"new_file", 0, 0o644},
		{"keeps_0644", 0o644, 0o644},
		{"keeps_0640", 0o640, 0o640},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".map")
			if c.existing != 0 {
				if err := os.WriteFile(path, []byte{1, 1, 0, 0, 0, 0, 0, 0, 0, 0}, c.existing); err != nil {
					t.Fatalf("WriteFile: %v", err)
				}
				if err := os.Chmod(path, c.existing); err != nil {
					t.Fatalf("Chmod: %v", err)
				}
			}
			if err := Save(path, mustNew(t, 2, 2, Tile{1, 0})); err != nil {
				t.Fatalf("Save: %v", err)
			}
			fi, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Stat: %v", err)
			}
			if got := fi.Mode().Perm(); got != c.want {
				t.Fatalf("mode after save = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSaveFailureKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.map")
	orig := mustNew(t, 3, 3, Tile{1, 0})
	if err := Save(path, orig); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// a map whose layers drifted from its declared size cannot be encoded
	bad := orig.Clone()
	bad.layers[Decor] = bad.layers[Decor][:2]
	if err := Save(path, bad); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(orig) {
		t.Fatalf("previous file was modified by failed save")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("temporary file left behind: %d entries", len(entries))
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.map"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError for missing file, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist in chain, got %v", err)
	}

	short := filepath.Join(dir, "short.map")
	data := make([]byte, 2+799)
	data[0], data[1] = 10, 10
	if err := os.WriteFile(short, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m, err := Load(short)
	if !errors.Is(err, ErrTruncatedFile) {
		t.Fatalf("expected ErrTruncatedFile, got %v", err)
	}
	if m != nil {
		t.Fatalf("expected nil map")
	}
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "world.map")
	err := Save(path, mustNew(t, 1, 1, Empty))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if ioErr.Path != path {
		t.Fatalf("expected path %q, got %q", path, ioErr.Path)
	}
}
