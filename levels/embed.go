package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/milk9111/overworld/tilemap"
)

//go:embed *.map
var LevelsFS embed.FS

// DefaultName is the level used when no map file exists on disk yet.
const DefaultName = "world.map"

func LoadLevelFromFS(name string) (*tilemap.Map, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	m, err := tilemap.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode level %s: %w", name, err)
	}
	return m, nil
}

func Default() (*tilemap.Map, error) {
	return LoadLevelFromFS(DefaultName)
}
