package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec configures where the world comes from and how it is drawn.
type WorldSpec struct {
	MapPath   string  `yaml:"map_path"`
	AtlasPath string  `yaml:"atlas_path"`
	TileSize  int     `yaml:"tile_size"`
	Zoom      float64 `yaml:"zoom"`
	// WatchMap reloads the map when the file on disk changes.
	WatchMap bool `yaml:"watch_map"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	if spec.TileSize <= 0 {
		spec.TileSize = 16
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return &spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type AnimationSpec struct {
	Sheet   string `yaml:"sheet"`
	FrameW  int    `yaml:"frame_w"`
	FrameH  int    `yaml:"frame_h"`
	Frames  int    `yaml:"frames"`
	FPS     int    `yaml:"fps"`
	Down    int    `yaml:"down_y"`
	Right   int    `yaml:"right_y"`
	Up      int    `yaml:"up_y"`
	Left    int    `yaml:"left_y"`
	OriginX int    `yaml:"origin_x"`
	OriginY int    `yaml:"origin_y"`
}

// PlayerSpec holds movement tuning and the collision probe points, which
// are offsets from the player's position that must all be on open ground
// for a move to happen.
type PlayerSpec struct {
	Spawn       PointSpec     `yaml:"spawn"`
	Speed       float64       `yaml:"speed"`
	SprintSpeed float64       `yaml:"sprint_speed"`
	Probes      []PointSpec   `yaml:"probes"`
	Animation   AnimationSpec `yaml:"animation"`
	StepSound   string        `yaml:"step_sound"`
	StepVolume  float64       `yaml:"step_volume"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EditorSpec struct {
	Scale        float64 `yaml:"scale"`
	Brush        string  `yaml:"brush"`
	NotifyFrames int     `yaml:"notify_frames"`
	UndoDepth    int     `yaml:"undo_depth"`
	PanelWidth   int     `yaml:"panel_width"`
	Script       string  `yaml:"script"`
	SaveSound    string  `yaml:"save_sound"`
	// WatchScript reruns Script whenever its file on disk changes.
	WatchScript bool `yaml:"watch_script"`
}

func LoadEditorSpec() (*EditorSpec, error) {
	spec, err := LoadSpec[EditorSpec]("editor.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Scale <= 0 {
		spec.Scale = 4
	}
	if spec.NotifyFrames <= 0 {
		spec.NotifyFrames = 80
	}
	if spec.UndoDepth <= 0 {
		spec.UndoDepth = 64
	}
	return &spec, nil
}
