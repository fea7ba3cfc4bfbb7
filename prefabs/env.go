package prefabs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvMapPath   = "OVERWORLD_MAP"
	EnvAtlasPath = "OVERWORLD_ATLAS"
	EnvZoom      = "OVERWORLD_ZOOM"
)

// LoadEnv reads a .env file from the working directory if there is one.
// Variables already set in the environment win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("prefabs: .env not loaded: %v", err)
	}
}

// ApplyEnv overrides spec fields from OVERWORLD_* variables.
func (s *WorldSpec) ApplyEnv() {
	if v := os.Getenv(EnvMapPath); v != "" {
		s.MapPath = v
	}
	if v := os.Getenv(EnvAtlasPath); v != "" {
		s.AtlasPath = v
	}
	if v := os.Getenv(EnvZoom); v != "" {
		z, err := strconv.ParseFloat(v, 64)
		if err != nil || z <= 0 {
			log.Printf("prefabs: ignoring %s=%q", EnvZoom, v)
			return
		}
		s.Zoom = z
	}
}
