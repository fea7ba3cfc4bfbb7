package component

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/overworld/assets"
)

// Sound is a short effect that restarts each time it is played. A nil
// *Sound is silent.
type Sound struct {
	player *audio.Player
	volume float64
}

// LoadSound loads a sound effect. Failures are logged and give a nil Sound
// so a missing audio device never stops the game.
func LoadSound(path string, volume float64) *Sound {
	p, err := assets.LoadAudioPlayer(path)
	if err != nil {
		log.Printf("sound %s: %v", path, err)
		return nil
	}
	return &Sound{player: p, volume: volume}
}

func (s *Sound) Play() {
	if s == nil || s.player == nil {
		return
	}
	s.player.SetVolume(s.volume)
	_ = s.player.Rewind()
	s.player.Play()
}
