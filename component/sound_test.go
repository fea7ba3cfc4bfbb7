package component

import "testing"

func TestNilSoundIsSilent(t *testing.T) {
	var s *Sound
	s.Play()

	empty := &Sound{}
	empty.Play()
}
