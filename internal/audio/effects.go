package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	laserDuration     = 150 * time.Millisecond
	explosionDuration = 400 * time.Millisecond
	hitDuration       = 300 * time.Millisecond
)

// Laser: короткий писк, падающий по высоте.
func Laser() beep.Streamer {
	osc := NewSweep(1400, 300, laserDuration, WaveSquare)
	shaped := NewEnvelope(osc, laserDuration, 5*time.Millisecond, 100*time.Millisecond)
	return newVolume(shaped, 0.25)
}

// Explosion: шумовой удар с низким гулом под ним.
func Explosion() beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, explosionDuration, WaveNoise), explosionDuration, 2*time.Millisecond, 350*time.Millisecond)
	rumble := NewEnvelope(NewSweep(120, 40, explosionDuration, WaveSine), explosionDuration, 2*time.Millisecond, 300*time.Millisecond)
	return newVolume(beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4)), 0.5)
}

// Hit plays when an enemy slips past the bottom of the screen.
func Hit() beep.Streamer {
	first := NewEnvelope(NewOscillator(220, hitDuration/2, WaveSaw), hitDuration/2, 2*time.Millisecond, 40*time.Millisecond)
	second := NewEnvelope(NewOscillator(110, hitDuration/2, WaveSaw), hitDuration/2, 2*time.Millisecond, 80*time.Millisecond)
	return newVolume(beep.Seq(first, second), 0.35)
}
