package raylibplat

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/platform"
)

// Sound и Track: загруженные в устройство звуки raylib.
type Sound struct {
	snd rl.Sound
}

type Track struct {
	snd rl.Sound
}

// Audio plays sounds on the raylib device. Music is a looping Sound
// restarted from Update when it runs out.
type Audio struct {
	music   *Track
	playing bool
}

var _ platform.Audio = (*Audio)(nil)

func NewAudio() *Audio {
	return &Audio{}
}

func (a *Audio) PlaySound(s platform.Sound) {
	snd, ok := s.(*Sound)
	if !ok || snd == nil {
		return
	}
	rl.PlaySound(snd.snd)
}

func (a *Audio) PlayMusic(t platform.Track) {
	track, ok := t.(*Track)
	if !ok || track == nil {
		return
	}
	if a.music != nil {
		rl.StopSound(a.music.snd)
	}
	a.music = track
	a.playing = true
	rl.PlaySound(track.snd)
}

func (a *Audio) PauseMusic() {
	if a.music != nil && a.playing {
		rl.PauseSound(a.music.snd)
	}
	a.playing = false
}

func (a *Audio) ResumeMusic() {
	if a.music != nil && !a.playing {
		rl.ResumeSound(a.music.snd)
		a.playing = true
	}
}

func (a *Audio) IsMusicPlaying() bool {
	return a.music != nil && a.playing
}

// Update зацикливает музыку. Вызывается раз в кадр.
func (a *Audio) Update() {
	if a.music != nil && a.playing && !rl.IsSoundPlaying(a.music.snd) {
		rl.PlaySound(a.music.snd)
	}
}
