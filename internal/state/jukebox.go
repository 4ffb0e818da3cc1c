package state

import "go-space-invaders/internal/platform"

// Jukebox переключает фоновую музыку между состояниями. Трек
// перезапускается, только если он отличается от текущего.
type Jukebox struct {
	audio   platform.Audio
	current platform.Track
}

func NewJukebox(audio platform.Audio) *Jukebox {
	return &Jukebox{audio: audio}
}

// Play switches to t. The same track keeps playing, or resumes if paused.
func (j *Jukebox) Play(t platform.Track) {
	if t == nil {
		return
	}
	if t == j.current {
		if !j.audio.IsMusicPlaying() {
			j.audio.ResumeMusic()
		}
		return
	}
	j.current = t
	j.audio.PlayMusic(t)
}

func (j *Jukebox) Pause() {
	if j.audio.IsMusicPlaying() {
		j.audio.PauseMusic()
	}
}
