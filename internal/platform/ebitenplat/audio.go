package ebitenplat

import (
	"bytes"
	"log"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"go-space-invaders/internal/audio"
	"go-space-invaders/internal/platform"
)

// Sound и Track держат готовый 16-битный PCM.
type Sound struct {
	pcm []byte
}

type Track struct {
	name string
	pcm  []byte
}

// Audio plays effects as one-shot players and music as an infinite loop.
type Audio struct {
	ctx   *eaudio.Context
	music *eaudio.Player
}

var _ platform.Audio = (*Audio)(nil)

// NewAudio creates the process-wide audio context. Call it once.
func NewAudio() *Audio {
	return &Audio{ctx: eaudio.NewContext(int(audio.SampleRate))}
}

func (a *Audio) PlaySound(s platform.Sound) {
	snd, ok := s.(*Sound)
	if !ok || snd == nil {
		return
	}
	a.ctx.NewPlayerFromBytes(snd.pcm).Play()
}

func (a *Audio) PlayMusic(t platform.Track) {
	track, ok := t.(*Track)
	if !ok || track == nil {
		return
	}
	if a.music != nil {
		if err := a.music.Close(); err != nil {
			log.Printf("close music player: %v", err)
		}
	}

	loop := eaudio.NewInfiniteLoop(bytes.NewReader(track.pcm), int64(len(track.pcm)))
	p, err := a.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("music %s: %v", track.name, err)
		a.music = nil
		return
	}
	a.music = p
	a.music.Play()
}

func (a *Audio) PauseMusic() {
	if a.music != nil {
		a.music.Pause()
	}
}

func (a *Audio) ResumeMusic() {
	if a.music != nil {
		a.music.Play()
	}
}

func (a *Audio) IsMusicPlaying() bool {
	return a.music != nil && a.music.IsPlaying()
}
