package audio

import (
	"fmt"
	"log"

	"github.com/gopxl/beep"

	"go-space-invaders/internal/config"
)

// Bank хранит уже отрендеренный PCM по имени ресурса.
type Bank struct {
	pcm map[string][]byte
}

func NewBank() *Bank {
	return &Bank{pcm: make(map[string][]byte)}
}

func generate(name string) (beep.Streamer, error) {
	switch name {
	case config.SoundLaser:
		return Laser(), nil
	case config.SoundExplosion:
		return Explosion(), nil
	case config.SoundHit:
		return Hit(), nil
	case config.TrackMenu:
		return MenuTheme(), nil
	case config.TrackGame:
		return GameTheme(), nil
	}
	return nil, fmt.Errorf("no sound named %q", name)
}

// PCM returns signed 16-bit little-endian stereo samples for the named sound
// or track, rendering it on first use.
func (b *Bank) PCM(name string) ([]byte, error) {
	if data, ok := b.pcm[name]; ok {
		return data, nil
	}
	s, err := generate(name)
	if err != nil {
		return nil, err
	}
	data := EncodePCM(Render(s))
	b.pcm[name] = data
	log.Printf("Synthesized %s: %d bytes", name, len(data))
	return data, nil
}

// Render drains a finite streamer into a buffer.
func Render(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	return buf
}

// EncodePCM converts the buffer to interleaved signed 16-bit samples.
func EncodePCM(buf *beep.Buffer) []byte {
	out := make([]byte, 0, buf.Len()*Format.Width())
	s := buf.Streamer(0, buf.Len())

	var frame [4]byte
	samples := make([][2]float64, 512)
	for {
		n, ok := s.Stream(samples)
		for _, sample := range samples[:n] {
			w := Format.EncodeSigned(frame[:], sample)
			out = append(out, frame[:w]...)
		}
		if !ok {
			break
		}
	}
	return out
}
