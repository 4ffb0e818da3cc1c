package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// note хранит тон и его длительность в долях такта; freq 0 означает паузу.
type note struct {
	freq  float64
	beats float64
	wave  WaveType
}

// melody builds one pass of the notes at the given tempo.
func melody(bpm float64, notes []note) beep.Streamer {
	beat := time.Duration(float64(time.Minute) / bpm)
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		d := time.Duration(n.beats * float64(beat))
		if n.freq == 0 {
			parts = append(parts, beep.Silence(SampleRate.N(d)))
			continue
		}
		tone := NewEnvelope(NewOscillator(n.freq, d, n.wave), d, 5*time.Millisecond, d/3)
		parts = append(parts, tone)
	}
	return beep.Seq(parts...)
}

// MenuTheme: спокойное арпеджио ля минор. Один проход; зацикливает плеер.
func MenuTheme() beep.Streamer {
	const (
		a3 = 220.00
		c4 = 261.63
		e4 = 329.63
		a4 = 440.00
		g4 = 392.00
		d4 = 293.66
	)
	lead := melody(110, []note{
		{a3, 0.5, WaveSine}, {c4, 0.5, WaveSine}, {e4, 0.5, WaveSine}, {a4, 0.5, WaveSine},
		{e4, 0.5, WaveSine}, {c4, 0.5, WaveSine}, {a3, 1, WaveSine},
		{g4, 0.5, WaveSine}, {e4, 0.5, WaveSine}, {d4, 0.5, WaveSine}, {c4, 0.5, WaveSine},
		{d4, 0.5, WaveSine}, {e4, 0.5, WaveSine}, {a3, 1, WaveSine},
	})
	return newVolume(lead, 0.2)
}

// GameTheme: четыре нисходящие басовые ноты, как у автомата.
func GameTheme() beep.Streamer {
	const (
		g2 = 98.00
		f2 = 87.31
		e2 = 82.41
		d2 = 73.42
	)
	bass := melody(140, []note{
		{g2, 0.5, WaveSquare}, {0, 0.5, WaveSine},
		{f2, 0.5, WaveSquare}, {0, 0.5, WaveSine},
		{e2, 0.5, WaveSquare}, {0, 0.5, WaveSine},
		{d2, 0.5, WaveSquare}, {0, 0.5, WaveSine},
	})
	return newVolume(bass, 0.3)
}
