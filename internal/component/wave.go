// internal/component/wave.go
package component

// WavePhase — фаза менеджера волн
type WavePhase int

const (
	WaveInactive WavePhase = iota
	WaveActive
	WaveCooldown
)

func (p WavePhase) String() string {
	switch p {
	case WaveInactive:
		return "Inactive"
	case WaveActive:
		return "Active"
	case WaveCooldown:
		return "Cooldown"
	}
	return "Unknown"
}

// Wave — состояние текущей волны и роя
type Wave struct {
	Number    int       // Номер волны, с 1
	Phase     WavePhase // Фаза
	Cooldown  float64   // Секунд до следующей волны
	Direction float64   // +1 вправо, -1 влево
	Speed     float64   // Скорость роя, пикселей в секунду
	Drop      float64   // Шаг вниз при отскоке от края
}

// Active reports whether the swarm is moving.
func (w *Wave) Active() bool {
	return w.Phase == WaveActive
}
