// internal/system/swarm.go
package system

import "go-space-invaders/internal/entity"

// SwarmSystem двигает всех врагов синхронно: по горизонтали, а при касании
// края экрана: разворот и шаг вниз для всего строя.
type SwarmSystem struct {
	world *entity.World
}

func NewSwarmSystem(world *entity.World) *SwarmSystem {
	return &SwarmSystem{world: world}
}

// Update moves the formation and reports whether it bounced this frame.
func (s *SwarmSystem) Update(deltaTime float64) bool {
	wave := s.world.Wave
	dx := wave.Direction * wave.Speed * deltaTime
	width := s.world.ScreenWidth

	minLeft, maxRight := width, 0.0
	for _, e := range s.world.Enemies {
		e.Position.X += dx
		r := e.Bounds()
		minLeft = min(minLeft, r.Left())
		maxRight = max(maxRight, r.Right())
	}

	var shift float64
	switch {
	case maxRight > width:
		shift = width - maxRight
	case minLeft < 0:
		shift = -minLeft
	default:
		return false
	}

	// Один разворот за кадр, сколько бы врагов ни вышло за край.
	// Строй возвращается в экран, чтобы короткий следующий кадр не развернул его снова.
	wave.Direction = -wave.Direction
	for _, e := range s.world.Enemies {
		e.Position.X += shift
		e.Position.Y += wave.Drop
	}
	return true
}
