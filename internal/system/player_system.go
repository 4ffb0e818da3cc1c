// internal/system/player_system.go
package system

import (
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/platform"
)

// Controls отдает состояние клавиш кадра (уровень и фронт нажатия).
type Controls interface {
	Down(k platform.Key) bool
	Pressed(k platform.Key) bool
}

// PlayerSystem двигает корабль и создаёт пули по нажатию огня.
type PlayerSystem struct {
	world           *entity.World
	bulletTexture   platform.Texture
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, bulletTexture platform.Texture, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		world:           world,
		bulletTexture:   bulletTexture,
		eventDispatcher: eventDispatcher,
	}
}

func (s *PlayerSystem) Update(in Controls) {
	s.world.Player.Update(in)

	// Один выстрел на одно нажатие
	if in.Pressed(platform.KeySpace) {
		s.Fire()
	}
}

// Fire spawns a bullet at the ship's muzzle.
func (s *PlayerSystem) Fire() *entity.Bullet {
	b := entity.NewBullet(s.bulletTexture, s.world.Player.Muzzle())
	s.world.Bullets = append(s.world.Bullets, b)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: b})
	return b
}
