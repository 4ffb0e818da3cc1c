package interfaces

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/platform"
	"go-space-invaders/internal/system"
)

// Game: игровая сессия, как её видят состояния верхнего уровня.
type Game interface {
	Start()
	Update(deltaTime float64, in system.Controls)
	Draw(r platform.Renderer)
	Over() bool
	Victory() bool
	Stats() component.Stats
	CurrentWave() component.Wave
}
