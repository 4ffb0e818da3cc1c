// internal/entity/world.go
package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
)

// World: все сущности одной партии. Системы работают с ним напрямую.
type World struct {
	ScreenWidth  float64
	ScreenHeight float64

	Player  *Player
	Bullets []*Bullet
	Enemies []*Enemy
	Wave    *component.Wave
	Stats   component.Stats
}

func NewWorld(player *Player, screenWidth, screenHeight float64) *World {
	w := &World{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		Player:       player,
	}
	w.Reset()
	return w
}

// Reset prepares the world for a new game: fresh stats, no entities, wave 0.
func (w *World) Reset() {
	w.Bullets = w.Bullets[:0]
	w.Enemies = w.Enemies[:0]
	w.Wave = &component.Wave{Direction: 1}
	w.Stats = component.Stats{Health: config.StartingHealth}
	if w.Player != nil {
		w.Player.Reset()
	}
}
