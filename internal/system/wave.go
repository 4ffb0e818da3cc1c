// internal/system/wave.go
package system

import (
	"log"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/platform"
	"go-space-invaders/pkg/geom"
)

// WaveSystem ведёт волны: спавн сетки, отсчёт между волнами, конец игры
// после последней волны. Движение роя делегируется SwarmSystem.
type WaveSystem struct {
	world           *entity.World
	settings        defs.WaveSettings
	enemyTexture    platform.Texture
	swarm           *SwarmSystem
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(world *entity.World, settings defs.WaveSettings, enemyTexture platform.Texture, swarm *SwarmSystem, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		settings:        settings,
		enemyTexture:    enemyTexture,
		swarm:           swarm,
		eventDispatcher: eventDispatcher,
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.world.Wave
	switch wave.Phase {
	case component.WaveActive:
		s.swarm.Update(deltaTime)
	case component.WaveCooldown:
		wave.Cooldown -= deltaTime
		if wave.Cooldown <= 0 {
			wave.Cooldown = 0
			s.StartNextWave()
		}
	}
}

// StartNextWave spawns the next grid. When every wave has been beaten it
// dispatches WavesCompleted instead, spawns nothing and returns false.
func (s *WaveSystem) StartNextWave() bool {
	wave := s.world.Wave
	next := wave.Number + 1
	if next > s.settings.WavesToBeat {
		wave.Phase = component.WaveInactive
		wave.Cooldown = 0
		log.Printf("All %d waves beaten", s.settings.WavesToBeat)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WavesCompleted, Data: wave.Number})
		return false
	}

	wave.Number = next
	wave.Speed = s.settings.Speed(next)
	wave.Direction = 1
	wave.Drop = s.settings.Drop
	wave.Cooldown = 0
	s.spawnGrid(s.settings.Rows(next), s.settings.Cols(next))
	wave.Phase = component.WaveActive

	if config.Debug {
		log.Printf("Wave %d: %d enemies, speed %.0f", next, len(s.world.Enemies), wave.Speed)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: next})
	return true
}

// CheckCleared moves an active wave with no enemies left into cooldown.
// Clearing the final wave ends the run right away.
func (s *WaveSystem) CheckCleared() bool {
	wave := s.world.Wave
	if wave.Phase != component.WaveActive || len(s.world.Enemies) > 0 {
		return false
	}

	if wave.Number >= s.settings.WavesToBeat {
		s.StartNextWave()
		return true
	}

	wave.Phase = component.WaveCooldown
	wave.Cooldown = s.settings.Cooldown
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: wave.Number})
	return true
}

// spawnGrid заменяет врагов сеткой rows x cols, выровненной по центру экрана.
func (s *WaveSystem) spawnGrid(rows, cols int) {
	clear(s.world.Enemies)
	s.world.Enemies = s.world.Enemies[:0]

	w, _ := s.enemyTexture.Size()
	gridWidth := float64(cols-1)*s.settings.SpacingX + float64(w)
	startX := (s.world.ScreenWidth - gridWidth) / 2

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pos := geom.Vec2{
				X: startX + float64(col)*s.settings.SpacingX,
				Y: s.settings.TopMargin + float64(row)*s.settings.SpacingY,
			}
			s.world.Enemies = append(s.world.Enemies, entity.NewEnemy(s.enemyTexture, pos))
		}
	}
}
