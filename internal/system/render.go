// internal/system/render.go
package system

import (
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/platform"
)

// RenderSystem рисует сущности: сначала врагов, затем пули и корабль
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

func (s *RenderSystem) Draw(r platform.Renderer) {
	for _, e := range s.world.Enemies {
		e.Draw(r)
	}
	for _, b := range s.world.Bullets {
		b.Draw(r)
	}
	if s.world.Player != nil {
		s.world.Player.Draw(r)
	}
}
