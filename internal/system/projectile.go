// internal/system/projectile.go
package system

import "go-space-invaders/internal/entity"

// ProjectileSystem управляет движением пуль и удалением улетевших
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update() {
	for _, b := range s.world.Bullets {
		b.Update()
	}
}

// Cull removes bullets that have left the top of the screen.
// Returns how many were removed.
func (s *ProjectileSystem) Cull() int {
	kept := s.world.Bullets[:0]
	for _, b := range s.world.Bullets {
		if !b.IsOffScreen() {
			kept = append(kept, b)
		}
	}
	removed := len(s.world.Bullets) - len(kept)
	clear(s.world.Bullets[len(kept):])
	s.world.Bullets = kept
	return removed
}
