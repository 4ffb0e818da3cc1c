// internal/entity/enemy.go
package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/pkg/geom"
)

// Enemy: один пришелец. Своей скорости нет, его двигает рой.
type Enemy struct {
	Position geom.Vec2
	Sprite   component.Sprite
}

func NewEnemy(tex platform.Texture, pos geom.Vec2) *Enemy {
	return &Enemy{
		Position: pos,
		Sprite:   component.Sprite{Texture: tex, Tint: config.EnemyTint, Scale: 1},
	}
}

func (e *Enemy) Bounds() geom.Rect {
	w, h := e.Sprite.Size()
	return geom.NewRect(e.Position, w, h)
}

// IsOffScreen reports whether the enemy has passed the bottom of the screen.
func (e *Enemy) IsOffScreen(screenHeight float64) bool {
	return e.Position.Y > screenHeight
}

func (e *Enemy) Draw(r platform.Renderer) {
	r.DrawTexture(e.Sprite.Texture, e.Position, e.Sprite.Tint, e.Sprite.Scale, 0)
}
