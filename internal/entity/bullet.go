// internal/entity/bullet.go
package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/pkg/geom"
)

// Bullet летит вверх с постоянной скоростью за кадр.
type Bullet struct {
	Position geom.Vec2
	Velocity component.Velocity
	Sprite   component.Sprite
}

// NewBullet centres the bullet on the muzzle, bottom edge at muzzle height.
func NewBullet(tex platform.Texture, muzzle geom.Vec2) *Bullet {
	b := &Bullet{
		Velocity: component.Velocity{DY: config.BulletSpeed},
		Sprite:   component.Sprite{Texture: tex, Tint: config.BulletTint, Scale: config.BulletScale},
	}
	w, h := b.Sprite.Size()
	b.Position = geom.Vec2{X: muzzle.X - w/2, Y: muzzle.Y - h}
	return b
}

func (b *Bullet) Update() {
	b.Position.X += b.Velocity.DX
	b.Position.Y += b.Velocity.DY
}

// IsOffScreen reports whether the bullet's bottom edge is above the screen.
func (b *Bullet) IsOffScreen() bool {
	_, h := b.Sprite.Size()
	return b.Position.Y+h < 0
}

func (b *Bullet) Bounds() geom.Rect {
	w, h := b.Sprite.Size()
	return geom.NewRect(b.Position, w, h)
}

func (b *Bullet) Draw(r platform.Renderer) {
	r.DrawTexture(b.Sprite.Texture, b.Position, b.Sprite.Tint, b.Sprite.Scale, 0)
}
