// internal/entity/player.go
package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/geom"
)

// Controls: источник состояния клавиш для сущностей.
type Controls interface {
	Down(k platform.Key) bool
}

// Player: корабль игрока. Двигается только по горизонтали.
type Player struct {
	Position    geom.Vec2
	Speed       float64
	Sprite      component.Sprite
	screenWidth float64
	start       geom.Vec2
}

// NewPlayer ставит корабль по центру у нижнего края экрана.
func NewPlayer(tex platform.Texture, screenWidth, screenHeight float64) *Player {
	p := &Player{
		Speed:       config.PlayerSpeed,
		Sprite:      component.Sprite{Texture: tex, Tint: config.ShipTint, Scale: 1},
		screenWidth: screenWidth,
	}
	w, h := p.Sprite.Size()
	p.start = geom.Vec2{
		X: (screenWidth - w) / 2,
		Y: screenHeight - h - config.PlayerBottomMargin,
	}
	p.Position = p.start
	return p
}

// Reset returns the ship to its starting spot.
func (p *Player) Reset() {
	p.Position = p.start
}

// Update moves the ship by a fixed step per frame and clamps it to the screen.
func (p *Player) Update(in Controls) {
	if in.Down(platform.KeyLeft) || in.Down(platform.KeyA) {
		p.Position.X -= p.Speed
	}
	if in.Down(platform.KeyRight) || in.Down(platform.KeyD) {
		p.Position.X += p.Speed
	}
	w, _ := p.Sprite.Size()
	p.Position.X = utils.Clamp(p.Position.X, 0, p.screenWidth-w)
}

// Bounds returns the ship rectangle.
func (p *Player) Bounds() geom.Rect {
	w, h := p.Sprite.Size()
	return geom.NewRect(p.Position, w, h)
}

// Muzzle возвращает точку вылета пули, центр верхней кромки корабля.
func (p *Player) Muzzle() geom.Vec2 {
	w, _ := p.Sprite.Size()
	return geom.Vec2{X: p.Position.X + w/2, Y: p.Position.Y}
}

func (p *Player) Draw(r platform.Renderer) {
	r.DrawTexture(p.Sprite.Texture, p.Position, p.Sprite.Tint, p.Sprite.Scale, 0)
}
