// component/render.go
package component

import (
	"image/color"

	"go-space-invaders/internal/platform"
)

// Sprite — компонент для отрисовки. Один и тот же масштаб используется
// и для рисования, и для границ столкновений.
type Sprite struct {
	Texture platform.Texture
	Tint    color.Color
	Scale   float64
}

// Size returns the drawn size of the sprite in pixels.
func (s Sprite) Size() (float64, float64) {
	if s.Texture == nil {
		return 0, 0
	}
	w, h := s.Texture.Size()
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	return float64(w) * scale, float64(h) * scale
}
