package ui

import (
	"image/color"

	"go-space-invaders/internal/platform"
	"go-space-invaders/pkg/geom"
)

// DrawCentered рисует строку по центру экрана шириной screenWidth.
func DrawCentered(r platform.Renderer, font platform.Font, s string, screenWidth, y float64, clr color.Color) {
	size := r.MeasureText(font, s)
	r.DrawText(font, s, geom.Vec2{X: (screenWidth - size.X) / 2, Y: y}, clr)
}

// DrawOutlined draws s with a one-color outline of the given thickness.
func DrawOutlined(r platform.Renderer, font platform.Font, s string, pos geom.Vec2, thickness int, clr, outline color.Color) {
	for y := -thickness; y <= thickness; y++ {
		for x := -thickness; x <= thickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			r.DrawText(font, s, geom.Vec2{X: pos.X + float64(x), Y: pos.Y + float64(y)}, outline)
		}
	}
	r.DrawText(font, s, pos, clr)
}
