package ui

import (
	"image/color"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/pkg/geom"
)

// Overlay затемняет экран и выводит заголовок с подсказками под ним.
type Overlay struct {
	Title      string
	TitleColor color.Color
	Lines      []string
}

func (o *Overlay) Draw(r platform.Renderer, titleFont, font platform.Font) {
	r.FillRect(geom.Rect{W: config.ScreenWidth, H: config.ScreenHeight}, config.OverlayColor)

	y := float64(config.ScreenHeight)/2 - titleFont.LineHeight()
	DrawCentered(r, titleFont, o.Title, config.ScreenWidth, y, o.TitleColor)

	y += titleFont.LineHeight() + 16
	for _, line := range o.Lines {
		DrawCentered(r, font, line, config.ScreenWidth, y, config.TextLightColor)
		y += font.LineHeight() + 6
	}
}
