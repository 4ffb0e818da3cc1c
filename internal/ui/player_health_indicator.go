// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/pkg/geom"
)

const (
	HealthCellWidth   = 12.0
	HealthCellHeight  = 8.0
	HealthCellSpacing = 2.0
)

// PlayerHealthIndicator отображает здоровье игрока полоской ячеек:
// одна ячейка на один пропущенный враг.
type PlayerHealthIndicator struct {
	Position geom.Vec2
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float64) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{Position: geom.Vec2{X: x, Y: y}}
}

// Cells returns how many cells are shown and how many of them are full.
func Cells(health, maxHealth, perCell int) (total, full int) {
	if perCell <= 0 {
		return 0, 0
	}
	total = (maxHealth + perCell - 1) / perCell
	full = (health + perCell - 1) / perCell
	return total, min(full, total)
}

// Draw рисует подпись и ячейки здоровья.
func (i *PlayerHealthIndicator) Draw(r platform.Renderer, font platform.Font, health, maxHealth int) {
	label := "HP " + strconv.Itoa(health)
	r.DrawText(font, label, i.Position, config.HealthColor)

	total, full := Cells(health, maxHealth, config.EscapePenalty)
	y := i.Position.Y + font.LineHeight() + 2
	for j := 0; j < total; j++ {
		x := i.Position.X + float64(j)*(HealthCellWidth+HealthCellSpacing)
		var clr color.Color = color.RGBA{60, 60, 60, 255} // пустая ячейка
		if j < full {
			clr = config.HealthColor
		}
		r.FillRect(geom.Rect{X: x, Y: y, W: HealthCellWidth, H: HealthCellHeight}, clr)
	}
}
