package ui

import (
	"fmt"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/pkg/geom"
)

const hudMargin = 10.0

// HUD: счёт, здоровье и номер волны поверх игрового поля.
type HUD struct {
	font        platform.Font
	bannerFont  platform.Font
	wavesToBeat int

	health *PlayerHealthIndicator
	wave   *WaveIndicator
}

func NewHUD(font, bannerFont platform.Font, wavesToBeat int) *HUD {
	return &HUD{
		font:        font,
		bannerFont:  bannerFont,
		wavesToBeat: wavesToBeat,
		health:      NewPlayerHealthIndicator(config.ScreenWidth-160, hudMargin),
		wave:        NewWaveIndicator(config.ScreenWidth/2, hudMargin),
	}
}

func (h *HUD) Draw(r platform.Renderer, stats component.Stats, wave component.Wave) {
	score := fmt.Sprintf("SCORE %05d", stats.Score)
	r.DrawText(h.font, score, geom.Vec2{X: hudMargin, Y: hudMargin}, config.ScoreColor)

	h.health.Draw(r, h.font, stats.Health, config.StartingHealth)
	h.wave.Draw(r, h.font, wave.Number, h.wavesToBeat)

	if wave.Phase == component.WaveCooldown {
		h.drawBanner(r, wave)
	}
}

// drawBanner анонсирует следующую волну во время паузы между волнами.
func (h *HUD) drawBanner(r platform.Renderer, wave component.Wave) {
	y := float64(config.ScreenHeight)/2 - h.bannerFont.LineHeight()
	DrawCentered(r, h.bannerFont, "WAVE "+toRoman(wave.Number+1), config.ScreenWidth, y, config.WaveColor)

	countdown := fmt.Sprintf("%.1f", max(wave.Cooldown, 0))
	DrawCentered(r, h.font, countdown, config.ScreenWidth, y+h.bannerFont.LineHeight()+8, config.TextLightColor)
}
