package ui

import (
	"image/color"
	"strings"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/pkg/geom"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float64
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны, центрированный по X.
func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WaveColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. Волна 0 (игра не начата) не рисуется.
func (i *WaveIndicator) Draw(r platform.Renderer, font platform.Font, waveNumber, wavesToBeat int) {
	if waveNumber <= 0 {
		return
	}

	text := "WAVE " + toRoman(waveNumber)

	// Последняя волна другим цветом
	textColor := i.Color
	if waveNumber == wavesToBeat {
		textColor = config.DefeatColor
	}

	size := r.MeasureText(font, text)
	pos := geom.Vec2{X: i.X - size.X/2, Y: i.Y}
	DrawOutlined(r, font, text, pos, i.OutlineThickness, textColor, i.OutlineColor)
}
