// internal/defs/types.go
package defs

import "fmt"

// WaveSettings описывает параметры прогрессии волн.
// Все скорости: в пикселях в секунду, времена: в секундах.
type WaveSettings struct {
	WavesToBeat   int     `json:"waves_to_beat"`
	Cooldown      float64 `json:"cooldown"`
	BaseSpeed     float64 `json:"base_speed"`
	SpeedIncrease float64 `json:"speed_increase"`
	Drop          float64 `json:"drop"`
	SpacingX      float64 `json:"spacing_x"`
	SpacingY      float64 `json:"spacing_y"`
	TopMargin     float64 `json:"top_margin"`
	MaxRows       int     `json:"max_rows"`
	MaxCols       int     `json:"max_cols"`
}

// Validate проверяет, что настройки пригодны для игры.
func (s WaveSettings) Validate() error {
	switch {
	case s.WavesToBeat < 1:
		return fmt.Errorf("waves_to_beat must be at least 1, got %d", s.WavesToBeat)
	case s.Cooldown < 0:
		return fmt.Errorf("cooldown must not be negative, got %v", s.Cooldown)
	case s.BaseSpeed < 0 || s.SpeedIncrease < 0:
		return fmt.Errorf("swarm speeds must not be negative")
	case s.MaxRows < 1 || s.MaxCols < 1:
		return fmt.Errorf("grid limits must be positive, got %dx%d", s.MaxRows, s.MaxCols)
	}
	return nil
}

// Rows возвращает число рядов для волны.
func (s WaveSettings) Rows(wave int) int {
	return min(2+wave, s.MaxRows)
}

// Cols возвращает число колонок для волны.
func (s WaveSettings) Cols(wave int) int {
	return min(5+wave, s.MaxCols)
}

// Speed возвращает скорость роя для волны.
func (s WaveSettings) Speed(wave int) float64 {
	return s.BaseSpeed + float64(wave-1)*s.SpeedIncrease
}
