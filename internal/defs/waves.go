package defs

import "go-space-invaders/internal/config"

// DefaultWaveSettings возвращает стандартную прогрессию: 5 волн, от сетки 3x6 до 6x10.
func DefaultWaveSettings() WaveSettings {
	return WaveSettings{
		WavesToBeat:   config.WavesToBeat,
		Cooldown:      config.WaveCooldown,
		BaseSpeed:     config.SwarmBaseSpeed,
		SpeedIncrease: config.SwarmSpeedIncrease,
		Drop:          config.SwarmDrop,
		SpacingX:      config.SwarmSpacingX,
		SpacingY:      config.SwarmSpacingY,
		TopMargin:     config.SwarmTopMargin,
		MaxRows:       config.MaxSwarmRows,
		MaxCols:       config.MaxSwarmCols,
	}
}
