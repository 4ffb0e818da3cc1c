// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 480
	WindowTitle  = "Space Invaders"
	MaxDeltaTime = 0.06

	PlayerSpeed        = 5.0 // пикселей за кадр
	PlayerBottomMargin = 10.0

	BulletSpeed = -8.0 // пикселей за кадр, вверх
	BulletScale = 0.5

	StartingHealth = 100
	EscapePenalty  = 10
	KillScore      = 10

	// Волны
	WavesToBeat        = 5
	WaveCooldown       = 2.0 // секунды между волнами
	SwarmBaseSpeed     = 40.0
	SwarmSpeedIncrease = 15.0
	SwarmDrop          = 20.0
	SwarmSpacingX      = 60.0
	SwarmSpacingY      = 45.0
	SwarmTopMargin     = 40.0
	MaxSwarmRows       = 6
	MaxSwarmCols       = 10

	// Текст
	TitleFontSize = 36
	HUDFontSize   = 14
	MenuItemGap   = 44

	StarCount = 90
)

// Имена ресурсов
const (
	TextureShip   = "ship"
	TextureBullet = "bullet"
	TextureEnemy  = "enemy"

	FontTitle = "title"
	FontHUD   = "hud"

	SoundLaser     = "laser"
	SoundExplosion = "explosion"
	SoundHit       = "hit"

	TrackMenu = "menu"
	TrackGame = "game"
)

// Debug включает подробные логи волн (флаг -debug)
var Debug = false

var (
	BackgroundColor   = color.RGBA{8, 8, 20, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	MenuSelectedColor = colornames.Gold
	MenuIdleColor     = colornames.Lightsteelblue
	ShipTint          = color.White
	BulletTint        = colornames.Yellow
	EnemyTint         = colornames.Limegreen
	HealthColor       = colornames.Crimson
	ScoreColor        = colornames.White
	WaveColor         = colornames.Deepskyblue
	OverlayColor      = color.RGBA{0, 0, 0, 128}
	StarColor         = colornames.Lightgray
	VictoryColor      = colornames.Gold
	DefeatColor       = colornames.Orangered
)
