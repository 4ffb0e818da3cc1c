package state

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/platform"
	"go-space-invaders/internal/ui"
)

// Context: общие для всех состояний ресурсы.
type Context struct {
	Library   *platform.Library
	Game      interfaces.Game
	Jukebox   *Jukebox
	Starfield *ui.Starfield
	HUD       *ui.HUD
}

// NewContext wires the shared resources. seed drives the starfield; 0 picks one.
func NewContext(lib *platform.Library, audio platform.Audio, game interfaces.Game, wavesToBeat int, seed int64) *Context {
	return &Context{
		Library:   lib,
		Game:      game,
		Jukebox:   NewJukebox(audio),
		Starfield: ui.NewStarfield(config.StarCount, config.ScreenWidth, config.ScreenHeight, seed),
		HUD:       ui.NewHUD(lib.HUDFont, lib.TitleFont, wavesToBeat),
	}
}

// drawBackdrop очищает кадр и рисует звёзды.
func (c *Context) drawBackdrop(r platform.Renderer) {
	r.Clear(config.BackgroundColor)
	c.Starfield.Draw(r)
}

// drawSession рисует поле боя с HUD.
func (c *Context) drawSession(r platform.Renderer) {
	c.drawBackdrop(r)
	c.Game.Draw(r)
	c.HUD.Draw(r, c.Game.Stats(), c.Game.CurrentWave())
}
