package state

import (
	"fmt"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/internal/ui"
)

// GameOverState показывает итог партии: победа или поражение и финальный счёт.
type GameOverState struct {
	sm      *StateMachine
	ctx     *Context
	overlay *ui.Overlay
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	stats := ctx.Game.Stats()
	title, clr := "GAME OVER", config.DefeatColor
	if ctx.Game.Victory() {
		title, clr = "VICTORY", config.VictoryColor
	}
	return &GameOverState{
		sm:  sm,
		ctx: ctx,
		overlay: &ui.Overlay{
			Title:      title,
			TitleColor: clr,
			Lines: []string{
				fmt.Sprintf("Score: %d", stats.Score),
				fmt.Sprintf("Kills: %d   Waves cleared: %d", stats.Kills, stats.WavesCleared),
				"Enter - main menu   Esc - quit",
			},
		},
	}
}

func (s *GameOverState) Enter() {
	s.ctx.Jukebox.Pause()
}

func (s *GameOverState) Update(deltaTime float64) {
	s.ctx.Starfield.Update(deltaTime)

	in := s.sm.Input()
	switch {
	case in.Pressed(platform.KeyEnter):
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	case in.Pressed(platform.KeyEscape):
		s.sm.Quit()
	}
}

// Title returns the headline shown, VICTORY or GAME OVER.
func (s *GameOverState) Title() string {
	return s.overlay.Title
}

func (s *GameOverState) Draw(r platform.Renderer) {
	s.ctx.drawSession(r)
	s.overlay.Draw(r, s.ctx.Library.TitleFont, s.ctx.Library.HUDFont)
}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Kind() component.GameState { return component.GameOverState }
