// internal/state/pause_state.go
package state

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm            *StateMachine
	ctx           *Context
	previousState State
	overlay       *ui.Overlay
}

func NewPauseState(sm *StateMachine, ctx *Context, prevState State) *PauseState {
	return &PauseState{
		sm:            sm,
		ctx:           ctx,
		previousState: prevState,
		overlay: &ui.Overlay{
			Title:      "PAUSED",
			TitleColor: config.TextLightColor,
			Lines:      []string{"P / Enter - resume", "Esc - main menu"},
		},
	}
}

func (s *PauseState) Enter() {
	s.ctx.Jukebox.Pause()
}

func (s *PauseState) Update(deltaTime float64) {
	in := s.sm.Input()
	switch {
	case in.Pressed(platform.KeyP), in.Pressed(platform.KeyEnter):
		s.sm.SetState(s.previousState)
	case in.Pressed(platform.KeyEscape):
		// Esc из паузы ведёт в меню, а не закрывает игру; закрыть можно по Esc уже из меню
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *PauseState) Draw(r platform.Renderer) {
	if s.previousState != nil {
		s.previousState.Draw(r)
	}
	s.overlay.Draw(r, s.ctx.Library.TitleFont, s.ctx.Library.HUDFont)
}

func (s *PauseState) Exit() {}

func (s *PauseState) Kind() component.GameState { return component.PausedState }
