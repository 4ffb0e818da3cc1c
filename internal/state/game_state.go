// internal/state/game_state.go
package state

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/platform"
)

// GameState — идёт партия
type GameState struct {
	sm  *StateMachine
	ctx *Context
}

// NewGameState создаёт состояние игры. fresh начинает новую партию
// с первой волны; иначе продолжается текущая (выход из паузы).
func NewGameState(sm *StateMachine, ctx *Context, fresh bool) *GameState {
	if fresh {
		ctx.Game.Start()
	}
	return &GameState{sm: sm, ctx: ctx}
}

func (g *GameState) Enter() {
	g.ctx.Jukebox.Play(g.ctx.Library.GameTrack)
}

func (g *GameState) Update(deltaTime float64) {
	in := g.sm.Input()
	if in.Pressed(platform.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm, g.ctx))
		return
	}
	if in.Pressed(platform.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g.ctx, g))
		return
	}

	g.ctx.Starfield.Update(deltaTime)
	g.ctx.Game.Update(deltaTime, in)

	if g.ctx.Game.Over() {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx))
	}
}

func (g *GameState) Draw(r platform.Renderer) {
	g.ctx.drawSession(r)
}

func (g *GameState) Kind() component.GameState { return component.PlayingState }

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
