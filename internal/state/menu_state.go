// internal/state/menu_state.go
package state

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/internal/ui"
)

const (
	MenuStartGame = "Start Game"
	MenuQuit      = "Quit"
)

// MenuState — главное меню
type MenuState struct {
	sm   *StateMachine
	ctx  *Context
	menu *ui.Menu
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{
		sm:   sm,
		ctx:  ctx,
		menu: ui.NewMenu(config.WindowTitle, MenuStartGame, MenuQuit),
	}
}

func (m *MenuState) Enter() {
	m.ctx.Jukebox.Play(m.ctx.Library.MenuTrack)
}

func (m *MenuState) Update(deltaTime float64) {
	m.ctx.Starfield.Update(deltaTime)
	in := m.sm.Input()

	switch {
	case in.Pressed(platform.KeyEscape):
		m.sm.Quit()
	case in.Pressed(platform.KeyUp):
		m.menu.MoveUp()
	case in.Pressed(platform.KeyDown):
		m.menu.MoveDown()
	case in.Pressed(platform.KeyEnter):
		m.activate()
	}
}

func (m *MenuState) activate() {
	switch m.menu.SelectedItem() {
	case MenuStartGame:
		m.sm.SetState(NewGameState(m.sm, m.ctx, true))
	case MenuQuit:
		m.sm.Quit()
	}
}

// Selected returns the highlighted menu item.
func (m *MenuState) Selected() string {
	return m.menu.SelectedItem()
}

func (m *MenuState) Draw(r platform.Renderer) {
	m.ctx.drawBackdrop(r)
	m.menu.Draw(r, m.ctx.Library.TitleFont, m.ctx.Library.HUDFont)
}

func (m *MenuState) Kind() component.GameState { return component.MenuState }

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
