// internal/state/state.go
package state

import (
	"log"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/platform"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(r platform.Renderer)
	Exit()
	Kind() component.GameState
}

// StateMachine — структура для управления состояниями. Она же владеет
// трекером клавиш: опрос происходит один раз за кадр до Update состояния.
type StateMachine struct {
	current State
	input   *input.Tracker
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{input: input.NewTracker()}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
		if config.Debug && newState != nil {
			log.Printf("State %v -> %v", sm.current.Kind(), newState.Kind())
		}
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Input returns this frame's key state.
func (sm *StateMachine) Input() *input.Tracker {
	return sm.input
}

// Update опрашивает ввод и обновляет текущее состояние.
// Кнопка Back выходит из игры из любого состояния.
func (sm *StateMachine) Update(deltaTime float64, src platform.Input) {
	sm.input.Poll(src)
	if sm.input.Pressed(platform.KeyBack) {
		sm.Quit()
	}
	if sm.quit || sm.current == nil {
		return
	}
	sm.current.Update(deltaTime)
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(r platform.Renderer) {
	if sm.current != nil {
		sm.current.Draw(r)
	}
}

// Quit asks the frame driver to stop after this frame.
func (sm *StateMachine) Quit() {
	if !sm.quit {
		log.Println("Quit requested")
	}
	sm.quit = true
}

// ShouldQuit reports whether Quit has been called.
func (sm *StateMachine) ShouldQuit() bool {
	return sm.quit
}

// Shutdown exits the current state. Call once the loop has ended.
func (sm *StateMachine) Shutdown() {
	sm.SetState(nil)
}
