package component

// GameState — верхнеуровневое состояние игры
type GameState int

const (
	MenuState GameState = iota
	PlayingState
	PausedState
	GameOverState
)

func (s GameState) String() string {
	switch s {
	case MenuState:
		return "Menu"
	case PlayingState:
		return "Playing"
	case PausedState:
		return "Paused"
	case GameOverState:
		return "GameOver"
	}
	return "Unknown"
}
