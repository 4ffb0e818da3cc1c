package ebitenplat

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/platform"
)

var keyMap = map[platform.Key][]ebiten.Key{
	platform.KeyLeft:   {ebiten.KeyArrowLeft},
	platform.KeyRight:  {ebiten.KeyArrowRight},
	platform.KeyA:      {ebiten.KeyA},
	platform.KeyD:      {ebiten.KeyD},
	platform.KeyUp:     {ebiten.KeyArrowUp, ebiten.KeyW},
	platform.KeyDown:   {ebiten.KeyArrowDown, ebiten.KeyS},
	platform.KeySpace:  {ebiten.KeySpace},
	platform.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	platform.KeyEscape: {ebiten.KeyEscape},
	platform.KeyP:      {ebiten.KeyP},
}

// Кнопки стандартного геймпада
var padMap = map[platform.Key][]ebiten.StandardGamepadButton{
	platform.KeyLeft:  {ebiten.StandardGamepadButtonLeftLeft},
	platform.KeyRight: {ebiten.StandardGamepadButtonLeftRight},
	platform.KeyUp:    {ebiten.StandardGamepadButtonLeftTop},
	platform.KeyDown:  {ebiten.StandardGamepadButtonLeftBottom},
	platform.KeySpace: {ebiten.StandardGamepadButtonRightBottom},
	platform.KeyEnter: {ebiten.StandardGamepadButtonRightBottom},
	platform.KeyP:     {ebiten.StandardGamepadButtonCenterRight},
	platform.KeyBack:  {ebiten.StandardGamepadButtonCenterLeft},
}

// Input reads the keyboard and any connected standard gamepads.
type Input struct {
	gamepads []ebiten.GamepadID
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) IsKeyDown(k platform.Key) bool {
	for _, ek := range keyMap[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}

	buttons := padMap[k]
	if len(buttons) == 0 {
		return false
	}
	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
	for _, id := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				return true
			}
		}
	}
	return false
}
