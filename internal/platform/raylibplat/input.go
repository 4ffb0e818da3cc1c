package raylibplat

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/platform"
)

var keyMap = map[platform.Key][]int32{
	platform.KeyLeft:   {rl.KeyLeft},
	platform.KeyRight:  {rl.KeyRight},
	platform.KeyA:      {rl.KeyA},
	platform.KeyD:      {rl.KeyD},
	platform.KeyUp:     {rl.KeyUp, rl.KeyW},
	platform.KeyDown:   {rl.KeyDown, rl.KeyS},
	platform.KeySpace:  {rl.KeySpace},
	platform.KeyEnter:  {rl.KeyEnter, rl.KeyKpEnter},
	platform.KeyEscape: {rl.KeyEscape},
	platform.KeyP:      {rl.KeyP},
}

var padMap = map[platform.Key][]int32{
	platform.KeyLeft:  {rl.GamepadButtonLeftFaceLeft},
	platform.KeyRight: {rl.GamepadButtonLeftFaceRight},
	platform.KeyUp:    {rl.GamepadButtonLeftFaceUp},
	platform.KeyDown:  {rl.GamepadButtonLeftFaceDown},
	platform.KeySpace: {rl.GamepadButtonRightFaceDown},
	platform.KeyEnter: {rl.GamepadButtonRightFaceDown},
	platform.KeyP:     {rl.GamepadButtonMiddleRight},
	platform.KeyBack:  {rl.GamepadButtonMiddleLeft},
}

const gamepad = 0

// Input reads the keyboard and the first gamepad.
type Input struct{}

var _ platform.Input = Input{}

func (Input) IsKeyDown(k platform.Key) bool {
	for _, key := range keyMap[k] {
		if rl.IsKeyDown(key) {
			return true
		}
	}
	if !rl.IsGamepadAvailable(gamepad) {
		return false
	}
	for _, b := range padMap[k] {
		if rl.IsGamepadButtonDown(gamepad, b) {
			return true
		}
	}
	return false
}
