// Package platform describes the engine services the game core calls into.
// Backends (ebiten, raylib) implement these; the core never imports an engine.
package platform

import (
	"image/color"

	"go-space-invaders/pkg/geom"
)

// Texture: дескриптор загруженного спрайта.
type Texture interface {
	Size() (width, height int)
}

// Font: дескриптор загруженного шрифта.
type Font interface {
	// LineHeight returns the height of one line of text in pixels.
	LineHeight() float64
}

// Sound: дескриптор короткого звукового эффекта.
type Sound interface{}

// Track: дескриптор зацикленной фоновой музыки.
type Track interface{}

// Renderer draws immediately into the current frame.
type Renderer interface {
	Clear(clr color.Color)
	DrawTexture(tex Texture, pos geom.Vec2, tint color.Color, scale, rotation float64)
	FillRect(r geom.Rect, clr color.Color)
	MeasureText(font Font, s string) geom.Vec2
	DrawText(font Font, s string, pos geom.Vec2, clr color.Color)
}

// Input reports level state only; edges are derived by the caller.
type Input interface {
	IsKeyDown(key Key) bool
}

// Audio plays sounds without blocking.
type Audio interface {
	// PlaySound fires a one-shot effect. A nil sound is ignored.
	PlaySound(s Sound)
	// PlayMusic starts a looping track from the beginning.
	PlayMusic(t Track)
	PauseMusic()
	ResumeMusic()
	IsMusicPlaying() bool
}

// Loader resolves named resources to handles at startup.
type Loader interface {
	LoadTexture(name string) (Texture, error)
	LoadFont(name string, size float64) (Font, error)
	LoadSound(name string) (Sound, error)
	LoadTrack(name string) (Track, error)
}

// Key: логическая клавиша, независимая от движка.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyA
	KeyD
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
	KeyEscape
	KeyP
	// KeyBack is the platform back/cancel control (gamepad Back/Select).
	KeyBack

	KeyCount
)

var keyNames = [...]string{
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyA:      "A",
	KeyD:      "D",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeySpace:  "Space",
	KeyEnter:  "Enter",
	KeyEscape: "Escape",
	KeyP:      "P",
	KeyBack:   "Back",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Silent is an Audio that plays nothing. Used when sound is muted.
type Silent struct{}

func (Silent) PlaySound(Sound)      {}
func (Silent) PlayMusic(Track)      {}
func (Silent) PauseMusic()          {}
func (Silent) ResumeMusic()         {}
func (Silent) IsMusicPlaying() bool { return false }
