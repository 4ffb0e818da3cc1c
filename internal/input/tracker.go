// Package input turns level-state polling into edge-detected presses.
package input

import "go-space-invaders/internal/platform"

// Tracker хранит состояние клавиш текущего и предыдущего кадра.
// Владелец: машина состояний; Poll вызывается ровно один раз за кадр.
type Tracker struct {
	current  [platform.KeyCount]bool
	previous [platform.KeyCount]bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Poll snapshots the source for a new frame.
func (t *Tracker) Poll(src platform.Input) {
	t.previous = t.current
	for k := platform.Key(0); k < platform.KeyCount; k++ {
		t.current[k] = src.IsKeyDown(k)
	}
}

// Down reports whether the key is held this frame.
func (t *Tracker) Down(k platform.Key) bool {
	return t.valid(k) && t.current[k]
}

// Pressed reports a not-pressed -> pressed transition this frame.
func (t *Tracker) Pressed(k platform.Key) bool {
	return t.valid(k) && t.current[k] && !t.previous[k]
}

func (t *Tracker) valid(k platform.Key) bool {
	return k >= 0 && k < platform.KeyCount
}
