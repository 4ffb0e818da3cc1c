// Package platformtest provides in-memory fakes of the platform services for tests.
package platformtest

import (
	"fmt"
	"image/color"

	"go-space-invaders/internal/platform"
	"go-space-invaders/pkg/geom"
)

// Texture is a sized texture handle.
type Texture struct {
	Name string
	W, H int
}

func (t *Texture) Size() (int, int) { return t.W, t.H }

// Font measures every glyph as Advance pixels wide.
type Font struct {
	Advance float64
	Height  float64
}

func (f *Font) LineHeight() float64 { return f.Height }

// DrawCall records one renderer call.
type DrawCall struct {
	Op    string
	Name  string
	Text  string
	Pos   geom.Vec2
	Scale float64
}

// Renderer records draw calls instead of drawing.
type Renderer struct {
	Calls []DrawCall
}

func (r *Renderer) Clear(color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: "clear"})
}

func (r *Renderer) DrawTexture(tex platform.Texture, pos geom.Vec2, _ color.Color, scale, _ float64) {
	name := ""
	if t, ok := tex.(*Texture); ok {
		name = t.Name
	}
	r.Calls = append(r.Calls, DrawCall{Op: "texture", Name: name, Pos: pos, Scale: scale})
}

func (r *Renderer) FillRect(rect geom.Rect, _ color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: "rect", Pos: geom.Vec2{X: rect.X, Y: rect.Y}})
}

func (r *Renderer) MeasureText(font platform.Font, s string) geom.Vec2 {
	f, ok := font.(*Font)
	if !ok {
		return geom.Vec2{}
	}
	return geom.Vec2{X: f.Advance * float64(len(s)), Y: f.Height}
}

func (r *Renderer) DrawText(_ platform.Font, s string, pos geom.Vec2, _ color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: "text", Text: s, Pos: pos})
}

// Count returns how many calls with op were recorded.
func (r *Renderer) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns the strings drawn so far.
func (r *Renderer) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (r *Renderer) Reset() { r.Calls = r.Calls[:0] }

// Input is a settable keyboard.
type Input struct {
	Down map[platform.Key]bool
}

func NewInput() *Input {
	return &Input{Down: make(map[platform.Key]bool)}
}

func (in *Input) IsKeyDown(k platform.Key) bool { return in.Down[k] }

// Press marks keys as held.
func (in *Input) Press(keys ...platform.Key) {
	for _, k := range keys {
		in.Down[k] = true
	}
}

// Release marks keys as up.
func (in *Input) Release(keys ...platform.Key) {
	for _, k := range keys {
		delete(in.Down, k)
	}
}

// ReleaseAll marks every key as up.
func (in *Input) ReleaseAll() {
	in.Down = make(map[platform.Key]bool)
}

// Handle is a named sound or track handle.
type Handle struct {
	Name string
}

// Audio records playback requests.
type Audio struct {
	Played      []string
	Current     platform.Track
	Playing     bool
	MusicStarts int
}

func (a *Audio) PlaySound(s platform.Sound) {
	h, ok := s.(*Handle)
	if !ok || h == nil {
		return
	}
	a.Played = append(a.Played, h.Name)
}

func (a *Audio) PlayMusic(t platform.Track) {
	a.Current = t
	a.Playing = true
	a.MusicStarts++
}

func (a *Audio) PauseMusic()          { a.Playing = false }
func (a *Audio) ResumeMusic()         { a.Playing = a.Current != nil }
func (a *Audio) IsMusicPlaying() bool { return a.Playing }

// CountPlayed returns how many times the named sound fired.
func (a *Audio) CountPlayed(name string) int {
	n := 0
	for _, p := range a.Played {
		if p == name {
			n++
		}
	}
	return n
}

// Loader hands out fakes; names listed in Missing fail to load.
type Loader struct {
	Sizes   map[string][2]int
	Missing map[string]bool
}

func (l *Loader) LoadTexture(name string) (platform.Texture, error) {
	if l.Missing[name] {
		return nil, fmt.Errorf("texture %s not found", name)
	}
	size, ok := l.Sizes[name]
	if !ok {
		size = [2]int{32, 32}
	}
	return &Texture{Name: name, W: size[0], H: size[1]}, nil
}

func (l *Loader) LoadFont(name string, size float64) (platform.Font, error) {
	if l.Missing[name] {
		return nil, fmt.Errorf("font %s not found", name)
	}
	return &Font{Advance: size / 2, Height: size}, nil
}

func (l *Loader) LoadSound(name string) (platform.Sound, error) {
	if l.Missing[name] {
		return nil, fmt.Errorf("sound %s not found", name)
	}
	return &Handle{Name: name}, nil
}

func (l *Loader) LoadTrack(name string) (platform.Track, error) {
	if l.Missing[name] {
		return nil, fmt.Errorf("track %s not found", name)
	}
	return &Handle{Name: name}, nil
}

// Library builds a library with the standard sprite sizes used in tests:
// ship 48x24, bullet 8x24 (4x12 drawn), enemy 40x32.
func Library() *platform.Library {
	l := &Loader{Sizes: map[string][2]int{
		"ship":   {48, 24},
		"bullet": {8, 24},
		"enemy":  {40, 32},
	}}
	lib, err := platform.LoadLibrary(l)
	if err != nil {
		panic(err)
	}
	return lib
}
