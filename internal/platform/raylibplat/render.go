// Package raylibplat implements the platform services on top of raylib.
package raylibplat

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/platform"
	"go-space-invaders/pkg/geom"
)

const textSpacing = 1

// Texture оборачивает текстуру raylib.
type Texture struct {
	tex rl.Texture2D
}

func (t *Texture) Size() (int, int) {
	return int(t.tex.Width), int(t.tex.Height)
}

// Font: шрифт raylib и кегль, которым его рисовать.
type Font struct {
	font rl.Font
	size float32
}

func (f *Font) LineHeight() float64 { return float64(f.size) }

// Renderer рисует между BeginDrawing и EndDrawing.
type Renderer struct{}

var _ platform.Renderer = Renderer{}

func (Renderer) Clear(clr color.Color) {
	rl.ClearBackground(colorToRL(clr))
}

// DrawTexture draws at pos; rotation is in radians.
func (Renderer) DrawTexture(tex platform.Texture, pos geom.Vec2, tint color.Color, scale, rotation float64) {
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return
	}
	rl.DrawTextureEx(t.tex, rl.NewVector2(float32(pos.X), float32(pos.Y)), float32(rotation*180/math.Pi), float32(scale), colorToRL(tint))
}

func (Renderer) FillRect(r geom.Rect, clr color.Color) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H)), colorToRL(clr))
}

func (Renderer) MeasureText(font platform.Font, s string) geom.Vec2 {
	f, ok := font.(*Font)
	if !ok || f == nil {
		return geom.Vec2{}
	}
	size := rl.MeasureTextEx(f.font, s, f.size, textSpacing)
	return geom.Vec2{X: float64(size.X), Y: float64(size.Y)}
}

func (Renderer) DrawText(font platform.Font, s string, pos geom.Vec2, clr color.Color) {
	f, ok := font.(*Font)
	if !ok || f == nil {
		return
	}
	rl.DrawTextEx(f.font, s, rl.NewVector2(float32(pos.X), float32(pos.Y)), f.size, textSpacing, colorToRL(clr))
}

// Helper to convert color.Color to rl.Color
func colorToRL(c color.Color) rl.Color {
	if c == nil {
		return rl.Blank
	}
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
