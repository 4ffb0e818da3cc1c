// Package ebitenplat implements the platform services on top of ebiten.
package ebitenplat

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/internal/platform"
	"go-space-invaders/pkg/geom"
)

// Texture оборачивает ebiten.Image.
type Texture struct {
	img *ebiten.Image
}

func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Font: лицо шрифта text/v2 и высота строки.
type Font struct {
	face       text.Face
	lineHeight float64
}

func newFont(face text.Face) *Font {
	m := face.Metrics()
	return &Font{face: face, lineHeight: m.HAscent + m.HDescent + m.HLineGap}
}

func (f *Font) LineHeight() float64 { return f.lineHeight }

// Renderer рисует в экран текущего кадра. Target задаётся в Draw игры.
type Renderer struct {
	Target *ebiten.Image
}

var _ platform.Renderer = (*Renderer)(nil)

func (r *Renderer) Clear(clr color.Color) {
	r.Target.Fill(clr)
}

// DrawTexture draws at pos with the given scale; rotation is in radians
// around the sprite centre.
func (r *Renderer) DrawTexture(tex platform.Texture, pos geom.Vec2, tint color.Color, scale, rotation float64) {
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if rotation != 0 {
		w, h := t.Size()
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Rotate(rotation)
		op.GeoM.Translate(float64(w)/2, float64(h)/2)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(tint)
	r.Target.DrawImage(t.img, op)
}

func (r *Renderer) FillRect(rect geom.Rect, clr color.Color) {
	vector.DrawFilledRect(r.Target, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, false)
}

func (r *Renderer) MeasureText(font platform.Font, s string) geom.Vec2 {
	f, ok := font.(*Font)
	if !ok || f == nil {
		return geom.Vec2{}
	}
	w, h := text.Measure(s, f.face, f.lineHeight)
	return geom.Vec2{X: w, Y: h}
}

func (r *Renderer) DrawText(font platform.Font, s string, pos geom.Vec2, clr color.Color) {
	f, ok := font.(*Font)
	if !ok || f == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = f.lineHeight
	text.Draw(r.Target, s, f.face, op)
}
