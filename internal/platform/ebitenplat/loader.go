package ebitenplat

import (
	"fmt"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/audio"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
)

// Loader превращает спрайты каталога и синтезированный звук в ресурсы ebiten.
type Loader struct {
	catalog *assets.Catalog
	bank    *audio.Bank
	ttf     *opentype.Font
}

var _ platform.Loader = (*Loader)(nil)

func NewLoader(catalog *assets.Catalog, bank *audio.Bank) *Loader {
	return &Loader{catalog: catalog, bank: bank}
}

func (l *Loader) LoadTexture(name string) (platform.Texture, error) {
	img, err := l.catalog.Image(name)
	if err != nil {
		return nil, err
	}
	return &Texture{img: ebiten.NewImageFromImage(img)}, nil
}

// LoadFont отдает для HUD растровый bitmapfont, для остального Go Regular нужного размера.
func (l *Loader) LoadFont(name string, size float64) (platform.Font, error) {
	if name == config.FontHUD {
		return newFont(text.NewGoXFace(bitmapfont.Face)), nil
	}

	if l.ttf == nil {
		tt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse go regular: %w", err)
		}
		l.ttf = tt
	}
	face, err := opentype.NewFace(l.ttf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %s: %w", name, err)
	}
	return newFont(text.NewGoXFace(face)), nil
}

func (l *Loader) LoadSound(name string) (platform.Sound, error) {
	pcm, err := l.bank.PCM(name)
	if err != nil {
		return nil, err
	}
	return &Sound{pcm: pcm}, nil
}

func (l *Loader) LoadTrack(name string) (platform.Track, error) {
	pcm, err := l.bank.PCM(name)
	if err != nil {
		return nil, err
	}
	return &Track{name: name, pcm: pcm}, nil
}
