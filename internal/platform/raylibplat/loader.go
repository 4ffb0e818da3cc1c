package raylibplat

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font/gofont/goregular"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/audio"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
)

// Loader загружает ресурсы в GPU и аудиоустройство и помнит их для Close.
// Требует открытого окна и InitAudioDevice.
type Loader struct {
	catalog *assets.Catalog
	bank    *audio.Bank

	textures []rl.Texture2D
	fonts    []rl.Font
	sounds   []rl.Sound
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
	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	if tex.ID == 0 {
		return nil, fmt.Errorf("upload texture %s", name)
	}
	l.textures = append(l.textures, tex)
	return &Texture{tex: tex}, nil
}

// LoadFont отдает для HUD встроенный шрифт raylib, для остального Go Regular.
func (l *Loader) LoadFont(name string, size float64) (platform.Font, error) {
	if name == config.FontHUD {
		return &Font{font: rl.GetFontDefault(), size: float32(size)}, nil
	}
	f := rl.LoadFontFromMemory(".ttf", goregular.TTF, int32(size), nil)
	if f.Texture.ID == 0 {
		return nil, fmt.Errorf("load font %s", name)
	}
	l.fonts = append(l.fonts, f)
	return &Font{font: f, size: float32(size)}, nil
}

func (l *Loader) loadSound(name string) (rl.Sound, error) {
	pcm, err := l.bank.PCM(name)
	if err != nil {
		return rl.Sound{}, err
	}
	frames := uint32(len(pcm) / audio.Format.Width())
	wave := rl.NewWave(frames, uint32(audio.SampleRate), uint32(audio.Format.Precision*8), uint32(audio.Format.NumChannels), pcm)
	snd := rl.LoadSoundFromWave(wave)
	l.sounds = append(l.sounds, snd)
	return snd, nil
}

func (l *Loader) LoadSound(name string) (platform.Sound, error) {
	snd, err := l.loadSound(name)
	if err != nil {
		return nil, err
	}
	return &Sound{snd: snd}, nil
}

func (l *Loader) LoadTrack(name string) (platform.Track, error) {
	snd, err := l.loadSound(name)
	if err != nil {
		return nil, err
	}
	return &Track{snd: snd}, nil
}

// Close выгружает всё, что было загружено.
func (l *Loader) Close() {
	for _, t := range l.textures {
		rl.UnloadTexture(t)
	}
	for _, f := range l.fonts {
		rl.UnloadFont(f)
	}
	for _, s := range l.sounds {
		rl.UnloadSound(s)
	}
	l.textures, l.fonts, l.sounds = nil, nil, nil
	log.Println("raylib resources unloaded.")
}
