package platform

import (
	"fmt"
	"log"

	"go-space-invaders/internal/config"
)

// Library: набор ресурсов, загруженных при старте.
type Library struct {
	Ship   Texture
	Bullet Texture
	Enemy  Texture

	TitleFont Font
	HUDFont   Font

	Laser     Sound
	Explosion Sound
	Hit       Sound

	MenuTrack Track
	GameTrack Track
}

// LoadLibrary resolves every named resource the game needs.
func LoadLibrary(l Loader) (*Library, error) {
	lib := &Library{}
	var err error

	textures := []struct {
		name string
		dst  *Texture
	}{
		{config.TextureShip, &lib.Ship},
		{config.TextureBullet, &lib.Bullet},
		{config.TextureEnemy, &lib.Enemy},
	}
	for _, t := range textures {
		if *t.dst, err = l.LoadTexture(t.name); err != nil {
			return nil, fmt.Errorf("load texture %q: %w", t.name, err)
		}
	}

	if lib.TitleFont, err = l.LoadFont(config.FontTitle, config.TitleFontSize); err != nil {
		return nil, fmt.Errorf("load font %q: %w", config.FontTitle, err)
	}
	if lib.HUDFont, err = l.LoadFont(config.FontHUD, config.HUDFontSize); err != nil {
		return nil, fmt.Errorf("load font %q: %w", config.FontHUD, err)
	}

	sounds := []struct {
		name string
		dst  *Sound
	}{
		{config.SoundLaser, &lib.Laser},
		{config.SoundExplosion, &lib.Explosion},
		{config.SoundHit, &lib.Hit},
	}
	for _, s := range sounds {
		if *s.dst, err = l.LoadSound(s.name); err != nil {
			return nil, fmt.Errorf("load sound %q: %w", s.name, err)
		}
	}

	if lib.MenuTrack, err = l.LoadTrack(config.TrackMenu); err != nil {
		return nil, fmt.Errorf("load track %q: %w", config.TrackMenu, err)
	}
	if lib.GameTrack, err = l.LoadTrack(config.TrackGame); err != nil {
		return nil, fmt.Errorf("load track %q: %w", config.TrackGame, err)
	}

	log.Println("Asset library loaded")
	return lib, nil
}
