package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go-space-invaders/internal/config"
)

func TestBuiltinSprites(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{config.TextureShip, 52, 32},
		{config.TextureBullet, 8, 24},
		{config.TextureEnemy, 44, 32},
	}
	c := NewCatalog("")
	for _, tt := range tests {
		img, err := c.Image(tt.name)
		if err != nil {
			t.Fatalf("Image(%q): %v", tt.name, err)
		}
		if b := img.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
			t.Errorf("%s is %dx%d, want %dx%d", tt.name, b.Dx(), b.Dy(), tt.w, tt.h)
		}
	}
}

func TestRasterizeTransparency(t *testing.T) {
	img := rasterize([]string{"#.", ".+"})
	if _, _, _, a := img.At(0, 0).RGBA(); a == 0 {
		t.Error("'#' should be opaque")
	}
	if _, _, _, a := img.At(PixelScale, 0).RGBA(); a != 0 {
		t.Error("'.' should be transparent")
	}
	if got := img.RGBAAt(PixelScale, PixelScale); got.R != 170 {
		t.Errorf("'+' = %v, want half tone", got)
	}
}

func TestUnknownSprite(t *testing.T) {
	if _, err := NewCatalog("").Image("mothership"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestOverrideAndCleanup(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, config.TextureEnemy+".png"), 10, 6)

	c := NewCatalog(dir)
	img, err := c.Image(config.TextureEnemy)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 6 {
		t.Fatalf("override not used: %v", b)
	}

	writePNG(t, filepath.Join(dir, config.TextureEnemy+".png"), 20, 12)
	if img, _ := c.Image(config.TextureEnemy); img.Bounds().Dx() != 10 {
		t.Error("cached image was not reused")
	}
	c.Cleanup()
	if img, _ := c.Image(config.TextureEnemy); img.Bounds().Dx() != 20 {
		t.Error("Cleanup did not drop the cache")
	}

	// остальные спрайты встроенные
	if img, err := c.Image(config.TextureShip); err != nil || img.Bounds().Dx() != 52 {
		t.Errorf("ship = %v, %v", img, err)
	}
}

func TestBrokenOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.TextureShip+".png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewCatalog(dir).Image(config.TextureShip); err == nil {
		t.Fatal("expected a decode error")
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}
