// internal/assets/catalog.go
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Расширения файлов-замен в порядке поиска.
var overrideExts = []string{".png", ".webp", ".bmp"}

// Catalog управляет загрузкой и кэшированием спрайтов. Если в каталоге
// ресурсов лежит <имя>.png (или .webp, .bmp), он заменяет встроенный спрайт.
type Catalog struct {
	dir    string
	images map[string]image.Image
}

// NewCatalog создает каталог. Пустой dir: только встроенные спрайты.
func NewCatalog(dir string) *Catalog {
	return &Catalog{
		dir:    dir,
		images: make(map[string]image.Image),
	}
}

// Image returns the sprite for name, loading it on first use.
func (c *Catalog) Image(name string) (image.Image, error) {
	if img, ok := c.images[name]; ok {
		return img, nil
	}

	img, err := c.loadOverride(name)
	if err != nil {
		return nil, err
	}
	if img == nil {
		rows, ok := patterns[name]
		if !ok {
			return nil, fmt.Errorf("unknown sprite %q", name)
		}
		img = rasterize(rows)
	}

	c.images[name] = img
	return img, nil
}

// loadOverride returns nil, nil when no override file exists.
func (c *Catalog) loadOverride(name string) (image.Image, error) {
	if c.dir == "" {
		return nil, nil
	}
	for _, ext := range overrideExts {
		path := filepath.Join(c.dir, name+ext)
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("open sprite %s: %w", path, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode sprite %s: %w", path, err)
		}
		log.Printf("Loaded sprite override %s", path)
		return img, nil
	}
	return nil, nil
}

// Cleanup forgets cached images so the next Image call reloads them.
func (c *Catalog) Cleanup() {
	for name := range c.images {
		delete(c.images, name)
	}
	log.Println("Sprite cache cleared.")
}
