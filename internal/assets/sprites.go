package assets

import (
	"image"
	"image/color"

	"go-space-invaders/internal/config"
)

// PixelScale задает, сколько экранных пикселей в одном пикселе шаблона.
const PixelScale = 4

// Шаблоны спрайтов. '#' яркий пиксель, '+' полутон, остальное прозрачно.
// Спрайты белые; цвет задаёт оттенок при отрисовке.
var patterns = map[string][]string{
	config.TextureShip: {
		"......#......",
		".....###.....",
		".....###.....",
		".#########...",
		"#############",
		"#############",
		"#############",
		"##+#######+##",
	},
	config.TextureBullet: {
		"##",
		"##",
		"##",
		"##",
		"++",
		"++",
	},
	config.TextureEnemy: {
		"..#.....#..",
		"...#...#...",
		"..#######..",
		".##.###.##.",
		"###########",
		"#.#######.#",
		"#.#.....#.#",
		"...##.##...",
	},
}

// rasterize builds an RGBA image from a pattern, scaled by PixelScale.
func rasterize(rows []string) *image.RGBA {
	h := len(rows)
	w := 0
	for _, row := range rows {
		w = max(w, len(row))
	}

	img := image.NewRGBA(image.Rect(0, 0, w*PixelScale, h*PixelScale))
	for y, row := range rows {
		for x, ch := range row {
			var c color.RGBA
			switch ch {
			case '#':
				c = color.RGBA{255, 255, 255, 255}
			case '+':
				c = color.RGBA{170, 170, 170, 255}
			default:
				continue
			}
			for dy := 0; dy < PixelScale; dy++ {
				for dx := 0; dx < PixelScale; dx++ {
					img.SetRGBA(x*PixelScale+dx, y*PixelScale+dy, c)
				}
			}
		}
	}
	return img
}
