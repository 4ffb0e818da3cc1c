package ui

import (
	"image/color"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/geom"
)

const (
	starMinSpeed = 10.0
	starMaxSpeed = 60.0
)

type star struct {
	pos   geom.Vec2
	depth float64 // 0: дальняя, 1: ближняя
}

// Starfield рисует медленно ползущий вниз фон из звёзд.
type Starfield struct {
	stars         []star
	width, height float64
	rng           *utils.PRNGService
}

// NewStarfield scatters count stars; the same seed gives the same sky.
func NewStarfield(count int, width, height float64, seed int64) *Starfield {
	s := &Starfield{
		stars:  make([]star, count),
		width:  width,
		height: height,
		rng:    utils.NewPRNGService(seed),
	}
	for i := range s.stars {
		s.stars[i] = star{
			pos:   geom.Vec2{X: s.rng.Range(0, width), Y: s.rng.Range(0, height)},
			depth: s.rng.Float64(),
		}
	}
	return s
}

func (s *Starfield) Update(deltaTime float64) {
	for i := range s.stars {
		st := &s.stars[i]
		st.pos.Y += utils.Lerp(starMinSpeed, starMaxSpeed, st.depth) * deltaTime
		if st.pos.Y > s.height {
			st.pos = geom.Vec2{X: s.rng.Range(0, s.width), Y: 0}
		}
	}
}

func (s *Starfield) Draw(r platform.Renderer) {
	base := config.StarColor
	for _, st := range s.stars {
		size := 1.0
		if st.depth > 0.7 {
			size = 2
		}
		// дальние звёзды тусклее
		k := utils.Lerp(0.35, 1, st.depth)
		clr := color.RGBA{uint8(float64(base.R) * k), uint8(float64(base.G) * k), uint8(float64(base.B) * k), 255}
		r.FillRect(geom.Rect{X: st.pos.X, Y: st.pos.Y, W: size, H: size}, clr)
	}
}
