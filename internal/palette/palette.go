package palette

import (
	"image/color"
	"time"

	"golang.org/x/exp/rand"
)

// Palette hands out random opaque colors for new bodies.
type Palette struct {
	rng *rand.Rand
}

// New returns a palette seeded with seed. Seed 0 uses a time-based seed.
func New(seed uint64) *Palette {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Palette{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a random fully opaque color.
func (p *Palette) Next() color.RGBA {
	return color.RGBA{
		R: uint8(p.rng.Intn(256)),
		G: uint8(p.rng.Intn(256)),
		B: uint8(p.rng.Intn(256)),
		A: 255,
	}
}
