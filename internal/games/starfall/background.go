package starfall

import (
	perlin "github.com/aquilax/go-perlin"

	"github.com/vovakirdan/starfall/internal/core"
)

// Starfield scroll and density tuning.
const (
	bgScrollSpeed = 1.5  // rows per second
	bgScale       = 0.73 // noise frequency per cell
	bgDim         = 0.32 // noise above this draws a faint dot
	bgBright      = 0.42 // noise above this draws a bright star
)

// Background is a slowly scrolling field of distant stars drawn from
// Perlin noise. The noise is seeded, so a given seed always shows the
// same sky.
type Background struct {
	noise  *perlin.Perlin
	offset float64
}

// NewBackground creates a starfield for the seed.
func NewBackground(seed int64) *Background {
	return &Background{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// Update scrolls the field.
func (b *Background) Update(dt float64) {
	b.offset += bgScrollSpeed * dt
}

// Render draws the starfield into the field area of the camera.
func (b *Background) Render(dst *core.Screen, cam Camera) {
	for row := cam.top; row < cam.top+cam.rows; row++ {
		// Rows scroll downward, so sample further up the noise as time passes.
		ny := (float64(row-cam.top) - b.offset) * bgScale * 2
		for col := 0; col < cam.cols; col++ {
			n := b.noise.Noise2D(float64(col)*bgScale, ny)
			switch {
			case n > bgBright:
				dst.SetColored(col, row, '.', core.ColorWhite)
			case n > bgDim:
				dst.SetColored(col, row, '·', core.ColorDim)
			}
		}
	}
}
