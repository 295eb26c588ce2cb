package particle

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/neon-constellation/internal/config"
	"github.com/iburimskiy/neon-constellation/internal/render"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	palette    = parsePalette(config.Palette[:])
	background = render.MustHex(config.Background)
)

func parsePalette(hexes []string) []colorful.Color {
	out := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		out[i] = render.MustHex(h)
	}
	return out
}

// Palette returns a copy of the particle colors.
func Palette() []colorful.Color {
	return append([]colorful.Color(nil), palette...)
}

// Background is the color the canvas is filled with every tick.
func Background() colorful.Color {
	return background
}

// InPalette reports whether c is one of the palette colors.
func InPalette(c colorful.Color) bool {
	for _, p := range palette {
		if p == c {
			return true
		}
	}
	return false
}

// Particle is one point of the constellation. Velocity is in units per tick.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64

	BaseColor colorful.Color
	Color     colorful.Color
}

// New returns a particle placed uniformly over vp with random velocity,
// size and palette color.
func New(rng *rand.Rand, vp Viewport) Particle {
	c := palette[rng.IntN(len(palette))]
	return Particle{
		X:         rng.Float64() * vp.Width,
		Y:         rng.Float64() * vp.Height,
		VX:        (rng.Float64()*2 - 1) * config.MaxSpeed,
		VY:        (rng.Float64()*2 - 1) * config.MaxSpeed,
		Size:      config.MinSize + rng.Float64()*(config.MaxSize-config.MinSize),
		BaseColor: c,
		Color:     c,
	}
}

// Update advances the particle one tick: move, bounce off the viewport
// edges, then step away from the pointer when it is within RepelRadius.
// Bouncing flips velocity without clamping, and only while the particle is
// still heading outward, so a particle left outside by a resize or pushed
// out by the pointer drifts back in.
func (p *Particle) Update(env *Env) {
	p.X += p.VX
	p.Y += p.VY

	vp := env.Viewport
	if (p.X < 0 && p.VX < 0) || (p.X > vp.Width && p.VX > 0) {
		p.VX = -p.VX
	}
	if (p.Y < 0 && p.VY < 0) || (p.Y > vp.Height && p.VY > 0) {
		p.VY = -p.VY
	}

	if !env.Pointer.Present {
		return
	}
	dx := p.X - env.Pointer.X
	dy := p.Y - env.Pointer.Y
	dist := math.Hypot(dx, dy)
	// A particle sitting exactly on the pointer has no direction to move in.
	if dist == 0 || dist >= config.RepelRadius {
		return
	}
	p.X += dx / dist * config.RepelStep
	p.Y += dy / dist * config.RepelStep
}

// Glow returns the radial paint used to draw the particle.
func (p *Particle) Glow() render.Radial {
	return render.Radial{
		CX: p.X,
		CY: p.Y,
		R0: config.GlowInner,
		R1: p.Size * 2,
		Stops: render.Gradient{
			{Offset: 0, Color: p.Color, Alpha: 1},
			{Offset: config.GlowMidStop, Color: p.Color, Alpha: config.GlowMidAlpha},
			{Offset: 1, Color: background, Alpha: 0},
		},
	}
}

// Draw fills the particle's disc with its glow at GlowAlpha.
func (p *Particle) Draw(s render.Surface) {
	render.WithAlpha(s, config.GlowAlpha, func() {
		s.FillCircle(p.X, p.Y, p.Size, p.Glow())
	})
}
