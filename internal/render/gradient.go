package render

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop is one color stop of a gradient. Offset is in [0, 1].
type Stop struct {
	Offset float64
	Color  colorful.Color
	Alpha  float64
}

// Gradient is an ordered list of stops, sorted by Offset.
type Gradient []Stop

// At returns the color and alpha at position t. Positions outside the
// first and last stop take the color of that stop.
func (g Gradient) At(t float64) (colorful.Color, float64) {
	if len(g) == 0 {
		return colorful.Color{}, 0
	}
	if t <= g[0].Offset {
		return g[0].Color, g[0].Alpha
	}
	for i := 1; i < len(g); i++ {
		a, b := g[i-1], g[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color, b.Alpha
		}
		f := (t - a.Offset) / span
		return a.Color.BlendRgb(b.Color, f), a.Alpha + (b.Alpha-a.Alpha)*f
	}
	last := g[len(g)-1]
	return last.Color, last.Alpha
}

// Radial is a gradient between two concentric circles, like a 2-D canvas
// radial gradient with a shared center.
type Radial struct {
	CX, CY float64
	R0, R1 float64
	Stops  Gradient
}

// At returns the paint at point (x, y).
func (r Radial) At(x, y float64) (colorful.Color, float64) {
	span := r.R1 - r.R0
	if span <= 0 {
		return r.Stops.At(1)
	}
	d := math.Hypot(x-r.CX, y-r.CY)
	return r.Stops.At(clamp01((d - r.R0) / span))
}

// Linear is a gradient along the segment (X0, Y0)-(X1, Y1).
type Linear struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  Gradient
}

// At returns the paint at point (x, y), projected onto the gradient axis.
func (l Linear) At(x, y float64) (colorful.Color, float64) {
	dx, dy := l.X1-l.X0, l.Y1-l.Y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return l.Stops.At(0)
	}
	t := ((x-l.X0)*dx + (y-l.Y0)*dy) / lenSq
	return l.Stops.At(clamp01(t))
}

// MustHex parses a "#rrggbb" color and panics if it is malformed. It is
// meant for package-level color constants.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("render: bad color %q: %v", s, err))
	}
	return c
}

// TwoStop builds a gradient running from one opaque color to another.
func TwoStop(from, to colorful.Color) Gradient {
	return Gradient{
		{Offset: 0, Color: from, Alpha: 1},
		{Offset: 1, Color: to, Alpha: 1},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
