package particle

import (
	"math"

	"github.com/iburimskiy/neon-constellation/internal/config"
	"github.com/iburimskiy/neon-constellation/internal/render"
)

// Link is a pair of particles close enough to be joined, I < J.
type Link struct {
	I, J     int
	Distance float64
	Alpha    float64
}

// LinkAlpha is the stroke opacity for a pair at distance d: brighter when
// closer, from LinkAlphaBase+LinkAlphaSpan down to LinkAlphaBase.
func LinkAlpha(d float64) float64 {
	return config.LinkAlphaBase + config.LinkAlphaSpan*(1-d/config.LinkDistance)
}

// Links appends to dst every pair i < j closer than LinkDistance, in pair
// order. All n*(n-1)/2 pairs are checked.
func Links(ps []Particle, dst []Link) []Link {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if d < config.LinkDistance {
				dst = append(dst, Link{I: i, J: j, Distance: d, Alpha: LinkAlpha(d)})
			}
		}
	}
	return dst
}

// Connector draws the links between particles. It reuses its link buffer
// across ticks.
type Connector struct {
	links []Link
}

// Render strokes every link of ps onto s and returns how many were drawn.
// Alpha and blur are back to neutral after each segment.
func (c *Connector) Render(s render.Surface, ps []Particle) int {
	c.links = Links(ps, c.links[:0])
	for _, l := range c.links {
		a, b := &ps[l.I], &ps[l.J]
		paint := render.Linear{
			X0: a.X, Y0: a.Y,
			X1: b.X, Y1: b.Y,
			Stops: render.TwoStop(a.BaseColor, b.BaseColor),
		}
		render.WithGlow(s, l.Alpha, config.LinkBlur, func() {
			s.StrokeLine(a.X, a.Y, b.X, b.Y, config.LinkWidth, paint)
		})
	}
	return len(c.links)
}
