package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// straightRGBA converts a color and alpha into vertex channels in [0, 1],
// not premultiplied.
func straightRGBA(c colorful.Color, alpha float64) (float32, float32, float32, float32) {
	c = c.Clamped()
	return float32(c.R), float32(c.G), float32(c.B), float32(clamp01(alpha))
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
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

// formatTick formats a tick duration in milliseconds with two decimals.
func formatTick(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
