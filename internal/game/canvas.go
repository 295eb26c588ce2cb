package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/neon-constellation/internal/render"
)

const (
	// Concentric rings used to shade a gradient disc.
	discRings = 4
	// Passes used to fake a shadow blur around strokes.
	glowPasses = 3
	glowAlpha  = 0.18
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas is a render.Surface drawing onto an ebiten image. Gradients are
// shaded per vertex. ShadowBlur only affects strokes.
type Canvas struct {
	render.State
	dst *ebiten.Image

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewCanvas() *Canvas {
	return &Canvas{State: render.NeutralState()}
}

// SetTarget points the canvas at the image to draw onto for this frame.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	if r.Intersect(c.dst.Bounds()) == c.dst.Bounds() {
		c.dst.Clear()
		return
	}
	if sub, ok := c.dst.SubImage(r).(*ebiten.Image); ok {
		sub.Clear()
	}
}

func (c *Canvas) FillRect(x, y, w, h float64, clr colorful.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), toNRGBA(clr, c.GlobalAlpha()), false)
}

// FillCircle draws the disc as a triangle mesh of concentric rings, each
// vertex colored by the radial paint.
func (c *Canvas) FillCircle(cx, cy, r float64, paint render.Radial) {
	if r <= 0 {
		return
	}
	segments := int(math.Max(12, math.Ceil(r*6)))
	alpha := c.GlobalAlpha()

	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	c.vertices = append(c.vertices, c.vertex(cx, cy, paint.At, alpha))
	for ring := 1; ring <= discRings; ring++ {
		rr := r * float64(ring) / discRings
		for s := 0; s < segments; s++ {
			a := 2 * math.Pi * float64(s) / float64(segments)
			c.vertices = append(c.vertices, c.vertex(cx+rr*math.Cos(a), cy+rr*math.Sin(a), paint.At, alpha))
		}
	}

	ringStart := func(ring int) uint16 { return uint16(1 + (ring-1)*segments) }
	for s := 0; s < segments; s++ {
		next := (s + 1) % segments
		inner := ringStart(1)
		c.indices = append(c.indices, 0, inner+uint16(s), inner+uint16(next))
	}
	for ring := 2; ring <= discRings; ring++ {
		in, out := ringStart(ring-1), ringStart(ring)
		for s := 0; s < segments; s++ {
			next := (s + 1) % segments
			c.indices = append(c.indices,
				in+uint16(s), out+uint16(s), out+uint16(next),
				in+uint16(s), out+uint16(next), in+uint16(next),
			)
		}
	}
	c.drawMesh()
}

// StrokeLine draws the segment with the linear paint, preceded by a few
// wider translucent passes when a shadow blur is set.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, paint render.Linear) {
	if x0 == x1 && y0 == y1 {
		return
	}
	alpha := c.GlobalAlpha()
	if blur := c.ShadowBlur(); blur > 0 {
		for pass := glowPasses; pass >= 1; pass-- {
			w := width + blur*float64(pass)/glowPasses
			c.strokeOnce(x0, y0, x1, y1, w, paint, alpha*glowAlpha)
		}
	}
	c.strokeOnce(x0, y0, x1, y1, width, paint, alpha)
}

func (c *Canvas) strokeOnce(x0, y0, x1, y1, width float64, paint render.Linear, alpha float64) {
	c.path = vector.Path{}
	c.path.MoveTo(float32(x0), float32(y0))
	c.path.LineTo(float32(x1), float32(y1))

	op := &vector.StrokeOptions{Width: float32(width)}
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], op)
	for i := range c.vertices {
		v := &c.vertices[i]
		col, a := paint.At(float64(v.DstX), float64(v.DstY))
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = straightRGBA(col, a*alpha)
	}
	c.drawMesh()
}

func (c *Canvas) vertex(x, y float64, at func(x, y float64) (colorful.Color, float64), alpha float64) ebiten.Vertex {
	col, a := at(x, y)
	r, g, b, va := straightRGBA(col, a*alpha)
	return ebiten.Vertex{
		DstX: float32(x), DstY: float32(y),
		SrcX: 1, SrcY: 1,
		ColorR: r, ColorG: g, ColorB: b, ColorA: va,
	}
}

func (c *Canvas) drawMesh() {
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}
