package render

import "github.com/lucasb-eyer/go-colorful"

// Surface is the 2-D drawing target the effect renders onto. It carries a
// small amount of drawing state, global alpha and shadow blur, which applies
// to every fill and stroke until changed.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c colorful.Color)
	// FillCircle fills the disc of radius r around (cx, cy) with paint.
	FillCircle(cx, cy, r float64, paint Radial)
	StrokeLine(x0, y0, x1, y1, width float64, paint Linear)

	GlobalAlpha() float64
	SetGlobalAlpha(a float64)
	ShadowBlur() float64
	SetShadowBlur(b float64)
}

// State is the drawing state shared by Surface implementations.
// The zero value is not neutral; use NeutralState.
type State struct {
	alpha float64
	blur  float64
}

// NeutralState returns full opacity and no blur.
func NeutralState() State {
	return State{alpha: 1}
}

func (s *State) GlobalAlpha() float64 { return s.alpha }

func (s *State) SetGlobalAlpha(a float64) { s.alpha = clamp01(a) }

func (s *State) ShadowBlur() float64 { return s.blur }

func (s *State) SetShadowBlur(b float64) {
	if b < 0 {
		b = 0
	}
	s.blur = b
}

// WithGlow runs fn with the given alpha and blur, then resets the surface
// to neutral state even if fn panics.
func WithGlow(s Surface, alpha, blur float64, fn func()) {
	s.SetGlobalAlpha(alpha)
	s.SetShadowBlur(blur)
	defer func() {
		s.SetGlobalAlpha(1)
		s.SetShadowBlur(0)
	}()
	fn()
}

// WithAlpha is WithGlow without blur.
func WithAlpha(s Surface, alpha float64, fn func()) {
	WithGlow(s, alpha, 0, fn)
}
