package render

import "github.com/lucasb-eyer/go-colorful"

type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillCircle
	OpStrokeLine
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fill-rect"
	case OpFillCircle:
		return "fill-circle"
	case OpStrokeLine:
		return "stroke-line"
	}
	return "unknown"
}

// Op is one recorded draw call together with the drawing state that was
// active when it was issued.
type Op struct {
	Kind OpKind

	// Rect for OpClear and OpFillRect, endpoints for OpStrokeLine.
	X0, Y0, X1, Y1 float64

	Color  colorful.Color // OpFillRect
	Radius float64        // OpFillCircle
	Width  float64        // OpStrokeLine
	Radial Radial
	Linear Linear

	Alpha float64
	Blur  float64
}

// Recorder is a Surface that keeps a display list instead of drawing.
// The game host records a tick into it and replays the list onto the
// screen; tests inspect Ops directly.
type Recorder struct {
	State
	Ops []Op
}

func NewRecorder() *Recorder {
	return &Recorder{State: NeutralState()}
}

// Reset drops recorded ops and restores neutral state, keeping capacity.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.State = NeutralState()
}

func (r *Recorder) push(op Op) {
	op.Alpha = r.alpha
	op.Blur = r.blur
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.push(Op{Kind: OpClear, X0: x, Y0: y, X1: x + w, Y1: y + h})
}

func (r *Recorder) FillRect(x, y, w, h float64, c colorful.Color) {
	r.push(Op{Kind: OpFillRect, X0: x, Y0: y, X1: x + w, Y1: y + h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, paint Radial) {
	r.push(Op{Kind: OpFillCircle, X0: cx, Y0: cy, Radius: radius, Radial: paint})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, paint Linear) {
	r.push(Op{Kind: OpStrokeLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Linear: paint})
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Replay issues the recorded ops onto dst in order, applying each op's
// drawing state, and leaves dst in neutral state.
func (r *Recorder) Replay(dst Surface) {
	defer func() {
		dst.SetGlobalAlpha(1)
		dst.SetShadowBlur(0)
	}()
	for _, op := range r.Ops {
		dst.SetGlobalAlpha(op.Alpha)
		dst.SetShadowBlur(op.Blur)
		switch op.Kind {
		case OpClear:
			dst.ClearRect(op.X0, op.Y0, op.X1-op.X0, op.Y1-op.Y0)
		case OpFillRect:
			dst.FillRect(op.X0, op.Y0, op.X1-op.X0, op.Y1-op.Y0, op.Color)
		case OpFillCircle:
			dst.FillCircle(op.X0, op.Y0, op.Radius, op.Radial)
		case OpStrokeLine:
			dst.StrokeLine(op.X0, op.Y0, op.X1, op.Y1, op.Width, op.Linear)
		}
	}
}
