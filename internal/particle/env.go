package particle

// Viewport is the size of the drawing surface in surface units.
type Viewport struct {
	Width, Height float64
}

// Contains reports whether (x, y) lies inside the viewport, edges included.
func (v Viewport) Contains(x, y float64) bool {
	return x >= 0 && x <= v.Width && y >= 0 && y <= v.Height
}

// Pointer is the last known cursor position. Present is false when no
// pointer is over the viewport.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Move records a pointer-move event. Last write wins.
func (p *Pointer) Move(x, y float64) {
	p.X, p.Y = x, y
	p.Present = true
}

// Leave records a pointer-leave event.
func (p *Pointer) Leave() {
	*p = Pointer{}
}

// Env is the shared state every particle reads during a tick. It is written
// only by input and resize handling between ticks.
type Env struct {
	Viewport Viewport
	Pointer  Pointer
}

// Resize changes the viewport without touching any particle.
func (e *Env) Resize(width, height float64) {
	e.Viewport = Viewport{Width: width, Height: height}
}
