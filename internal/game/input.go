package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/neon-constellation/internal/particle"
)

// pointerSample is one frame of polled pointer input. When Touching is set,
// X and Y are the first touch; otherwise they are the cursor.
type pointerSample struct {
	X, Y     int
	Focused  bool
	Touching bool
}

// inputTracker turns ebiten's polled cursor and touch state into the
// pointer-move and pointer-leave events the particles react to.
type inputTracker struct {
	lastX, lastY int
	touching     bool
	touches      []ebiten.TouchID
}

func (t *inputTracker) poll(env *particle.Env) {
	t.touches = ebiten.AppendTouchIDs(t.touches[:0])
	s := pointerSample{Focused: ebiten.IsFocused()}
	if len(t.touches) > 0 {
		s.X, s.Y = ebiten.TouchPosition(t.touches[0])
		s.Touching = true
	} else {
		s.X, s.Y = ebiten.CursorPosition()
	}
	t.apply(s, env)
}

// apply updates env.Pointer from one sample. A touch always moves the
// pointer; lifting the last finger, losing focus or leaving the viewport
// is a leave; a cursor that changed position is a move.
func (t *inputTracker) apply(s pointerSample, env *particle.Env) {
	if s.Touching {
		env.Pointer.Move(float64(s.X), float64(s.Y))
		t.touching = true
		return
	}
	if t.touching {
		t.touching = false
		env.Pointer.Leave()
		t.lastX, t.lastY = s.X, s.Y
		return
	}

	switch {
	case !s.Focused || !env.Viewport.Contains(float64(s.X), float64(s.Y)):
		if env.Pointer.Present {
			env.Pointer.Leave()
		}
	case s.X != t.lastX || s.Y != t.lastY:
		env.Pointer.Move(float64(s.X), float64(s.Y))
	}
	t.lastX, t.lastY = s.X, s.Y
}
