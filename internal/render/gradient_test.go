package render

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	cyan   = MustHex("#00fff7")
	violet = MustHex("#a259f7")
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestGradientAt(t *testing.T) {
	g := Gradient{
		{Offset: 0, Color: cyan, Alpha: 1},
		{Offset: 0.5, Color: cyan, Alpha: 0.5},
		{Offset: 1, Color: violet, Alpha: 0},
	}

	tests := []struct {
		name      string
		t         float64
		wantAlpha float64
		wantColor colorful.Color
	}{
		{"before first stop", -1, 1, cyan},
		{"first stop", 0, 1, cyan},
		{"inside first span", 0.25, 0.75, cyan},
		{"mid stop", 0.5, 0.5, cyan},
		{"inside second span", 0.75, 0.25, cyan.BlendRgb(violet, 0.5)},
		{"last stop", 1, 0, violet},
		{"after last stop", 2, 0, violet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, a := g.At(tt.t)
			if !near(a, tt.wantAlpha) {
				t.Errorf("alpha at %v = %v, want %v", tt.t, a, tt.wantAlpha)
			}
			if !c.AlmostEqualRgb(tt.wantColor) {
				t.Errorf("color at %v = %v, want %v", tt.t, c.Hex(), tt.wantColor.Hex())
			}
		})
	}
}

func TestGradientEmpty(t *testing.T) {
	_, a := Gradient(nil).At(0.5)
	if a != 0 {
		t.Errorf("empty gradient alpha = %v, want 0", a)
	}
}

func TestRadialAt(t *testing.T) {
	r := Radial{CX: 10, CY: 10, R0: 0, R1: 4, Stops: Gradient{
		{Offset: 0, Color: cyan, Alpha: 1},
		{Offset: 1, Color: cyan, Alpha: 0},
	}}

	if _, a := r.At(10, 10); !near(a, 1) {
		t.Errorf("center alpha = %v, want 1", a)
	}
	if _, a := r.At(12, 10); !near(a, 0.5) {
		t.Errorf("half radius alpha = %v, want 0.5", a)
	}
	if _, a := r.At(30, 10); !near(a, 0) {
		t.Errorf("outside alpha = %v, want 0", a)
	}
}

func TestLinearAt(t *testing.T) {
	l := Linear{X0: 0, Y0: 0, X1: 10, Y1: 0, Stops: TwoStop(cyan, violet)}

	if c, _ := l.At(0, 5); !c.AlmostEqualRgb(cyan) {
		t.Errorf("start color = %v, want %v", c.Hex(), cyan.Hex())
	}
	if c, _ := l.At(10, -3); !c.AlmostEqualRgb(violet) {
		t.Errorf("end color = %v, want %v", c.Hex(), violet.Hex())
	}
	if c, _ := l.At(5, 0); !c.AlmostEqualRgb(cyan.BlendRgb(violet, 0.5)) {
		t.Errorf("midpoint color = %v", c.Hex())
	}

	degenerate := Linear{X0: 1, Y0: 1, X1: 1, Y1: 1, Stops: TwoStop(cyan, violet)}
	if c, _ := degenerate.At(4, 4); !c.AlmostEqualRgb(cyan) {
		t.Errorf("degenerate gradient color = %v, want start color", c.Hex())
	}
}

func TestMustHex(t *testing.T) {
	if got := MustHex("#a259f7"); !got.AlmostEqualRgb(violet) || got.Hex() != "#a259f7" {
		t.Errorf("MustHex = %s, want #a259f7", got.Hex())
	}

	defer func() {
		if recover() == nil {
			t.Error("MustHex accepted a malformed color")
		}
	}()
	MustHex("not-a-color")
}
