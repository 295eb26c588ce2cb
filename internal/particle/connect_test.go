package particle

import (
	"math"
	"testing"

	"github.com/iburimskiy/neon-constellation/internal/config"
	"github.com/iburimskiy/neon-constellation/internal/render"
)

func TestLinkAlpha(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want float64
	}{
		{"touching", 0, config.LinkAlphaBase + config.LinkAlphaSpan},
		{"halfway", 75, config.LinkAlphaBase + config.LinkAlphaSpan/2},
		{"just inside", 149.999, 0.12 + 0.25*(0.001/150)},
		{"threshold", 150, config.LinkAlphaBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinkAlpha(tt.d); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("LinkAlpha(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}

	prev := LinkAlpha(0)
	for d := 1.0; d < config.LinkDistance; d++ {
		a := LinkAlpha(d)
		if a >= prev {
			t.Fatalf("alpha not decreasing at %v: %v >= %v", d, a, prev)
		}
		prev = a
	}
}

func TestLinks(t *testing.T) {
	ps := []Particle{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 0, Y: 149.999},
		{X: 400, Y: 400},
		{X: 150, Y: 0},
	}

	got := Links(ps, nil)

	want := [][2]int{{0, 1}, {0, 2}, {1, 4}}
	if len(got) != len(want) {
		t.Fatalf("got %d links %+v, want %d", len(got), got, len(want))
	}
	for k, w := range want {
		if got[k].I != w[0] || got[k].J != w[1] {
			t.Errorf("link %d = (%d, %d), want (%d, %d)", k, got[k].I, got[k].J, w[0], w[1])
		}
		if got[k].I >= got[k].J {
			t.Errorf("link %d not ordered: %d >= %d", k, got[k].I, got[k].J)
		}
	}
	for _, l := range got {
		if l.I == 0 && l.J == 4 {
			t.Error("pair at exactly the threshold was linked")
		}
	}
}

func TestLinksFarApart(t *testing.T) {
	ps := []Particle{{X: 0, Y: 0}, {X: 151, Y: 0}}
	if got := Links(ps, nil); len(got) != 0 {
		t.Errorf("got %d links for particles 151 apart", len(got))
	}
}

func TestConnectorRender(t *testing.T) {
	a, b := palette[0], palette[1]
	ps := []Particle{
		{X: 10, Y: 10, BaseColor: a, Color: a},
		{X: 40, Y: 50, BaseColor: b, Color: b},
		{X: 60, Y: 10, BaseColor: a, Color: a},
	}
	r := render.NewRecorder()
	var c Connector

	n := c.Render(r, ps)

	if n != 3 || r.Count(render.OpStrokeLine) != 3 {
		t.Fatalf("drew %d links (%d strokes), want 3", n, r.Count(render.OpStrokeLine))
	}
	first := r.Ops[0]
	if first.Width != config.LinkWidth || first.Blur != config.LinkBlur {
		t.Errorf("stroke width %v blur %v, want %v and %v", first.Width, first.Blur, config.LinkWidth, config.LinkBlur)
	}
	if want := LinkAlpha(50); math.Abs(first.Alpha-want) > 1e-9 {
		t.Errorf("stroke alpha = %v, want %v", first.Alpha, want)
	}
	if c0, _ := first.Linear.At(10, 10); !c0.AlmostEqualRgb(a) {
		t.Errorf("gradient start = %v, want %v", c0.Hex(), a.Hex())
	}
	if c1, _ := first.Linear.At(40, 50); !c1.AlmostEqualRgb(b) {
		t.Errorf("gradient end = %v, want %v", c1.Hex(), b.Hex())
	}
	if r.GlobalAlpha() != 1 || r.ShadowBlur() != 0 {
		t.Errorf("state leaked: alpha=%v blur=%v", r.GlobalAlpha(), r.ShadowBlur())
	}

	// Drawing state does not leak into a particle drawn afterwards.
	ps[0].Draw(r)
	last := r.Ops[len(r.Ops)-1]
	if last.Blur != 0 || last.Alpha != config.GlowAlpha {
		t.Errorf("particle after links drawn with alpha=%v blur=%v", last.Alpha, last.Blur)
	}
}
