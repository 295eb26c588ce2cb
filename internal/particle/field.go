package particle

import (
	"math/rand/v2"

	"github.com/iburimskiy/neon-constellation/internal/render"
)

// Field is the ordered set of particles making up the constellation.
type Field struct {
	Particles []Particle
	rng       *rand.Rand
}

// NewField returns an empty field drawing randomness from rng.
func NewField(rng *rand.Rand) *Field {
	return &Field{rng: rng}
}

// Initialize replaces the field's contents with count fresh particles
// spread over vp.
func (f *Field) Initialize(count int, vp Viewport) {
	f.Particles = f.Particles[:0]
	for i := 0; i < count; i++ {
		f.Particles = append(f.Particles, New(f.rng, vp))
	}
}

// Reseed swaps the random source used by the next Initialize.
func (f *Field) Reseed(rng *rand.Rand) {
	f.rng = rng
}

func (f *Field) Len() int { return len(f.Particles) }

// Step updates then draws every particle in field order.
func (f *Field) Step(env *Env, s render.Surface) {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Update(env)
		p.Draw(s)
	}
}
