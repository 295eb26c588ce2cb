package scene

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/neon-constellation/internal/config"
	"github.com/iburimskiy/neon-constellation/internal/particle"
	"github.com/iburimskiy/neon-constellation/internal/render"
)

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Loop drives the constellation one tick at a time. The host decides when
// a tick happens (normally once per display refresh) by calling Frame;
// velocities are per tick, so apparent speed follows the refresh rate.
type Loop struct {
	field *particle.Field
	env   *particle.Env
	links particle.Connector

	state     State
	ticks     uint64
	lastLinks int
	timings   *frameTimes
	now       func() time.Time
}

// New returns an idle loop over field. env is shared with the input side.
func New(field *particle.Field, env *particle.Env) *Loop {
	return &Loop{
		field:   field,
		env:     env,
		timings: newFrameTimes(config.StatsWindow),
		now:     time.Now,
	}
}

func (l *Loop) State() State { return l.state }

// Frame runs one tick onto s unless ctx is done, and reports whether the
// host should schedule another.
func (l *Loop) Frame(ctx context.Context, s render.Surface) bool {
	if ctx.Err() != nil {
		return false
	}
	l.tick(s)
	return true
}

// Run executes at most n ticks onto s, stopping early when ctx is done.
// It returns the number of ticks executed.
func (l *Loop) Run(ctx context.Context, s render.Surface, n int) int {
	done := 0
	for done < n && l.Frame(ctx, s) {
		done++
	}
	return done
}

func (l *Loop) tick(s render.Surface) {
	start := l.now()
	l.state = Running

	vp := l.env.Viewport
	s.ClearRect(0, 0, vp.Width, vp.Height)
	s.FillRect(0, 0, vp.Width, vp.Height, particle.Background())

	l.field.Step(l.env, s)
	l.lastLinks = l.links.Render(s, l.field.Particles)

	l.ticks++
	l.timings.record(l.now().Sub(start))
}

// Restart repopulates the field over the current viewport. A non-nil rng
// replaces the field's random source first.
func (l *Loop) Restart(rng *rand.Rand) {
	if rng != nil {
		l.field.Reseed(rng)
	}
	l.field.Initialize(config.ParticleCount, l.env.Viewport)
}

// Stats is a snapshot of loop counters for the debug overlay.
type Stats struct {
	Ticks     uint64
	Particles int
	Links     int
	MeanTick  time.Duration
}

func (l *Loop) Stats() Stats {
	return Stats{
		Ticks:     l.ticks,
		Particles: l.field.Len(),
		Links:     l.lastLinks,
		MeanTick:  l.timings.mean(),
	}
}
