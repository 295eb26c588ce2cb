package game

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/neon-constellation/internal/config"
	"github.com/iburimskiy/neon-constellation/internal/particle"
	"github.com/iburimskiy/neon-constellation/internal/render"
	"github.com/iburimskiy/neon-constellation/internal/scene"
)

// Game hosts the constellation inside ebiten. Update runs one tick into a
// display list, Draw replays it onto the screen.
type Game struct {
	ctx    context.Context
	cancel context.CancelFunc

	env   *particle.Env
	loop  *scene.Loop
	frame *render.Recorder

	canvas *Canvas
	input  inputTracker

	debug bool
}

// NewGame builds a populated field sized to the initial window. Cancelling
// ctx ends the game on the next Update.
func NewGame(ctx context.Context) *Game {
	ctx, cancel := context.WithCancel(ctx)
	env := &particle.Env{Viewport: particle.Viewport{
		Width:  config.WindowWidth,
		Height: config.WindowHeight,
	}}
	field := particle.NewField(newRand())

	g := &Game{
		ctx:    ctx,
		cancel: cancel,
		env:    env,
		loop:   scene.New(field, env),
		frame:  render.NewRecorder(),
		canvas: NewCanvas(),
	}
	g.loop.Restart(nil)
	return g
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.cancel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Restart(newRand())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}

	g.input.poll(g.env)

	g.frame.Reset()
	if !g.loop.Frame(g.ctx, g.frame) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	g.frame.Replay(g.canvas)

	if g.debug {
		g.drawOverlay(screen)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	st := g.loop.Stats()
	status := fmt.Sprintf("TPS %.0f  FPS %.0f  ticks %d  particles %d  links %d  tick %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), st.Ticks, st.Particles, st.Links, formatTick(st.MeanTick))
	if g.env.Pointer.Present {
		status += fmt.Sprintf("  pointer %.0f,%.0f", g.env.Pointer.X, g.env.Pointer.Y)
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout follows the window size. A resize only changes the viewport;
// particles keep their positions and bounce back in on their own.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.env.Viewport.Width || h != g.env.Viewport.Height {
		g.env.Resize(w, h)
	}
	return outsideWidth, outsideHeight
}
