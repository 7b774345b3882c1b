//go:build ebiten

package app

import (
	"time"

	"ledmatrix/internal/core"
	"ledmatrix/internal/display"
	"ledmatrix/internal/render"
	"ledmatrix/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a session to the ebiten.Game interface. Frames go through the
// same Renderer and strip order as on hardware and are drawn back from the
// strip buffer, so the window shows exactly what the strip would.
type Game struct {
	session  *Session
	renderer *render.Renderer
	strip    *display.Buffer
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	clock    *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	chars    []rune
}

// New constructs a Game for the provided session.
func New(session *Session, layout render.Layout, scale int) *Game {
	strip := display.NewBuffer(layout.Cells())
	sim := session.Sim()
	g := &Game{
		session:  session,
		renderer: render.NewRenderer(layout, strip),
		strip:    strip,
		painter:  render.NewGridPainter(layout),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(layout, scale),
		clock:    core.NewFixedStep(sim.Interval()),
		scale:    scale,
	}
	now := time.Now()
	session.Begin(now)
	g.show(now)
	return g
}

// Update handles per-frame logic and advances the program on its own interval.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Begin(time.Now())
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		if g.session.HandleKey(r) || r == 'q' {
			return ebiten.Termination
		}
	}

	g.overlay.Update()
	g.hud.Update()

	now := time.Now()
	if (!g.paused && g.clock.ShouldStep(now)) || g.tickOnce {
		g.session.Tick(now)
		g.clock.SetInterval(g.session.Interval())
		g.tickOnce = false
	}
	return g.show(now)
}

func (g *Game) show(now time.Time) error {
	return g.renderer.Show(g.session.Frame(now))
}

// Draw renders the current strip state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.strip.Shown(), g.scale)
	g.overlay.Draw(screen)
	w, _ := g.painter.Size()
	g.hud.Draw(screen, w*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w*g.scale + hudWidth, h * g.scale
}
