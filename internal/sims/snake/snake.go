// Package snake implements a single-player snake game on a toroidal board.
//
// The game advances one cell per tick. Direction requests are queued and only
// take effect on the next tick, which prevents two quick turns from reversing
// the snake into its own neck.
package snake

import (
	"slices"
	"strconv"
	"time"
	"unicode"

	"ledmatrix/internal/core"
	pcore "ledmatrix/pkg/core"
)

// Point is a board cell.
type Point struct {
	X, Y int
}

// Directions. Row 0 is the top of the matrix.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// State is the game phase.
type State int

const (
	Active State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "active"
}

// Game holds the full snake state. It is not safe for concurrent use; keys
// captured on another goroutine reach it through HandleKey on the tick loop.
type Game struct {
	cfg     Config
	pending *Config

	w, h int

	body     []Point // head first
	occupied *core.ByteGrid

	direction     Point
	nextDirection Point

	food    Point
	hasFood bool

	score    int
	interval time.Duration
	state    State

	rng *pcore.RNG
}

// New returns a game ready to play, seeded with 1. Call Reset to reseed.
func New(cfg Config) *Game {
	g := &Game{cfg: cfg, w: cfg.Width, h: cfg.Height}
	g.Reset(1)
	return g
}

// Name returns the simulation identifier.
func (g *Game) Name() string { return "snake" }

// Size returns the board dimensions.
func (g *Game) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Reset starts a new game: a one-cell snake in the middle heading right, fresh
// food, zero score and the starting speed. It works from either state.
func (g *Game) Reset(seed int64) {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	g.rng = pcore.NewRNG(seed)
	g.occupied = core.NewByteGrid(g.w, g.h)

	start := Point{X: g.w / 2, Y: g.h / 2}
	g.body = []Point{start}
	g.occupied.Set(start.X, start.Y, 1)

	g.direction = Right
	g.nextDirection = Right
	g.score = 0
	g.interval = g.cfg.Interval
	g.state = Active
	g.spawnFood()
}

// Configure queues new timing parameters for the next game.
func (g *Game) Configure(cfg map[string]string) {
	next := g.cfg.Apply(cfg)
	next.Width, next.Height = g.w, g.h
	g.pending = &next
}

// ChangeDirection queues d for the next tick. Requests for the exact opposite
// of the current direction are ignored.
func (g *Game) ChangeDirection(d Point) {
	if d.X+g.direction.X == 0 && d.Y+g.direction.Y == 0 {
		return
	}
	g.nextDirection = d
}

// Update advances the game by one tick. It does nothing once the game is over.
func (g *Game) Update() {
	if g.state == GameOver {
		return
	}
	g.direction = g.nextDirection

	head := g.body[0]
	x, y := g.occupied.Wrap(head.X+g.direction.X, head.Y+g.direction.Y)
	next := Point{X: x, Y: y}

	// The tail still counts: it has not moved out of the way yet.
	if g.occupied.At(next.X, next.Y) != 0 {
		g.state = GameOver
		return
	}

	g.body = slices.Insert(g.body, 0, next)
	g.occupied.Set(next.X, next.Y, 1)

	if g.hasFood && next == g.food {
		g.score++
		g.spawnFood()
		g.interval -= g.cfg.SpeedStep
		if g.interval < g.cfg.MinInterval {
			g.interval = g.cfg.MinInterval
		}
		return
	}

	tail := g.body[len(g.body)-1]
	g.body = g.body[:len(g.body)-1]
	g.occupied.Set(tail.X, tail.Y, 0)
}

// Step runs one tick and reports whether the game is still on.
func (g *Game) Step() bool {
	g.Update()
	return g.state == Active
}

// HandleKey maps w/a/s/d to direction requests. q and ctrl+c ask to quit.
func (g *Game) HandleKey(r rune) bool {
	switch unicode.ToLower(r) {
	case 'w':
		g.ChangeDirection(Up)
	case 'a':
		g.ChangeDirection(Left)
	case 's':
		g.ChangeDirection(Down)
	case 'd':
		g.ChangeDirection(Right)
	case 'q', 0x03:
		return true
	}
	return false
}

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration { return g.interval }

// RestartDelay returns how long the game-over screen stays up.
func (g *Game) RestartDelay() time.Duration { return g.cfg.RestartDelay }

// Outcome reports the phase and score for run logs.
func (g *Game) Outcome() string {
	return g.state.String() + ", score " + strconv.Itoa(g.score)
}

// State returns the game phase.
func (g *Game) State() State { return g.state }

// Score returns the number of food cells eaten.
func (g *Game) Score() int { return g.score }

// Body returns a copy of the snake cells, head first.
func (g *Game) Body() []Point { return slices.Clone(g.body) }

// Food returns the food cell. ok is false when the snake fills the board.
func (g *Game) Food() (p Point, ok bool) { return g.food, g.hasFood }

// Direction returns the direction applied on the last tick.
func (g *Game) Direction() Point { return g.direction }

// NextDirection returns the direction queued for the next tick.
func (g *Game) NextDirection() Point { return g.nextDirection }

// Parameters publishes the game state for the HUD and run logs.
func (g *Game) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Game",
		Params: []core.Parameter{
			core.IntParam("score", "Score", g.score),
			core.IntParam("length", "Length", len(g.body)),
			core.StringParam("interval", "Interval", g.interval.String()),
			core.StringParam("state", "State", g.state.String()),
		},
	}}}
}

var _ core.Scorer = (*Game)(nil)

func init() {
	core.Register("snake", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
