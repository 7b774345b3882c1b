package snake

import (
	"slices"
	"testing"
	"time"

	"ledmatrix/internal/render"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(DefaultConfig())
	g.Reset(7)
	return g
}

// placeBody replaces the snake with pts (head first) and parks the food off
// the path used by the test.
func placeBody(g *Game, food Point, pts ...Point) {
	g.occupied.Clear()
	g.body = slices.Clone(pts)
	for _, p := range pts {
		g.occupied.Set(p.X, p.Y, 1)
	}
	g.food = food
	g.hasFood = true
}

func TestResetStartsCentred(t *testing.T) {
	g := newTestGame(t)
	if got := g.Body(); !slices.Equal(got, []Point{{X: 5, Y: 7}}) {
		t.Fatalf("body = %v, want [(5,7)]", got)
	}
	if g.Direction() != Right || g.NextDirection() != Right {
		t.Fatalf("direction = %v, want right", g.Direction())
	}
	if g.Score() != 0 || g.State() != Active || g.Interval() != 150*time.Millisecond {
		t.Fatalf("score=%d state=%v interval=%v", g.Score(), g.State(), g.Interval())
	}
	food, ok := g.Food()
	if !ok || food == (Point{X: 5, Y: 7}) {
		t.Fatalf("food %v ok=%v placed badly", food, ok)
	}
}

func TestReverseRequestIgnored(t *testing.T) {
	g := newTestGame(t)
	g.ChangeDirection(Left)
	if g.NextDirection() != Right {
		t.Fatalf("reversal accepted: next = %v", g.NextDirection())
	}
	g.ChangeDirection(Up)
	if g.NextDirection() != Up {
		t.Fatalf("perpendicular turn rejected: next = %v", g.NextDirection())
	}
	// Checked against the applied direction, not the queued one.
	g.ChangeDirection(Left)
	if g.NextDirection() != Up {
		t.Fatalf("next = %v, want up", g.NextDirection())
	}
	g.Update()
	g.ChangeDirection(Down)
	if g.NextDirection() != Up {
		t.Fatalf("reversal after turning accepted: next = %v", g.NextDirection())
	}
}

func TestWrapsAroundRightEdge(t *testing.T) {
	g := newTestGame(t)
	placeBody(g, Point{X: 0, Y: 0}, Point{X: 5, Y: 7})
	for i := 0; i < 5; i++ {
		g.Update()
	}
	if head := g.Body()[0]; head != (Point{X: 10, Y: 7}) {
		t.Fatalf("head = %v, want (10,7)", head)
	}
	g.Update()
	if head := g.Body()[0]; head != (Point{X: 0, Y: 7}) {
		t.Fatalf("head = %v, want (0,7) after wrap", head)
	}
	if len(g.Body()) != 1 || g.State() != Active {
		t.Fatalf("length=%d state=%v", len(g.Body()), g.State())
	}
}

func TestWrapsAroundTopEdge(t *testing.T) {
	g := newTestGame(t)
	placeBody(g, Point{X: 9, Y: 9}, Point{X: 2, Y: 0})
	g.ChangeDirection(Up)
	g.Update()
	if head := g.Body()[0]; head != (Point{X: 2, Y: 13}) {
		t.Fatalf("head = %v, want (2,13)", head)
	}
}

func TestEatingGrowsAndSpeedsUp(t *testing.T) {
	g := newTestGame(t)
	placeBody(g, Point{X: 6, Y: 7}, Point{X: 5, Y: 7}, Point{X: 4, Y: 7})
	g.Update()

	if g.Score() != 1 {
		t.Fatalf("score = %d, want 1", g.Score())
	}
	body := g.Body()
	if !slices.Equal(body, []Point{{X: 6, Y: 7}, {X: 5, Y: 7}, {X: 4, Y: 7}}) {
		t.Fatalf("body = %v", body)
	}
	if g.Interval() != 145*time.Millisecond {
		t.Fatalf("interval = %v, want 145ms", g.Interval())
	}
	food, ok := g.Food()
	if !ok {
		t.Fatal("no food after eating on a mostly empty board")
	}
	if slices.Contains(body, food) {
		t.Fatalf("food %v placed on the snake %v", food, body)
	}
}

func TestIntervalFloor(t *testing.T) {
	g := newTestGame(t)
	g.interval = 52 * time.Millisecond
	placeBody(g, Point{X: 6, Y: 7}, Point{X: 5, Y: 7})
	g.Update()
	if g.Interval() != 50*time.Millisecond {
		t.Fatalf("interval = %v, want 50ms floor", g.Interval())
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(t)
	// A loop where moving up runs into the body.
	body := []Point{{X: 5, Y: 7}, {X: 6, Y: 7}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}
	placeBody(g, Point{X: 0, Y: 0}, body...)
	g.direction = Left
	g.nextDirection = Left
	g.ChangeDirection(Up)

	if g.Step() {
		t.Fatal("Step reported an active game after a collision")
	}
	if g.State() != GameOver {
		t.Fatalf("state = %v, want game over", g.State())
	}
	if !slices.Equal(g.Body(), body) {
		t.Fatalf("body changed on collision: %v", g.Body())
	}

	g.Update()
	if !slices.Equal(g.Body(), body) {
		t.Fatal("Update moved the snake after game over")
	}
}

func TestTailCellCountsAsCollision(t *testing.T) {
	g := newTestGame(t)
	// 2x2 loop: the head moves into the cell the tail occupies this tick.
	body := []Point{{X: 5, Y: 7}, {X: 6, Y: 7}, {X: 6, Y: 8}, {X: 5, Y: 8}}
	placeBody(g, Point{X: 0, Y: 0}, body...)
	g.direction = Left
	g.nextDirection = Left
	g.ChangeDirection(Down)
	g.Update()
	if g.State() != GameOver {
		t.Fatal("moving into the tail cell did not end the game")
	}
}

func TestResetAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	g.state = GameOver
	g.score = 4
	g.interval = 60 * time.Millisecond
	g.Reset(3)
	if g.State() != Active || g.Score() != 0 || g.Interval() != 150*time.Millisecond {
		t.Fatalf("state=%v score=%d interval=%v", g.State(), g.Score(), g.Interval())
	}
	if len(g.Body()) != 1 {
		t.Fatalf("length = %d after reset", len(g.Body()))
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 3, 2
	g := New(cfg)
	for seed := int64(1); seed < 50; seed++ {
		g.Reset(seed)
		placeBody(g, Point{}, Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 2, Y: 0}, Point{X: 2, Y: 1}, Point{X: 1, Y: 1})
		g.spawnFood()
		food, ok := g.Food()
		if !ok || food != (Point{X: 0, Y: 1}) {
			t.Fatalf("seed %d: food = %v ok=%v, want the only free cell", seed, food, ok)
		}
	}
}

func TestNoFoodWhenBoardFull(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 2, 1
	g := New(cfg)
	placeBody(g, Point{}, Point{X: 0, Y: 0}, Point{X: 1, Y: 0})
	g.spawnFood()
	if _, ok := g.Food(); ok {
		t.Fatal("food placed on a full board")
	}
}

func TestHandleKey(t *testing.T) {
	g := newTestGame(t)
	if g.HandleKey('W') {
		t.Fatal("w asked to quit")
	}
	if g.NextDirection() != Up {
		t.Fatalf("next = %v, want up", g.NextDirection())
	}
	g.HandleKey('x')
	if g.NextDirection() != Up {
		t.Fatal("unknown key changed direction")
	}
	if !g.HandleKey('q') || !g.HandleKey(0x03) {
		t.Fatal("q and ctrl+c should quit")
	}
}

func TestFrameColours(t *testing.T) {
	g := newTestGame(t)
	placeBody(g, Point{X: 0, Y: 0}, Point{X: 5, Y: 7}, Point{X: 4, Y: 7})
	now := time.Unix(0, 0)
	f := g.Frame(now)

	// length 2: head 200*(1-0/7), body 200*(1-1/7)
	if got := f.At(5, 7); got != (render.RGB{G: 200, B: 200}) {
		t.Fatalf("head = %+v", got)
	}
	if got := f.At(4, 7); got != (render.RGB{G: 171}) {
		t.Fatalf("body = %+v", got)
	}
	// sin(0) = 0 so the food sits at its base level.
	if got := f.At(0, 0); got != (render.RGB{R: 50}) {
		t.Fatalf("food = %+v", got)
	}
	if got := f.At(9, 9); got != render.Black {
		t.Fatalf("empty cell = %+v", got)
	}
}

func TestGameOverBlinks(t *testing.T) {
	g := newTestGame(t)
	g.state = GameOver
	on := g.Frame(time.Unix(10, 0))
	off := g.Frame(time.Unix(10, 250*int64(time.Millisecond)))
	if on.At(3, 3) != (render.RGB{R: 100}) {
		t.Fatalf("blink on = %+v", on.At(3, 3))
	}
	if off.At(3, 3) != render.Black {
		t.Fatalf("blink off = %+v", off.At(3, 3))
	}
}

func TestConfigureAppliesOnReset(t *testing.T) {
	g := newTestGame(t)
	g.Configure(map[string]string{"interval_ms": "200", "w": "40"})
	if g.Interval() != 150*time.Millisecond {
		t.Fatal("configuration applied mid-game")
	}
	g.Reset(1)
	if g.Interval() != 200*time.Millisecond || g.Size().W != 11 {
		t.Fatalf("interval=%v width=%d", g.Interval(), g.Size().W)
	}
}
