package snake

import (
	"math"
	"time"

	"ledmatrix/internal/render"
)

const (
	blinkRate  = 4.0 // half-periods per second
	pulseSpeed = 3.0
)

var gameOverColor = render.RGB{R: 100}

// Frame renders the board at wall-clock time now. While playing, the snake
// fades from head to tail and the food pulses; after game over the whole
// matrix blinks red regardless of the tick rate.
func (g *Game) Frame(now time.Time) *render.Frame {
	f := render.NewFrame(g.w, g.h)
	t := float64(now.UnixNano()) / float64(time.Second)

	if g.state == GameOver {
		if int64(t*blinkRate)%2 == 0 {
			f.Fill(gameOverColor)
		}
		return f
	}

	n := len(g.body)
	for i, p := range g.body {
		b := uint8(200 * (1 - float64(i)/float64(n+5)))
		if i == 0 {
			f.Set(p.X, p.Y, render.RGB{G: b, B: b})
			continue
		}
		f.Set(p.X, p.Y, render.RGB{G: b})
	}

	if g.hasFood {
		pulse := uint8(math.Abs(math.Sin(t*pulseSpeed))*150 + 50)
		f.Set(g.food.X, g.food.Y, render.RGB{R: pulse})
	}
	return f
}
