package snake

// maxFoodAttempts bounds rejection sampling before falling back to a scan of
// the free cells, which always terminates.
const maxFoodAttempts = 64

// spawnFood places food on a random cell the snake does not occupy. When the
// snake covers the whole board there is no food.
func (g *Game) spawnFood() {
	for i := 0; i < maxFoodAttempts; i++ {
		x, y := g.rng.Range(0, g.w), g.rng.Range(0, g.h)
		if g.occupied.At(x, y) == 0 {
			g.food = Point{X: x, Y: y}
			g.hasFood = true
			return
		}
	}

	free := make([]Point, 0, g.w*g.h-len(g.body))
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.occupied.At(x, y) == 0 {
				free = append(free, Point{X: x, Y: y})
			}
		}
	}
	if len(free) == 0 {
		g.hasFood = false
		return
	}
	g.food = free[g.rng.Range(0, len(free))]
	g.hasFood = true
}
