// Package cave implements the cave map simulation: the procedural
// generators and the mode state machine driving the world grid.
package cave

import (
	"math"
	"math/rand"

	"github.com/cavern-tui/cavern/internal/core"
)

// Default generator parameters, used when the config leaves them unset.
const (
	DefaultFillProbability = 0.45
	DefaultCarveRatio      = 0.4
)

// RegenRandom fills the grid with random walls. The outer border is always
// sealed as wall; every interior cell becomes a wall with independent
// probability p. The same seed, dimensions and p always produce a
// bit-identical grid: cells are visited in fixed row-major order and the
// source is fully determined by the seed.
func RegenRandom(g *core.Grid, seed int64, p float64) {
	rng := rand.New(rand.NewSource(seed))
	w, h := g.Width(), g.Height()

	g.Clear()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				g.Set(x, y, true)
				continue
			}
			g.Set(x, y, rng.Float64() < p)
		}
	}
}

// GenDrunkWalk carves a cave out of an all-wall grid with a biased random
// walk. The walk starts at the world center, picks a cardinal direction
// uniformly each step, moves one cell saturating at world edges, re-clamps
// to the interior (the 1-cell border stays wall forever), and opens the
// current cell if it is still a wall. It stops once round(w*h*ratio) cells
// are open, capped at the carvable interior area so the loop terminates for
// any ratio. Identical seed and ratio reproduce an identical cave.
func GenDrunkWalk(g *core.Grid, seed int64, ratio float64) {
	rng := rand.New(rand.NewSource(seed))
	w, h := g.Width(), g.Height()

	g.Fill(true)

	// Grids narrower than 3 cells have no interior to carve.
	if w < 3 || h < 3 {
		return
	}

	target := int(math.Round(float64(w*h) * ratio))
	target = core.Min(target, (w-2)*(h-2))

	x := core.Clamp(w/2, 1, w-2)
	y := core.Clamp(h/2, 1, h-2)

	opened := 0
	for opened < target {
		switch rng.Intn(4) {
		case 0:
			x = core.Clamp(x-1, 0, w-1)
		case 1:
			x = core.Clamp(x+1, 0, w-1)
		case 2:
			y = core.Clamp(y-1, 0, h-1)
		case 3:
			y = core.Clamp(y+1, 0, h-1)
		}

		x = core.Clamp(x, 1, w-2)
		y = core.Clamp(y, 1, h-2)

		if wall, _ := g.Get(x, y); wall {
			g.Set(x, y, false)
			opened++
		}
	}
}
