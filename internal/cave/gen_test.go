package cave

import (
	"math"
	"testing"

	"github.com/cavern-tui/cavern/internal/core"
)

func borderSealed(g *core.Grid) bool {
	w, h := g.Width(), g.Height()
	for x := 0; x < w; x++ {
		if !g.Filled(x, 0) || !g.Filled(x, h-1) {
			return false
		}
	}
	for y := 0; y < h; y++ {
		if !g.Filled(0, y) || !g.Filled(w-1, y) {
			return false
		}
	}
	return true
}

func TestRegenRandomDeterminism(t *testing.T) {
	a := core.NewGrid(40, 30)
	b := core.NewGrid(40, 30)

	RegenRandom(a, 7, 0.45)
	RegenRandom(b, 7, 0.45)
	if !a.Equal(b) {
		t.Error("same seed, dimensions and p must produce bit-identical grids")
	}

	RegenRandom(b, 8, 0.45)
	if a.Equal(b) {
		t.Error("different seeds should produce different grids for a 40x30 world")
	}
}

func TestRegenRandomSealsBorder(t *testing.T) {
	for _, p := range []float64{0, 0.45, 1} {
		g := core.NewGrid(20, 15)
		RegenRandom(g, 3, p)
		if !borderSealed(g) {
			t.Errorf("border not fully wall with p=%v", p)
		}
	}
}

func TestRegenRandomZeroProbability(t *testing.T) {
	// p=0 must yield a fully open interior inside an all-wall border.
	g := core.NewGrid(10, 10)
	RegenRandom(g, 1, 0)

	if !borderSealed(g) {
		t.Error("border must be wall regardless of p")
	}
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			if g.Filled(x, y) {
				t.Errorf("interior cell (%d, %d) is wall with p=0", x, y)
			}
		}
	}
}

func TestDrunkWalkCarvesTarget(t *testing.T) {
	g := core.NewGrid(30, 20)
	ratio := 0.4
	GenDrunkWalk(g, 11, ratio)

	target := int(math.Round(30 * 20 * ratio))
	if g.OpenCount() < target {
		t.Errorf("carved %d cells, expected at least %d", g.OpenCount(), target)
	}
	if !borderSealed(g) {
		t.Error("drunk walk must leave the 1-cell border entirely wall")
	}
}

func TestDrunkWalkDeterminism(t *testing.T) {
	a := core.NewGrid(8, 8)
	b := core.NewGrid(8, 8)

	GenDrunkWalk(a, 1, 0.5)
	GenDrunkWalk(b, 1, 0.5)
	if !a.Equal(b) {
		t.Error("seed 1 must reproduce the exact same carved-cell set")
	}

	GenDrunkWalk(b, 2, 0.5)
	if a.Equal(b) {
		t.Error("seed 2 should carve a different set than seed 1")
	}
}

func TestDrunkWalkExtremeRatioTerminates(t *testing.T) {
	// round(w*h*ratio) exceeds the carvable interior here; the target cap
	// keeps the walk finite and it opens the whole interior.
	g := core.NewGrid(10, 10)
	GenDrunkWalk(g, 5, 0.99)

	if g.OpenCount() != 8*8 {
		t.Errorf("opened %d cells, expected the full 64-cell interior", g.OpenCount())
	}
	if !borderSealed(g) {
		t.Error("border must survive even at extreme ratios")
	}
}

func TestDrunkWalkTinyGrid(t *testing.T) {
	// No interior to carve: everything stays wall and the call returns.
	g := core.NewGrid(2, 5)
	GenDrunkWalk(g, 1, 0.5)

	if g.OpenCount() != 0 {
		t.Errorf("2-wide grid has no interior, but %d cells were opened", g.OpenCount())
	}
}
