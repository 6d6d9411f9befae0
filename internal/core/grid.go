package core

// Grid is the boolean world map. A true cell is a wall (filled), a false
// cell is open space. Cells are stored in row-major order: index = y*w + x.
//
// Out-of-bounds access is a silent no-op by contract: Get reports absence,
// Set and Toggle do nothing. Camera-follow and walk-carving arithmetic rely
// on this, so callers never need bounds checks of their own. Coordinates
// never wrap.
type Grid struct {
	w, h    int
	cells   []bool
	scratch []bool // Next-generation buffer for StepLife
}

// NewGrid creates an all-open grid with fixed dimensions. The dimensions
// never change for the lifetime of the grid.
func NewGrid(w, h int) *Grid {
	return &Grid{
		w:       w,
		h:       h,
		cells:   make([]bool, w*h),
		scratch: make([]bool, w*h),
	}
}

// Width returns the world width in cells.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the world height in cells.
func (g *Grid) Height() int {
	return g.h
}

// Bounds returns the world rectangle at origin (0, 0).
func (g *Grid) Bounds() Rect {
	return Rect{W: g.w, H: g.h}
}

func (g *Grid) index(x, y int) int {
	return y*g.w + x
}

// InBounds returns true if (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the cell value and whether the coordinate is in bounds.
// Out-of-bounds coordinates report (false, false) and never panic.
func (g *Grid) Get(x, y int) (bool, bool) {
	if !g.InBounds(x, y) {
		return false, false
	}
	return g.cells[g.index(x, y)], true
}

// Filled returns the cell value, treating out-of-bounds cells as open.
// This is the read the renderer and the Life step use.
func (g *Grid) Filled(x, y int) bool {
	v, _ := g.Get(x, y)
	return v
}

// Set writes a cell value. Out of bounds is a silent no-op.
func (g *Grid) Set(x, y int, v bool) {
	if g.InBounds(x, y) {
		g.cells[g.index(x, y)] = v
	}
}

// Toggle inverts a cell. Out of bounds is a silent no-op.
func (g *Grid) Toggle(x, y int) {
	if g.InBounds(x, y) {
		i := g.index(x, y)
		g.cells[i] = !g.cells[i]
	}
}

// Fill sets every cell to v in one pass.
func (g *Grid) Fill(v bool) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clear opens every cell.
func (g *Grid) Clear() {
	g.Fill(false)
}

// FilledCount returns the number of filled (wall) cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// OpenCount returns the number of open (non-wall) cells.
func (g *Grid) OpenCount() int {
	return g.w*g.h - g.FilledCount()
}

// Cells exposes the current generation for checksumming and tests.
// The slice must not be mutated by callers.
func (g *Grid) Cells() []bool {
	return g.cells
}

// Equal returns true if both grids have identical dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// StepLife advances the grid one Game-of-Life generation. Adjacency is
// bounded: cells beyond the edge count as dead and do not wrap. A live cell
// survives with exactly 2 or 3 live neighbors; a dead cell is born with
// exactly 3. The whole generation is computed against the current cells into
// the scratch buffer, then the buffers swap, so neighbor counts are never
// disturbed by in-place writes.
func (g *Grid) StepLife() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			n := g.liveNeighbors(x, y)
			alive := g.cells[g.index(x, y)]
			g.scratch[g.index(x, y)] = (alive && (n == 2 || n == 3)) || (!alive && n == 3)
		}
	}
	g.cells, g.scratch = g.scratch, g.cells
}

// liveNeighbors counts live cells among the up-to-8 neighbors of (x, y).
func (g *Grid) liveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Filled(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}
