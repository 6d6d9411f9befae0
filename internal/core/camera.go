package core

// Camera holds the world-space origin of the visible viewport.
// The viewport size is owned by the caller because it tracks the rendering
// surface, not the world.
type Camera struct {
	X, Y int
}

// Follow adjusts the camera so the cursor stays inside the viewport.
// Each axis is handled independently: if the cursor is left of or above the
// viewport the origin jumps to the cursor; if it is right of or below the
// far edge the origin moves so the cursor sits exactly on that edge. The
// origin is then clamped to [0, world-view], or pinned to 0 in any axis
// where the viewport covers the whole world.
//
// A zero viewport dimension means the surface size is not known yet, so the
// whole call is a no-op.
func (c *Camera) Follow(cursorX, cursorY, viewW, viewH, worldW, worldH int) {
	if viewW <= 0 || viewH <= 0 {
		return
	}
	c.X = followAxis(c.X, cursorX, viewW, worldW)
	c.Y = followAxis(c.Y, cursorY, viewH, worldH)
}

// CenterOn places the viewport so the cursor sits at its center, clamped to
// world bounds. Used after a walk regeneration recenters the cursor.
func (c *Camera) CenterOn(cursorX, cursorY, viewW, viewH, worldW, worldH int) {
	if viewW <= 0 || viewH <= 0 {
		return
	}
	c.X = clampOrigin(cursorX-viewW/2, viewW, worldW)
	c.Y = clampOrigin(cursorY-viewH/2, viewH, worldH)
}

// Viewport returns the visible world rectangle for the given surface size,
// clamped so it never exceeds the world.
func (c Camera) Viewport(viewW, viewH, worldW, worldH int) Rect {
	return Rect{
		X: c.X,
		Y: c.Y,
		W: Min(viewW, worldW),
		H: Min(viewH, worldH),
	}
}

func followAxis(origin, cursor, view, world int) int {
	if cursor < origin {
		origin = cursor
	}
	if cursor >= origin+view {
		origin = cursor + 1 - view
	}
	return clampOrigin(origin, view, world)
}

func clampOrigin(origin, view, world int) int {
	if view >= world {
		return 0
	}
	return Clamp(origin, 0, world-view)
}
