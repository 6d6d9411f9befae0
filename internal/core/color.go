package core

// Color is a foreground color tag for a screen cell. The platform layer maps
// these to ANSI colors; the core only labels cells.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorCursor
	ColorHUD
	ColorBorder
	ColorDim
)
