package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color.
type Color uint8

// Colors used by the runner scene.
const (
	ColorDefault Color = iota
	ColorTrex
	ColorCactus
	ColorPterodactyl
	ColorGround
	ColorHUD
	ColorAlert
	ColorDim
)
