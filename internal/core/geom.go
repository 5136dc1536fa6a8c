// Package core provides fundamental types shared by the simulation and the
// terminal shell. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box in world space.
// World space is y-up: Bottom < Top.
type Box struct {
	Left, Right float64
	Bottom, Top float64
}

// CenteredBox builds a box from a horizontal center, a ground-relative bottom
// and the box dimensions.
func CenteredBox(centerX, bottom, width, height float64) Box {
	return Box{
		Left:   centerX - width/2,
		Right:  centerX + width/2,
		Bottom: bottom,
		Top:    bottom + height,
	}
}

// Overlaps reports whether two boxes share interior area.
// Intervals are open: boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.Left < other.Right && other.Left < b.Right &&
		b.Bottom < other.Top && other.Bottom < b.Top
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Top - b.Bottom
}

// Rect is an integer rectangle in screen cells, y-down.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
