// Package core provides fundamental types and utilities shared by the
// simulation and its frontends. It has no external dependencies (no Bubble Tea,
// no ebiten) so game logic stays pure and testable.
package core

// Box is an axis-aligned bounding box in world units, stored as a center point
// and half extents. X is the lateral axis, Z the depth axis.
type Box struct {
	X, Z   float64 // Center
	HW, HD float64 // Half width (lateral), half depth
}

// NewBox creates a box centered on (x, z) with the given half extents.
func NewBox(x, z, hw, hd float64) Box {
	return Box{X: x, Z: z, HW: hw, HD: hd}
}

// Left returns the lateral coordinate of the left edge.
func (b Box) Left() float64 {
	return b.X - b.HW
}

// Right returns the lateral coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.HW
}

// Intersects returns true if the two boxes overlap with positive area.
// Boxes that only touch along an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	if AbsF(b.X-other.X) >= b.HW+other.HW {
		return false
	}
	if AbsF(b.Z-other.Z) >= b.HD+other.HD {
		return false
	}
	return true
}

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
