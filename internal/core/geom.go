// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a 2D vector in arena units.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Box is an axis-aligned rectangle described by its center and half extent.
// Half extents are never negative.
type Box struct {
	Center Vec
	Half   Vec
}

// NewBox creates a box centered at (cx, cy) with full width w and height h.
func NewBox(cx, cy, w, h float64) Box {
	return Box{
		Center: Vec{X: cx, Y: cy},
		Half:   Vec{X: w / 2, Y: h / 2},
	}
}

// BoxFromRect creates a box from a top-left corner and full size.
func BoxFromRect(x, y, w, h float64) Box {
	return NewBox(x+w/2, y+h/2, w, h)
}

// Size returns the full width and height.
func (b Box) Size() Vec {
	return b.Half.Scale(2)
}

// Area returns width * height.
func (b Box) Area() float64 {
	s := b.Size()
	return s.X * s.Y
}

// Min returns the top-left corner.
func (b Box) Min() Vec {
	return Vec{X: b.Center.X - b.Half.X, Y: b.Center.Y - b.Half.Y}
}

// Max returns the bottom-right corner.
func (b Box) Max() Vec {
	return Vec{X: b.Center.X + b.Half.X, Y: b.Center.Y + b.Half.Y}
}

// Overlaps reports whether two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()

	if bMax.X <= oMin.X || oMax.X <= bMin.X {
		return false
	}
	if bMax.Y <= oMin.Y || oMax.Y <= bMin.Y {
		return false
	}
	return true
}

// OutOfBounds reports whether the box lies entirely outside the arena
// [0, w] x [0, h]. A box whose far edge sits exactly on an arena edge is out.
func (b Box) OutOfBounds(w, h float64) bool {
	bMin, bMax := b.Min(), b.Max()
	return bMax.X <= 0 || bMax.Y <= 0 || bMin.X >= w || bMin.Y >= h
}

// Rect represents an integer cell rectangle used for screen drawing.
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

// Intersect returns the overlap of two rectangles, or an empty rectangle
// when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := Max(r.X, o.X), Max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// CellRect converts a box to the cells it covers when one cell spans
// unitsX by unitsY arena units. Any box with positive area covers at
// least one cell.
func CellRect(b Box, unitsX, unitsY float64) Rect {
	bMin, bMax := b.Min(), b.Max()

	x0 := int(math.Floor(bMin.X / unitsX))
	y0 := int(math.Floor(bMin.Y / unitsY))
	x1 := int(math.Ceil(bMax.X / unitsX))
	y1 := int(math.Ceil(bMax.Y / unitsY))

	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
