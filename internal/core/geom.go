// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// DegToRad converts degrees to radians.
const DegToRad = math.Pi / 180

// Vec2 is a position or direction in field units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Direction returns the unit vector pointing along angle (degrees).
// Angle 0 points right, 90 points down (screen coordinates).
func Direction(angle float64) Vec2 {
	rad := angle * DegToRad
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Rect represents an integer axis-aligned box in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned bounding box in field units, used for collisions.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// CenteredSquare returns the square of half-size half centered on c.
func CenteredSquare(c Vec2, half float64) RectF {
	return RectF{X: c.X - half, Y: c.Y - half, W: half * 2, H: half * 2}
}

// Intersects reports whether two boxes overlap.
// Boxes that only touch along an edge do not intersect.
func (r RectF) Intersects(o RectF) bool {
	if r.X >= o.X+o.W || o.X >= r.X+r.W {
		return false
	}
	if r.Y >= o.Y+o.H || o.Y >= r.Y+r.H {
		return false
	}
	return true
}

// WrapAxis moves v to the opposite bound once it reaches either one.
// Values strictly between lo and hi are returned unchanged.
func WrapAxis(v, lo, hi float64) float64 {
	if v <= lo {
		return hi
	}
	if v >= hi {
		return lo
	}
	return v
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
