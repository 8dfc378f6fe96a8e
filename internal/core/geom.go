// Package core provides fundamental types and utilities for the pong platform.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
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

// Vec2 is a point or vector in world units. The world is y-up.
type Vec2 struct {
	X, Y float64
}

// V creates a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned box described by its center and full extents.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at pos with the given size.
func NewBox(pos, size Vec2) Box {
	return Box{Center: pos, Size: size}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// Overlaps reports strict overlap; touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	aMin, aMax := b.Min(), b.Max()
	bMin, bMax := o.Min(), o.Max()
	return aMin.X < bMax.X && aMax.X > bMin.X && aMin.Y < bMax.Y && aMax.Y > bMin.Y
}

// Collision names the face of the second box that the first box struck.
type Collision int

const (
	CollisionNone   Collision = iota
	CollisionLeft             // a entered through b's left face
	CollisionRight            // a entered through b's right face
	CollisionTop              // a entered through b's top face
	CollisionBottom           // a entered through b's bottom face
	CollisionInside           // a straddles no edge of b on either axis
)

// String returns a human-readable name for the collision face.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "None"
	case CollisionLeft:
		return "Left"
	case CollisionRight:
		return "Right"
	case CollisionTop:
		return "Top"
	case CollisionBottom:
		return "Bottom"
	case CollisionInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Collide tests a against b and reports which face of b was penetrated.
//
// Each axis on which a straddles exactly one edge of b yields a candidate face
// and a penetration depth. With candidates on both axes the vertical face
// (Top/Bottom) wins only when its depth is strictly smaller; an exact tie goes
// to the horizontal face (Left/Right). With no candidate on either axis the
// result is CollisionInside.
func Collide(a, b Box) Collision {
	if !a.Overlaps(b) {
		return CollisionNone
	}

	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	xSide, xDepth := CollisionNone, 0.0
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xSide, xDepth = CollisionLeft, bMin.X-aMax.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xSide, xDepth = CollisionRight, aMin.X-bMax.X
	}

	ySide, yDepth := CollisionNone, 0.0
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		ySide, yDepth = CollisionBottom, bMin.Y-aMax.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		ySide, yDepth = CollisionTop, aMin.Y-bMax.Y
	}

	switch {
	case xSide != CollisionNone && ySide != CollisionNone:
		if math.Abs(yDepth) < math.Abs(xDepth) {
			return ySide
		}
		return xSide
	case xSide != CollisionNone:
		return xSide
	case ySide != CollisionNone:
		return ySide
	default:
		return CollisionInside
	}
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
