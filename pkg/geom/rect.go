// pkg/geom/rect.go
package geom

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the closed rectangle
// [X, X+Width] x [Y, Y+Height].
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Inset shrinks the rectangle by d on every side. A negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// Clamp returns p moved to the nearest point inside the rectangle.
func (r Rect) Clamp(p Vector) Vector {
	return Vector{
		X: math.Max(r.X, math.Min(r.Right(), p.X)),
		Y: math.Max(r.Y, math.Min(r.Bottom(), p.Y)),
	}
}
