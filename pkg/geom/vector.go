// pkg/geom/vector.go
package geom

import "math"

// Vector is an immutable 2D vector. Every operation returns a new value.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Magnitude returns the Euclidean norm.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector of v, or the zero vector when v is zero.
func (v Vector) Normalize() Vector {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector{}
	}
	return Vector{X: v.X / mag, Y: v.Y / mag}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Subtract returns a - b. Same as a.Sub(b).
func Subtract(a, b Vector) Vector {
	return a.Sub(b)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector) float64 {
	return b.Sub(a).Magnitude()
}
