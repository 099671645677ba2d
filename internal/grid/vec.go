// Package grid provides integer board coordinates.
package grid

import (
	"fmt"
	"math"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Vec is a signed integer board coordinate. It shares its layout with
// gruid.Point so the two convert freely.
type Vec gruid.Point

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y int) Vec { return Vec{X: x, Y: y} }

// FromPoint converts a gruid point.
func FromPoint(p gruid.Point) Vec { return Vec(p) }

// Point converts v to a gruid point.
func (v Vec) Point() gruid.Point { return gruid.Point(v) }

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec) Mul(k int) Vec { return Vec{X: v.X * k, Y: v.Y * k} }

// Div divides both components by k, truncating toward zero.
func (v Vec) Div(k int) Vec { return Vec{X: v.X / k, Y: v.Y / k} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(float64(v.X*v.X + v.Y*v.Y))
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 { return o.Sub(v).Len() }

// Less orders coordinates row-major (Y first, then X).
func (v Vec) Less(o Vec) bool {
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.X < o.X
}

func (v Vec) String() string { return fmt.Sprintf("(%d,%d)", v.X, v.Y) }

var (
	OrthoDirections = [4]Vec{
		{X: 1, Y: 0}, {X: -1, Y: 0},
		{X: 0, Y: 1}, {X: 0, Y: -1},
	}
	DiagonalDirections = [4]Vec{
		{X: 1, Y: 1}, {X: -1, Y: 1},
		{X: -1, Y: -1}, {X: 1, Y: -1},
	}
)

// Line traces the cells from a to b inclusive in max(|dx|,|dy|) steps.
// Minor-axis offsets are rounded toward a. Line(a, a) is empty.
func Line(a, b Vec) []Vec {
	d := paths.DistanceChebyshev(a.Point(), b.Point())
	if d == 0 {
		return nil
	}
	delta := b.Sub(a)
	out := make([]Vec, 0, d+1)
	for step := 0; step <= d; step++ {
		// Integer division truncates toward zero, i.e. toward a.
		out = append(out, Vec{
			X: a.X + delta.X*step/d,
			Y: a.Y + delta.Y*step/d,
		})
	}
	return out
}

// Between returns the cells of Line(a, b) strictly between a and b.
func Between(a, b Vec) []Vec {
	line := Line(a, b)
	if len(line) <= 2 {
		return nil
	}
	return line[1 : len(line)-1]
}
