// Package gnim holds the core value types and public interfaces of the
// Groebner-Nim engine: lattice points, sticks (two-point binomials), the
// family of monomial orderings, and the catalog / presenter boundaries.
package gnim

import "fmt"

// Point is a coordinate on the non-negative integer lattice.
// Points are immutable values; every operation returns a fresh Point.
type Point struct {
	X, Y int
}

// SouthwestOf reports whether pt is componentwise <= other.
// This is the domination relation reduction runs on: a head that sits
// southwest of a point can rewrite it.
func (pt Point) SouthwestOf(other Point) bool {
	return pt.X <= other.X && pt.Y <= other.Y
}

// Add returns the componentwise sum.
func (pt Point) Add(other Point) Point {
	return Point{X: pt.X + other.X, Y: pt.Y + other.Y}
}

// Sub returns the componentwise difference. Callers only subtract a point
// that is southwest of pt, so the result stays on the lattice.
func (pt Point) Sub(other Point) Point {
	return Point{X: pt.X - other.X, Y: pt.Y - other.Y}
}

// Join returns the componentwise maximum -- the lattice join, standing in
// for the LCM of two leading monomials.
func (pt Point) Join(other Point) Point {
	join := pt
	if other.X > join.X {
		join.X = other.X
	}
	if other.Y > join.Y {
		join.Y = other.Y
	}
	return join
}

func (pt Point) String() string {
	return fmt.Sprintf("(%d,%d)", pt.X, pt.Y)
}
