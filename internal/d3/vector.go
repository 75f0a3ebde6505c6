package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func Elem(sides float64) r3.Vec {
	return r3.Vec{X: sides, Y: sides, Z: sides}
}

func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// FromR2 converts a meridian-plane point (X=radius, Y=elevation) to a world
// point on the +X half plane.
func FromR2(v r2.Vec) r3.Vec {
	return r3.Vec{X: v.X, Z: v.Y}
}

// Radial projects a world point onto the meridian plane of the Z axis:
// X becomes the cylindrical radius, Y the elevation.
func Radial(p r3.Vec) r2.Vec {
	return r2.Vec{X: math.Hypot(p.X, p.Y), Y: p.Z}
}
