// Package gbstower implements an implicit geometric kernel for parametric
// solids of revolution. It is the modelling substrate for an offshore
// wind-turbine support structure: a gravity-based foundation topped by a
// tubular tower.
//
// Solids are represented by their signed distance field. A point evaluates
// negative inside the solid, zero on its boundary and positive outside, which
// gives the kernel its two spatial query primitives for free: point
// membership through Evaluate and box selection through Bounds.
package gbstower

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const tolerance = 1e-9

// Profile is the interface to a 2d profile in the meridian half plane.
// X is the radial coordinate (r >= 0), Y the elevation along the
// revolution axis.
type Profile interface {
	// Evaluate returns the minimum distance of the profile boundary to
	// the point. The distance is negative if the point is contained
	// within the profile.
	Evaluate(p r2.Vec) float64
	// Bounds returns the bounding box that completely contains the
	// profile.
	Bounds() r2.Box
}

// Solid is the interface to a 3d solid body. The revolution axis of all
// solids produced by this kernel is the world Z axis.
type Solid interface {
	// Evaluate takes a point in 3D space as input and returns the
	// minimum distance of the solid to the point. The distance is
	// negative if the point is contained within the solid.
	Evaluate(p r3.Vec) float64
	// Bounds returns the bounding box that completely contains the
	// solid.
	Bounds() r3.Box
}

// OnBoundary reports whether p lies on the boundary of s within tol.
func OnBoundary(s Solid, p r3.Vec, tol float64) bool {
	return math.Abs(s.Evaluate(p)) <= tol
}

// Inside reports whether p lies strictly inside s beyond tol.
func Inside(s Solid, p r3.Vec, tol float64) bool {
	return s.Evaluate(p) < -tol
}

// Clamp x between a and b, assume a <= b.
func clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
