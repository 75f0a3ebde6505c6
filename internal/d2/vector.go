package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Mid returns the midpoint of segment ab.
func Mid(a, b r2.Vec) r2.Vec {
	return r2.Scale(0.5, r2.Add(a, b))
}

// SegDist returns the distance from p to segment ab.
func SegDist(p, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	ap := r2.Sub(p, a)
	l2 := r2.Norm2(ab)
	if l2 == 0 {
		return r2.Norm(ap)
	}
	t := clamp(r2.Dot(ap, ab)/l2, 0, 1)
	return r2.Norm(r2.Sub(ap, r2.Scale(t, ab)))
}

// SegIntersect reports whether open segments ab and cd properly intersect.
// Shared endpoints do not count as an intersection.
func SegIntersect(a, b, c, d r2.Vec) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// cross is the z component of (b-a) x (p-a).
func cross(a, b, p r2.Vec) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// Clamp x between a and b, assume a <= b
func clamp(x, a, b float64) float64 {
	return math.Min(b, math.Max(x, a))
}

type Set []r2.Vec

// SignedArea returns twice the signed area of the closed polygon described
// by vertex. Positive means counterclockwise winding.
func (a Set) SignedArea() float64 {
	var sum float64
	n := len(a)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += a[i].X*a[j].Y - a[j].X*a[i].Y
	}
	return sum
}
