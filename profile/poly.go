// Package profile builds closed meridian-plane polygons for solids of
// revolution. Vertices live in the half plane r >= 0 with X the radius and
// Y the elevation; the revolution axis is the line r = 0.
package profile

import (
	"errors"
	"math"

	"github.com/MaxenceRichardCS/gbstower"
	"github.com/MaxenceRichardCS/gbstower/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

var (
	// ErrTooFewVertices rejects polygons below the 3 vertex minimum.
	ErrTooFewVertices = errors.New("profile: fewer than 3 vertices")
	// ErrNegativeRadius rejects vertices in the r < 0 half plane.
	ErrNegativeRadius = errors.New("profile: vertex with negative radius")
	// ErrSelfIntersect rejects non-simple polygons. A self-intersecting
	// profile revolves into garbage, so it is caught before revolution.
	ErrSelfIntersect = errors.New("profile: polygon is self intersecting")
	// ErrZeroArea rejects degenerate polygons with no enclosed area.
	ErrZeroArea = errors.New("profile: polygon has zero area")
)

// Segment is one directed edge of a closed profile.
type Segment struct {
	A, B r2.Vec
}

// Mid returns the segment midpoint.
func (s Segment) Mid() r2.Vec { return d2.Mid(s.A, s.B) }

// OnAxis reports whether the segment lies on the revolution axis.
func (s Segment) OnAxis() bool {
	return math.Abs(s.A.X) <= tolerance && math.Abs(s.B.X) <= tolerance
}

// P is a closed simple polygon in the meridian half plane. It implements
// gbstower.Profile with a winding number membership test.
type P struct {
	vertex []r2.Vec  // closed loop, vertex[0] repeated at the end
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	axis   []bool    // edge lies on the revolution axis
	bb     r2.Box
}

var _ gbstower.Profile = (*P)(nil)

// Closed returns the profile described by an ordered vertex loop. The loop
// is closed if the caller did not close it, normalized to counterclockwise
// winding by the sign of its area, and rejected if it is self intersecting
// or degenerate. The input slice is not modified.
func Closed(vertex []r2.Vec) (*P, error) {
	if len(vertex) < 3 {
		return nil, ErrTooFewVertices
	}
	for _, v := range vertex {
		if v.X < -tolerance {
			return nil, ErrNegativeRadius
		}
	}
	// Drop an explicit closing vertex, the loop below re-adds it.
	n := len(vertex)
	if d2.EqualWithin(vertex[0], vertex[n-1], tolerance) {
		vertex = vertex[:n-1]
		if len(vertex) < 3 {
			return nil, ErrTooFewVertices
		}
	}
	verts := append([]r2.Vec(nil), vertex...)

	s := &P{}
	s.vertex = append(s.vertex, verts...)
	s.vertex = append(s.vertex, verts[0])
	if selfIntersects(s.vertex) {
		return nil, ErrSelfIntersect
	}

	// Closure correctness is decided by the signed area, not by trusting
	// the ordering of the closing segments: zero area means the loop
	// degenerates, negative area means clockwise winding and is reversed.
	area := d2.Set(verts).SignedArea()
	if math.Abs(area) <= tolerance {
		return nil, ErrZeroArea
	}
	if area < 0 {
		for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
			verts[i], verts[j] = verts[j], verts[i]
		}
		s.vertex = s.vertex[:0]
		s.vertex = append(s.vertex, verts...)
		s.vertex = append(s.vertex, verts[0])
	}

	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)
	s.axis = make([]bool, nsegs)
	vmin := s.vertex[0]
	vmax := s.vertex[0]
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		s.vector[i] = r2.Unit(l)
		s.axis[i] = (Segment{A: s.vertex[i], B: s.vertex[i+1]}).OnAxis()
		vmin = d2.MinElem(vmin, s.vertex[i])
		vmax = d2.MaxElem(vmax, s.vertex[i])
	}
	s.bb = r2.Box{Min: vmin, Max: vmax}
	return s, nil
}

// Evaluate returns the minimum distance from p to the profile boundary,
// negative inside. Edges lying on the revolution axis close the loop for
// the membership test but are interior to the revolved body, so they do
// not contribute a boundary distance.
func (s *P) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])
	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		// t-parameter of the projection onto the line, and normal
		// distance from p to it.
		t := r2.Dot(pa, s.vector[i])
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X})

		// Distance to line segment
		if s.axis[i] {
			// Not a boundary after revolution. An on-axis p has
			// dn == 0 here, so the strict crossing tests below
			// skip the edge on their own.
		} else if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa)) // distance to vertex[0] of line
		} else if t > s.length[i] {
			dd = math.Min(dd, r2.Norm2(pb)) // distance to vertex[1] of line
		} else {
			dd = math.Min(dd, dn*dn) // normal distance to line
		}

		// Is the point in the polygon?
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y { // upward crossing
				if dn < 0 { // p is to the left of the line segment
					wn++ // up intersect
				}
			}
		} else {
			if b.Y <= p.Y { // downward crossing
				if dn > 0 { // p is to the right of the line segment
					wn-- // down intersect
				}
			}
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		// p is inside the polygon
		return -d
	}
	return d
}

// Bounds returns the bounding box of the profile.
func (s *P) Bounds() r2.Box {
	return s.bb
}

// Vertices returns the vertex loop of the profile without the repeated
// closing vertex.
func (s *P) Vertices() []r2.Vec {
	return s.vertex[:len(s.vertex)-1]
}

// Segments returns the directed edges of the profile in loop order.
func (s *P) Segments() []Segment {
	segs := make([]Segment, len(s.vertex)-1)
	for i := range segs {
		segs[i] = Segment{A: s.vertex[i], B: s.vertex[i+1]}
	}
	return segs
}

// selfIntersects reports a proper crossing between any two non-adjacent
// edges of a closed vertex loop. O(n^2), fine for the handful of edges a
// revolved section has.
func selfIntersects(loop []r2.Vec) bool {
	nsegs := len(loop) - 1
	for i := 0; i < nsegs; i++ {
		for j := i + 2; j < nsegs; j++ {
			if i == 0 && j == nsegs-1 {
				continue // first and last edge share vertex[0]
			}
			if d2.SegIntersect(loop[i], loop[i+1], loop[j], loop[j+1]) {
				return true
			}
		}
	}
	return false
}
