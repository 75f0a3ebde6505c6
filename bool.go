package gbstower

import (
	"math"
	"strconv"

	"github.com/MaxenceRichardCS/gbstower/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// union is a union of Solids.
type union struct {
	sdf []Solid
	bb  r3.Box
}

// Union returns the union of two or more Solids. The member solids are
// retained and remain addressable through Members, so boundaries interior
// to the union (where two members touch) can still be probed after the
// merge. This mirrors a boolean merge with kept intersections: the result
// is one body, the seams between its constituents are not lost.
func Union(sdf ...Solid) Solid {
	if len(sdf) < 2 {
		panic("union requires at least 2 solids")
	}
	s := union{sdf: sdf}
	for i, x := range s.sdf {
		if x == nil {
			panic("nil solid argument (" + strconv.Itoa(i) + ") to Union")
		}
	}
	bb := d3.Box(s.sdf[0].Bounds())
	for _, x := range s.sdf[1:] {
		bb = bb.Extend(d3.Box(x.Bounds()))
	}
	s.bb = r3.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to the union.
func (s *union) Evaluate(p r3.Vec) float64 {
	d := s.sdf[0].Evaluate(p)
	for _, x := range s.sdf[1:] {
		d = math.Min(d, x.Evaluate(p))
	}
	return d
}

// Bounds returns the bounding box of the union.
func (s *union) Bounds() r3.Box {
	return s.bb
}

// Members returns the constituent solids of a union, or nil if s is not a
// union. Internal seam probes use the members: a point on the boundary of
// a member but inside the union lies on a retained internal interface.
func Members(s Solid) []Solid {
	u, ok := s.(*union)
	if !ok {
		return nil
	}
	return u.sdf
}

// difference is the difference of two Solids, s0 - s1.
type difference struct {
	s0 Solid
	s1 Solid
	bb r3.Box
}

// Difference returns the boolean cut s0 - s1. The cutting solid s1 is
// consumed; only the cavity boundary it leaves behind remains observable
// on the result.
func Difference(s0, s1 Solid) Solid {
	if s0 == nil || s1 == nil {
		panic("nil argument to Difference")
	}
	return &difference{s0: s0, s1: s1, bb: s0.Bounds()}
}

// Evaluate returns the minimum distance to the difference.
func (s *difference) Evaluate(p r3.Vec) float64 {
	return math.Max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

// Bounds returns the bounding box of the difference.
func (s *difference) Bounds() r3.Box {
	return s.bb
}

// intersection is the intersection of two Solids.
type intersection struct {
	s0 Solid
	s1 Solid
	bb r3.Box
}

// Intersect returns the boolean intersection of two Solids.
func Intersect(s0, s1 Solid) Solid {
	if s0 == nil || s1 == nil {
		panic("nil argument to Intersect")
	}
	bb0 := d3.Box(s0.Bounds())
	bb1 := d3.Box(s1.Bounds())
	bb := r3.Box{
		Min: d3.MaxElem(bb0.Min, bb1.Min),
		Max: d3.MinElem(bb0.Max, bb1.Max),
	}
	return &intersection{s0: s0, s1: s1, bb: bb}
}

// Evaluate returns the minimum distance to the intersection.
func (s *intersection) Evaluate(p r3.Vec) float64 {
	return math.Max(s.s0.Evaluate(p), s.s1.Evaluate(p))
}

// Bounds returns the bounding box of the intersection.
func (s *intersection) Bounds() r3.Box {
	return s.bb
}
