package model

import (
	"github.com/MaxenceRichardCS/gbstower/internal/d2"
	"github.com/MaxenceRichardCS/gbstower/internal/d3"
	"github.com/MaxenceRichardCS/gbstower/profile"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ElemKind discriminates the geometric element classes of a body.
type ElemKind uint8

const (
	// KindPatch is a surface patch swept by revolving a meridian segment:
	// a cylinder wall, a cone frustum, an annulus or disc, or the axis
	// centerline itself when the segment radius is zero (beam bodies).
	KindPatch ElemKind = iota
	// KindRing is the circle swept by revolving a meridian vertex, or a
	// single point on the axis when its radius is zero.
	KindRing
)

func (k ElemKind) String() string {
	switch k {
	case KindPatch:
		return "patch"
	case KindRing:
		return "ring"
	}
	return "elem?"
}

// Elem is a geometric element resolvable by spatial probes. Coordinates
// are in the owning body's local frame.
type Elem interface {
	// Bounds returns the axis aligned bounding box of the element.
	Bounds() r3.Box
	// Contains reports whether p lies on the element within tol.
	Contains(p r3.Vec, tol float64) bool
	// Probe returns a representative point on the element, on the +X
	// meridian half plane.
	Probe() r3.Vec
}

// Patch is the revolved image of one profile segment.
type Patch struct {
	Seg profile.Segment
	// Internal marks a boundary retained from a merge: the seam where
	// two constituent solids touch. Internal patches are never part of
	// the outer skin.
	Internal bool
}

var _ Elem = Patch{}

// Bounds returns the bounding box of the revolved segment.
func (f Patch) Bounds() r3.Box {
	rmax := f.Seg.A.X
	if f.Seg.B.X > rmax {
		rmax = f.Seg.B.X
	}
	zlo, zhi := f.Seg.A.Y, f.Seg.B.Y
	if zlo > zhi {
		zlo, zhi = zhi, zlo
	}
	return r3.Box{
		Min: r3.Vec{X: -rmax, Y: -rmax, Z: zlo},
		Max: r3.Vec{X: rmax, Y: rmax, Z: zhi},
	}
}

// Contains reports whether p lies on the revolved patch within tol. The
// point is projected onto the meridian plane and tested against the
// generating segment, so the test is exact for any azimuth.
func (f Patch) Contains(p r3.Vec, tol float64) bool {
	return d2.SegDist(d3.Radial(p), f.Seg.A, f.Seg.B) <= tol
}

// Probe returns the revolved segment midpoint on the +X meridian.
func (f Patch) Probe() r3.Vec {
	return d3.FromR2(f.Seg.Mid())
}

// SplitAt splits the patch at elevation z. ok is false when z does not
// properly cut the generating segment, in which case the patch is returned
// unchanged as lo.
func (f Patch) SplitAt(z, tol float64) (lo, hi Patch, cut Ring, ok bool) {
	a, b := f.Seg.A, f.Seg.B
	zlo, zhi := a.Y, b.Y
	if zlo > zhi {
		zlo, zhi = zhi, zlo
	}
	if z <= zlo+tol || z >= zhi-tol {
		return f, Patch{}, Ring{}, false
	}
	t := (z - a.Y) / (b.Y - a.Y)
	m := r2.Vec{X: a.X + t*(b.X-a.X), Y: z}
	lo = Patch{Seg: profile.Segment{A: a, B: m}, Internal: f.Internal}
	hi = Patch{Seg: profile.Segment{A: m, B: b}, Internal: f.Internal}
	return lo, hi, Ring{R: m.X, Z: z}, true
}

// Ring is the revolved image of one profile vertex.
type Ring struct {
	R, Z float64
}

var _ Elem = Ring{}

// Bounds returns the bounding box of the circle.
func (e Ring) Bounds() r3.Box {
	return r3.Box{
		Min: r3.Vec{X: -e.R, Y: -e.R, Z: e.Z},
		Max: r3.Vec{X: e.R, Y: e.R, Z: e.Z},
	}
}

// Contains reports whether p lies on the circle within tol.
func (e Ring) Contains(p r3.Vec, tol float64) bool {
	q := d3.Radial(p)
	dr := q.X - e.R
	dz := q.Y - e.Z
	return dr*dr+dz*dz <= tol*tol
}

// Probe returns the point of the circle on the +X meridian.
func (e Ring) Probe() r3.Vec {
	return r3.Vec{X: e.R, Z: e.Z}
}

// ElemID is a typed handle to one element of one body. Handles carry the
// generation of the body they were resolved on: any partition or boolean
// bumps the generation and invalidates outstanding handles, forcing
// membership to be re-derived rather than reused stale.
type ElemID struct {
	Body BodyID
	Kind ElemKind
	Idx  int
	gen  uint32
}
