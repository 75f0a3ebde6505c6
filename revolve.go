package gbstower

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// revolution is a full solid of revolution about the Z axis.
type revolution struct {
	profile Profile
	bb      r3.Box
}

// Revolve returns the Solid obtained by revolving a meridian profile 360
// degrees about the Z axis. Revolve panics on a nil profile or on a profile
// extending into r < 0; partial revolutions are not part of this kernel.
func Revolve(p Profile) Solid {
	if p == nil {
		panic("nil Profile argument")
	}
	bb := p.Bounds()
	if bb.Min.X < -tolerance {
		panic("profile extends into r < 0")
	}
	rmax := bb.Max.X
	s := revolution{profile: p}
	s.bb = r3.Box{
		Min: r3.Vec{X: -rmax, Y: -rmax, Z: bb.Min.Y},
		Max: r3.Vec{X: rmax, Y: rmax, Z: bb.Max.Y},
	}
	return &s
}

// Evaluate returns the minimum distance to the solid of revolution.
func (s *revolution) Evaluate(p r3.Vec) float64 {
	q := r2.Vec{X: math.Hypot(p.X, p.Y), Y: p.Z}
	return s.profile.Evaluate(q)
}

// Bounds returns the bounding box of the solid of revolution.
func (s *revolution) Bounds() r3.Box {
	return s.bb
}

// wire is a straight centerline body on the Z axis, the 1D stand-in for a
// revolved solid when a member is modelled with beam elements.
type wire struct {
	z0, z1 float64
}

// Wire returns a line body from (0,0,z0) to (0,0,z1). Its distance field is
// the distance to the segment, so the body has zero volume and its boundary
// is the segment itself.
func Wire(z0, z1 float64) Solid {
	if z1 <= z0 {
		panic("wire requires z1 > z0")
	}
	return &wire{z0: z0, z1: z1}
}

// Evaluate returns the distance to the centerline segment.
func (s *wire) Evaluate(p r3.Vec) float64 {
	z := clamp(p.Z, s.z0, s.z1)
	return math.Sqrt(p.X*p.X + p.Y*p.Y + (p.Z-z)*(p.Z-z))
}

// Bounds returns the degenerate bounding box of the centerline.
func (s *wire) Bounds() r3.Box {
	return r3.Box{Min: r3.Vec{Z: s.z0}, Max: r3.Vec{Z: s.z1}}
}

// translation is a Solid displaced by a constant offset.
type translation struct {
	sdf    Solid
	offset r3.Vec
	bb     r3.Box
}

// Translate returns s displaced by offset. Stacked placement in the
// assembly uses pure Z translation, but the kernel accepts any offset.
func Translate(s Solid, offset r3.Vec) Solid {
	if s == nil {
		panic("nil Solid argument")
	}
	bb := s.Bounds()
	return &translation{
		sdf:    s,
		offset: offset,
		bb: r3.Box{
			Min: r3.Add(bb.Min, offset),
			Max: r3.Add(bb.Max, offset),
		},
	}
}

// Evaluate returns the minimum distance to the translated solid.
func (s *translation) Evaluate(p r3.Vec) float64 {
	return s.sdf.Evaluate(r3.Sub(p, s.offset))
}

// Bounds returns the bounding box of the translated solid.
func (s *translation) Bounds() r3.Box {
	return s.bb
}
