package profile

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// ThicknessError signals an annular section whose derived inner radius is
// not positive. A degenerate ring profile fails uncontrollably downstream,
// so it is rejected before revolution.
type ThicknessError struct {
	Outer     float64 // offending outer radius
	Thickness float64
}

func (e *ThicknessError) Error() string {
	return fmt.Sprintf("profile: thickness %g leaves inner radius %g <= 0 (outer radius %g)",
		e.Thickness, e.Outer-e.Thickness, e.Outer)
}

// Trapezoid returns the closed section of a plain revolved solid: base from
// the axis to rBot, slant flank up to rTop at height h, top back to the
// axis, closed along the axis.
func Trapezoid(rBot, rTop, h float64) (*P, error) {
	if rBot <= 0 || rTop <= 0 || h <= 0 {
		return nil, fmt.Errorf("profile: trapezoid dimensions must be positive (rBot=%g rTop=%g h=%g)", rBot, rTop, h)
	}
	return Closed([]r2.Vec{
		{X: 0, Y: 0},
		{X: rBot, Y: 0},
		{X: rTop, Y: h},
		{X: 0, Y: h},
	})
}

// Rect returns the rectangular section of a solid cylinder of radius r and
// height h (the foundation plateau).
func Rect(r, h float64) (*P, error) {
	return Trapezoid(r, r, h)
}

// Ring returns the annular trapezoid section of a hollow cone shell: outer
// slant from rOutBot to rOutTop, a top closing segment, the inner slant
// back down, and a bottom closing segment. Both inner radii derive from the
// shared wall thickness t.
func Ring(rOutBot, rOutTop, t, h float64) (*P, error) {
	if rOutBot <= 0 || rOutTop <= 0 || h <= 0 {
		return nil, fmt.Errorf("profile: ring dimensions must be positive (rOutBot=%g rOutTop=%g h=%g)", rOutBot, rOutTop, h)
	}
	if t <= 0 {
		return nil, fmt.Errorf("profile: ring thickness must be positive (t=%g)", t)
	}
	rInBot := rOutBot - t
	rInTop := rOutTop - t
	if rInBot <= 0 {
		return nil, &ThicknessError{Outer: rOutBot, Thickness: t}
	}
	if rInTop <= 0 {
		return nil, &ThicknessError{Outer: rOutTop, Thickness: t}
	}
	return Closed([]r2.Vec{
		{X: rInBot, Y: 0},
		{X: rOutBot, Y: 0},
		{X: rOutTop, Y: h},
		{X: rInTop, Y: h},
	})
}

// RectRing returns the annular rectangle section of a hollow cylinder
// shell of outer radius rOut, wall thickness t and height h.
func RectRing(rOut, t, h float64) (*P, error) {
	return Ring(rOut, rOut, t, h)
}

// ShellPair returns the outer and inner trapezoid sections of a hollow
// tapered tube, to be combined downstream by a boolean cut. The inner
// section is the outer one with both radii reduced by the wall thickness t.
// When either derived inner radius is not positive the section degenerates
// to a solid: inner is nil and hollow is false, and no cut must be
// attempted.
func ShellPair(rBot, rTop, h, t float64) (outer, inner *P, hollow bool, err error) {
	outer, err = Trapezoid(rBot, rTop, h)
	if err != nil {
		return nil, nil, false, err
	}
	rInBot := rBot - t
	rInTop := rTop - t
	if rInBot <= 0 || rInTop <= 0 {
		return outer, nil, false, nil
	}
	inner, err = Trapezoid(rInBot, rInTop, h)
	if err != nil {
		return nil, nil, false, err
	}
	return outer, inner, true, nil
}
