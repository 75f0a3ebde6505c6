package profile

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// Parametric sections must reproduce their input dimensions exactly:
// revolved features are later probed by coordinates computed from the
// same parameters, so even rounding drift would break re-identification.
func TestSectionRadiiExact(t *testing.T) {
	const rBot, rTop, h = 3.5, 1.0, 50.0
	p, err := Trapezoid(rBot, rTop, h)
	if err != nil {
		t.Fatal(err)
	}
	want := []r2.Vec{{X: 0, Y: 0}, {X: rBot, Y: 0}, {X: rTop, Y: h}, {X: 0, Y: h}}
	got := p.Vertices()
	if len(got) != len(want) {
		t.Fatalf("vertex count got %d want %d", len(got), len(want))
	}
	for _, w := range want {
		found := false
		for _, g := range got {
			if g == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("vertex %v not reproduced exactly in %v", w, got)
		}
	}
}

func TestRingSection(t *testing.T) {
	const rOutBot, rOutTop, thick, h = 15.5, 3.5, 0.5, 25.34
	p, err := Ring(rOutBot, rOutTop, thick, h)
	if err != nil {
		t.Fatal(err)
	}
	// Inside the wall, in the cavity, outside the cone.
	if d := p.Evaluate(r2.Vec{X: rOutBot - thick/2, Y: 0.01}); d >= 0 {
		t.Errorf("wall point evaluated %g, want < 0", d)
	}
	if d := p.Evaluate(r2.Vec{X: 1, Y: h / 2}); d <= 0 {
		t.Errorf("cavity point evaluated %g, want > 0", d)
	}
	if d := p.Evaluate(r2.Vec{X: rOutBot, Y: h}); d <= 0 {
		t.Errorf("point outside the slant evaluated %g, want > 0", d)
	}
}

func TestRingThinWall(t *testing.T) {
	_, err := Ring(2, 0.4, 0.5, 10)
	var te *ThicknessError
	if !errors.As(err, &te) {
		t.Fatalf("got %v want ThicknessError", err)
	}
}

func TestShellPairHollow(t *testing.T) {
	outer, inner, hollow, err := ShellPair(3, 1, 50, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !hollow {
		t.Fatal("wall 0.5 on radii 3/1 should be hollow")
	}
	if inner == nil || outer == nil {
		t.Fatal("hollow pair missing an operand")
	}
	ib, ob := inner.Bounds(), outer.Bounds()
	if ib.Max.X >= ob.Max.X {
		t.Errorf("inner max radius %g not inside outer %g", ib.Max.X, ob.Max.X)
	}
}

func TestShellPairSolidFallback(t *testing.T) {
	// Wall thickness at or above the top radius leaves no cavity. Not an
	// error: the section degenerates to a solid.
	outer, inner, hollow, err := ShellPair(3, 0.4, 50, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if hollow {
		t.Fatal("degenerate cavity still reported hollow")
	}
	if inner != nil {
		t.Error("solid fallback returned an inner operand")
	}
	if outer == nil {
		t.Fatal("solid fallback lost the outer section")
	}
}
