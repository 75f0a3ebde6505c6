package load

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestMaskMonotone(t *testing.T) {
	wind := Wind("wind", SinSeries(10, 11), r3.Vec{X: 1}, 30, 2)
	prev := -1.0
	for z := 0.0; z <= 95; z += 0.5 {
		m := wind.Mask(z)
		if m < 0 || m > 1 {
			t.Fatalf("mask(%g) = %g outside [0, 1]", z, m)
		}
		if m < prev {
			t.Fatalf("mask not monotone at z=%g", z)
		}
		prev = m
	}
	if m := wind.Mask(30); math.Abs(m-0.5) > 1e-12 {
		t.Errorf("mask at the cutoff got %g want 0.5", m)
	}
	if m := wind.Mask(95); m < 0.999 {
		t.Errorf("mask at the tip got %g want ~1", m)
	}
}

func TestMaskSides(t *testing.T) {
	wind := Wind("wind", nil, r3.Vec{X: 1}, 30, 2)
	current := Current("current", nil, r3.Vec{X: 1}, 30, 2)
	for _, z := range []float64{0, 10, 29, 31, 60} {
		if s := wind.Mask(z) + current.Mask(z); math.Abs(s-1) > 1e-12 {
			t.Errorf("masks at z=%g sum to %g want 1", z, s)
		}
	}
	if current.Mask(0) < 0.999 {
		t.Error("current mask vanishes at the mudline")
	}
}

func TestNormalize(t *testing.T) {
	s := Wind("wind", []Sample{{0, 0}, {1, -500}, {2, 250}}, r3.Vec{X: 1}, 30, 2)
	if err := s.Normalize(); err != nil {
		t.Fatal(err)
	}
	if s.Magnitude != 500 {
		t.Errorf("magnitude got %g want 500", s.Magnitude)
	}
	if s.Samples[1].V != -1 || s.Samples[2].V != 0.5 {
		t.Errorf("series not rescaled: %+v", s.Samples)
	}
	// Idempotent: the peak is already 1, magnitude must not drift.
	if err := s.Normalize(); err != nil {
		t.Fatal(err)
	}
	if s.Magnitude != 500 {
		t.Errorf("magnitude drifted to %g on re-normalize", s.Magnitude)
	}
}

func TestNormalizeRejects(t *testing.T) {
	s := Wind("wind", []Sample{{0, 0}}, r3.Vec{X: 1}, 30, 2)
	if err := s.Normalize(); !errors.Is(err, ErrShortSeries) {
		t.Errorf("short series got %v", err)
	}
	s = Wind("wind", []Sample{{0, 0}, {1, 0}, {2, 0}}, r3.Vec{X: 1}, 30, 2)
	if err := s.Normalize(); !errors.Is(err, ErrZeroSeries) {
		t.Errorf("zero series got %v", err)
	}
}

func TestValidateSeries(t *testing.T) {
	good := Wind("wind", SinSeries(10, 11), r3.Vec{X: 1}, 30, 2)
	if err := good.Validate(0, 95); err != nil {
		t.Fatal(err)
	}
	bad := Wind("wind", []Sample{{0, 0}, {1, 1}, {1, 2}}, r3.Vec{X: 1}, 30, 2)
	if err := bad.Validate(0, 95); err == nil {
		t.Error("non-increasing times accepted")
	}
	outside := Wind("wind", SinSeries(10, 11), r3.Vec{X: 1}, 100, 2)
	if err := outside.Validate(0, 95); err == nil {
		t.Error("cutoff above the model accepted")
	}
	thin := Wind("wind", SinSeries(10, 11), r3.Vec{X: 1}, 30, 0)
	if err := thin.Validate(0, 95); err == nil {
		t.Error("zero mask width accepted")
	}
}

func TestSeriesShapes(t *testing.T) {
	sin := SinSeries(2*math.Pi, 101)
	if len(sin) != 101 {
		t.Fatalf("sample count got %d want 101", len(sin))
	}
	if math.Abs(sin[0].V) > 1e-12 || math.Abs(sin[100].V) > 1e-9 {
		t.Errorf("sin endpoints got %g and %g want 0", sin[0].V, sin[100].V)
	}
	for _, s := range SinSqSeries(2*math.Pi, 101) {
		if s.V < 0 {
			t.Fatalf("sin² sample %g negative at t=%g", s.V, s.T)
		}
	}
}

func TestLineLoadFactor(t *testing.T) {
	// Tapered tower 3 to 1 over 50 m under unit pressure.
	if f := LineLoadFactor(1, 3, 1, 50, 0); f != 6 {
		t.Errorf("base factor got %g want 6", f)
	}
	if f := LineLoadFactor(1, 3, 1, 50, 50); f != 2 {
		t.Errorf("tip factor got %g want 2", f)
	}
	if f := LineLoadFactor(1, 3, 1, 50, 25); f != 4 {
		t.Errorf("mid factor got %g want 4", f)
	}
	// Clamped outside the span.
	if f := LineLoadFactor(1, 3, 1, 50, 60); f != 2 {
		t.Errorf("factor beyond the tip got %g want 2", f)
	}
}
