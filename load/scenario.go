// Package load describes the time varying, height masked environmental
// loads applied to the structure's outer skin: wind above the water line,
// current below it.
package load

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Side selects which side of the cutoff elevation a load acts on.
type Side uint8

const (
	// Above masks the load onto the skin above the cutoff (wind).
	Above Side = iota
	// Below masks the load onto the skin below the cutoff (current).
	Below
)

func (s Side) String() string {
	if s == Below {
		return "below"
	}
	return "above"
}

// Sample is one point of a load amplitude time series.
type Sample struct {
	T, V float64
}

var (
	// ErrShortSeries rejects amplitude series with fewer than 2 samples.
	ErrShortSeries = errors.New("load: amplitude series needs at least 2 samples")
	// ErrZeroSeries rejects an identically zero amplitude series, whose
	// peak cannot be extracted.
	ErrZeroSeries = errors.New("load: amplitude series is identically zero")
)

// Scenario is one surface load: an amplitude series, a direction, and a
// spatial height mask about the cutoff elevation. Construct with Wind or
// Current and call Normalize before use.
type Scenario struct {
	Name      string
	Samples   []Sample
	Direction r3.Vec
	Cutoff    float64
	Width     float64 // mask blending length
	Side      Side

	// Magnitude is the peak amplitude extracted by Normalize; after
	// normalization the series spans at most [-1, 1].
	Magnitude float64
}

// Wind returns a scenario masked onto the skin above the cutoff.
func Wind(name string, samples []Sample, dir r3.Vec, cutoff, width float64) *Scenario {
	return &Scenario{Name: name, Samples: samples, Direction: dir, Cutoff: cutoff, Width: width, Side: Above}
}

// Current returns a scenario masked onto the skin below the cutoff.
func Current(name string, samples []Sample, dir r3.Vec, cutoff, width float64) *Scenario {
	return &Scenario{Name: name, Samples: samples, Direction: dir, Cutoff: cutoff, Width: width, Side: Below}
}

// Validate checks the series ordering and the mask geometry against the
// model's total height span [zMin, zMax]: times must be strictly
// increasing and the cutoff must fall inside the span for the mask to
// have any effect.
func (s *Scenario) Validate(zMin, zMax float64) error {
	if len(s.Samples) < 2 {
		return ErrShortSeries
	}
	for i := 1; i < len(s.Samples); i++ {
		if s.Samples[i].T <= s.Samples[i-1].T {
			return fmt.Errorf("load %s: sample times must be strictly increasing (t[%d]=%g after t[%d]=%g)",
				s.Name, i, s.Samples[i].T, i-1, s.Samples[i-1].T)
		}
	}
	if s.Cutoff <= zMin || s.Cutoff >= zMax {
		return fmt.Errorf("load %s: cutoff %g outside the model height span (%g, %g)", s.Name, s.Cutoff, zMin, zMax)
	}
	if s.Width <= 0 {
		return fmt.Errorf("load %s: mask width %g must be > 0", s.Name, s.Width)
	}
	return nil
}

// Normalize extracts the peak magnitude and rescales the series so the
// solver amplitude stays within [-1, 1]. Idempotent: a second call leaves
// Magnitude untouched.
func (s *Scenario) Normalize() error {
	if len(s.Samples) < 2 {
		return ErrShortSeries
	}
	peak := 0.0
	for _, smp := range s.Samples {
		peak = math.Max(peak, math.Abs(smp.V))
	}
	if peak == 0 {
		return ErrZeroSeries
	}
	for i := range s.Samples {
		s.Samples[i].V /= peak
	}
	if s.Magnitude == 0 {
		s.Magnitude = peak
	} else {
		s.Magnitude *= peak
	}
	return nil
}

// Mask returns the smooth spatial weight of the load at elevation z: a
// tanh blend from 0 to 1 through the cutoff, rising for Above and falling
// for Below. A smooth mask avoids the pressure discontinuity a hard step
// at the water line would inject into the solution.
func (s *Scenario) Mask(z float64) float64 {
	w := 0.5 * (1 + math.Tanh((z-s.Cutoff)/s.Width))
	if s.Side == Below {
		return 1 - w
	}
	return w
}

// SinSeries samples sin(t) over one period in n points, the classic
// harmonic check-out amplitude.
func SinSeries(period float64, n int) []Sample {
	return series(period, n, math.Sin)
}

// SinSqSeries samples sin²(t), a strictly non-negative gust-like
// amplitude.
func SinSqSeries(period float64, n int) []Sample {
	return series(period, n, func(t float64) float64 {
		x := math.Sin(t)
		return x * x
	})
}

func series(period float64, n int, f func(float64) float64) []Sample {
	if n < 2 {
		n = 2
	}
	dt := period / float64(n-1)
	out := make([]Sample, n)
	for i := range out {
		t := float64(i) * dt
		out[i] = Sample{T: t, V: f(t)}
	}
	return out
}

// LineLoadFactor converts a surface pressure to a line load intensity for
// the beam tower: pressure times the local projected diameter at beam
// coordinate z, the tower radius interpolating from rBot at 0 to rTop at
// h.
func LineLoadFactor(pressure, rBot, rTop, h, z float64) float64 {
	t := z / h
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	r := rBot + t*(rTop-rBot)
	return pressure * 2 * r
}
