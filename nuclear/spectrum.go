package nuclear

import (
	"fmt"
	"math/rand"

	"github.com/gonum/floats"

	"github.com/moderato-sim/moderato/interpolate"
	"github.com/moderato-sim/moderato/sample"
)

// Spectrum samples source energies from a tabulated, normalized probability
// spectrum. The table is interpolated linearly in linear space; the sample
// domain is the table's energy range. Immutable after construction; the
// random stream is supplied per draw.
type Spectrum struct {
	f        *interpolate.Linear
	min, max float64
}

// NewSpectrum creates a Spectrum sampler from a two column (energy,
// probability) table. The probability column must be normalized so that its
// maximum does not exceed 1; rejection draws use 1 as the density cap, and
// a density above the cap would silently bias the sampler.
func NewSpectrum(t Table) (*Spectrum, error) {
	c := t.Clean()
	if len(c.E) <= 1 {
		return nil, fmt.Errorf(
			"spectrum table has %d usable rows after cleaning", len(c.E),
		)
	}
	if max := floats.Max(c.V); max > 1 {
		return nil, fmt.Errorf(
			"spectrum table is not normalized: maximum density is %g", max,
		)
	}
	f := interpolate.NewLinear(c.E, c.V)
	return &Spectrum{f: f, min: f.Min(), max: f.Max()}, nil
}

// Bounds returns the energy domain of the spectrum, in the table's units.
func (s *Spectrum) Bounds() (min, max float64) {
	return s.min, s.max
}

// Sample draws n energies from the spectrum, in the table's units.
func (s *Spectrum) Sample(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = sample.Rejection(rng, s.min, s.max, 1, s.f.Eval)
	}
	return out
}
