package sample

import (
	"math"
	"math/rand"
)

// speedCutoff is the upper end of the sampled speed range in m/s. For a
// neutron at room temperature the density at this speed is ~1e-9 of its
// peak.
const speedCutoff = 10000

// MaxwellBoltzmann samples particle speeds and kinetic energies from the
// classical Maxwell-Boltzmann distribution for a particle of mass m in a
// medium at temperature T. It is immutable and safe to share between
// goroutines; the random stream is supplied per draw.
type MaxwellBoltzmann struct {
	m, T float64

	vMax, fMax float64
}

// NewMaxwellBoltzmann creates a sampler for a particle of mass m (kg) in a
// medium at temperature T (K). The density cap used by rejection draws is
// derived from the analytic peak of the distribution, so it cannot be set
// below the density's maximum.
func NewMaxwellBoltzmann(m, T float64) *MaxwellBoltzmann {
	mb := &MaxwellBoltzmann{m: m, T: T, vMax: speedCutoff}

	// Most probable speed. If it sits beyond the cutoff the density is
	// increasing on the whole domain and the cutoff itself is the maximum.
	vp := math.Sqrt(2 * Boltzmann * T / m)
	if vp > mb.vMax {
		vp = mb.vMax
	}
	mb.fMax = mb.Density(vp) * 1.01
	return mb
}

// Density returns the Maxwell-Boltzmann speed density at v.
func (mb *MaxwellBoltzmann) Density(v float64) float64 {
	a := mb.m / (2 * math.Pi * Boltzmann * mb.T)
	return math.Pow(a, 1.5) * 4 * math.Pi * v * v *
		math.Exp(-mb.m*v*v/(2*Boltzmann*mb.T))
}

// Speed draws a thermal speed in m/s.
func (mb *MaxwellBoltzmann) Speed(rng *rand.Rand) float64 {
	return Rejection(rng, 0, mb.vMax, mb.fMax, mb.Density)
}

// Energy draws a thermal kinetic energy in eV.
func (mb *MaxwellBoltzmann) Energy(rng *rand.Rand) float64 {
	v := mb.Speed(rng)
	return 0.5 * mb.m * v * v * JToEV
}
