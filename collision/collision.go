/*package collision computes the outcome of a single neutron-nucleus
collision: the post-collision travel direction and the factor the neutron's
energy is multiplied by.
*/
package collision

import (
	"math"
	"math/rand"

	"github.com/moderato-sim/moderato/geom"
	"github.com/moderato-sim/moderato/sample"
)

// Kind is the branch a collision took.
type Kind int

const (
	// Elastic is a two-body elastic scatter off a free nucleus.
	Elastic Kind = iota
	// Absorbed means the nucleus captured the neutron. Terminal.
	Absorbed
	// Thermal is a collision at thermal energies, where the moderator's
	// own motion dominates the kinematics and the neutron's energy is
	// replaced by a thermal draw instead of scaled.
	Thermal
)

// Outcome is the result of a collision.
type Outcome struct {
	Kind      Kind
	Direction geom.Vec

	// LossFrac is the factor applied to the neutron's energy: the new
	// energy is E*LossFrac. An absorption has LossFrac == 1 and ends the
	// neutron's transport; its final recorded energy is its incident one.
	LossFrac float64
}

// Kinematics computes collision outcomes. It owns a random stream and must
// not be shared between goroutines.
type Kinematics struct {
	rng *rand.Rand
	iso *geom.DirectionSampler
	mb  *sample.MaxwellBoltzmann
}

// NewKinematics creates a Kinematics drawing from the given random stream
// and taking thermal energies from mb.
func NewKinematics(rng *rand.Rand, mb *sample.MaxwellBoltzmann) *Kinematics {
	return &Kinematics{rng: rng, iso: geom.NewDirectionSampler(rng), mb: mb}
}

// Collide computes the outcome of a collision for a neutron of the given
// energy (eV) and unit direction against a nucleus of the given mass (in
// units of the neutron mass). cosCM is the sampled center-of-mass
// scattering cosine; absorbed and thermal select the branch, with
// absorption taking precedence.
func (k *Kinematics) Collide(
	energy float64, dir geom.Vec, mass, cosCM float64, absorbed, thermal bool,
) Outcome {
	switch {
	case absorbed:
		return Outcome{Kind: Absorbed, Direction: dir, LossFrac: 1}
	case thermal:
		return Outcome{
			Kind:      Thermal,
			Direction: k.iso.Sample(),
			LossFrac:  k.mb.Energy(k.rng) / energy,
		}
	}
	return k.elastic(energy, dir, mass, cosCM)
}

// elastic computes a two-body elastic scatter. Speeds are expressed in
// units where the neutron's incident speed is sqrt(E); only ratios of
// speeds enter the result, so the unit cancels.
func (k *Kinematics) elastic(energy float64, dir geom.Vec, mass, cosCM float64) Outcome {
	vn := dir.Scale(math.Sqrt(energy))

	// The center of mass moves along the incident direction; the neutron's
	// speed relative to it is what the scattering angle redirects.
	vcm := vn.Scale(1 / (1 + mass))
	rel := vn.Sub(vcm).Norm()

	vNew := vcm.Add(k.cmDirection(cosCM).Scale(rel))

	n2 := vNew.Dot(vNew)
	return Outcome{
		Kind:      Elastic,
		Direction: vNew.Normalize(),
		LossFrac:  n2 / vn.Dot(vn),
	}
}

// cmDirection builds the post-collision direction in the center-of-mass
// frame from the sampled polar cosine and a uniform azimuth.
func (k *Kinematics) cmDirection(cosCM float64) geom.Vec {
	theta := math.Acos(cosCM)
	phi := 2 * math.Pi * k.rng.Float64()

	v := geom.Vec{
		math.Sin(theta) * math.Cos(phi),
		math.Sin(theta) * math.Sin(phi),
		math.Cos(theta),
	}
	// Normalized for numerical stability.
	return v.Normalize()
}
