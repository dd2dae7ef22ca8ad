/*package moderato simulates neutrons diffusing through a moderating medium
held in a cylindrical tank. Each neutron performs exponential random
flights between collisions with the medium's nuclei, losing energy by
elastic scattering until it escapes the tank, is absorbed, or has been
followed for the requested number of collisions. The full position and
energy history of every neutron is retained for measurement.
*/
package moderato

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/moderato-sim/moderato/collision"
	"github.com/moderato-sim/moderato/geom"
	"github.com/moderato-sim/moderato/neutron"
	"github.com/moderato-sim/moderato/nuclear"
	"github.com/moderato-sim/moderato/sample"
)

// thermalFactor sets the energy below which a collision is treated as
// thermal: once the neutron is within thermalFactor*kT of the medium, the
// free-gas motion of the moderator dominates the kinematics and a pure
// two-body elastic treatment is no longer valid.
const thermalFactor = 10

// Parameters configures a simulation. The zero value of every optional
// field selects the water defaults applied by CheckInit.
type Parameters struct {
	// NNeutrons is the number of neutrons to simulate.
	NNeutrons int

	// MoleculeStructure is the number of atoms of each nuclide in one
	// molecule of the medium. Default (2, 1), for H2O.
	MoleculeStructure []float64
	// NucleiMasses are the nuclide masses in units of the neutron mass,
	// in the same order as MoleculeStructure. Default (1, 16), for H2O.
	NucleiMasses []float64
	// NumberDensity is the molecule number density of the medium in m^-3.
	// Default is water at room temperature.
	NumberDensity float64

	// TankRadius and TankHeight are the tank dimensions in meters.
	// Default 1 each.
	TankRadius, TankHeight float64
	// TankCenter is the position of the tank's center. Default the origin.
	TankCenter geom.Vec

	// Temperature of the medium in K. Default 293.
	Temperature float64

	// Seed seeds the simulation's random streams. Zero draws a seed from
	// the wall clock.
	Seed int64

	// Nuclear data, one table per nuclide in MoleculeStructure order.
	// Cross-section tables are (eV, barns); the spectrum table is in MeV
	// and normalized.
	TotalData      []nuclear.Table
	ScatteringData []nuclear.Table
	AbsorptionData []nuclear.Table
	AngularData    []nuclear.AngularTable
	SpectrumData   nuclear.Table
}

// CheckInit applies defaults and validates the parameters.
func (p *Parameters) CheckInit() error {
	if p.NNeutrons <= 0 {
		return fmt.Errorf("need a positive number of neutrons, got %d", p.NNeutrons)
	}

	if p.MoleculeStructure == nil {
		p.MoleculeStructure = []float64{2, 1}
	}
	if p.NucleiMasses == nil {
		p.NucleiMasses = []float64{1, 16}
	}
	if len(p.MoleculeStructure) != 2 || len(p.NucleiMasses) != 2 {
		return fmt.Errorf(
			"exactly two nuclide species are supported, got %d atom counts and %d masses",
			len(p.MoleculeStructure), len(p.NucleiMasses),
		)
	}
	for i, m := range p.NucleiMasses {
		if m <= 0 {
			return fmt.Errorf("nuclide %d has non-positive mass %g", i, m)
		}
	}
	if p.NumberDensity == 0 {
		p.NumberDensity = nuclear.WaterNumberDensity
	}

	if p.TankRadius == 0 {
		p.TankRadius = 1
	}
	if p.TankHeight == 0 {
		p.TankHeight = 1
	}
	if p.TankRadius < 0 || p.TankHeight < 0 {
		return fmt.Errorf(
			"tank radius and height must be positive, got %g and %g",
			p.TankRadius, p.TankHeight,
		)
	}

	if p.Temperature == 0 {
		p.Temperature = 293
	} else if p.Temperature < 0 {
		return fmt.Errorf("temperature must be positive, got %g", p.Temperature)
	}

	n := len(p.MoleculeStructure)
	if len(p.TotalData) != n || len(p.ScatteringData) != n ||
		len(p.AbsorptionData) != n || len(p.AngularData) != n {
		return fmt.Errorf(
			"need one total, scattering, absorption, and angular table per nuclide",
		)
	}
	return nil
}

// Sim owns a neutron population and the interpolated nuclear data, and
// advances the population through collision batches.
type Sim struct {
	// Neutrons is the simulated population. Indices are stable across
	// Diffuse calls.
	Neutrons neutron.Population

	// KT is the thermal energy scale of the medium in eV.
	KT float64
	// Tank is the simulated volume.
	Tank geom.Tank

	total      *nuclear.Total
	absorption *nuclear.Absorption
	angular    *nuclear.Angular
	spectrum   *nuclear.Spectrum
	mb         *sample.MaxwellBoltzmann

	masses      []float64
	nCollisions int
	nextSeed    int64
}

// New creates a simulation: it fits the interpolators over the nuclear
// data, draws the initial energies from the source spectrum, and places
// every neutron at the origin.
func New(p Parameters) (*Sim, error) {
	if err := p.CheckInit(); err != nil {
		return nil, err
	}

	s := &Sim{
		KT:     sample.Boltzmann * p.Temperature * sample.JToEV,
		Tank:   geom.NewTank(p.TankRadius, p.TankHeight, p.TankCenter),
		masses: p.NucleiMasses,
	}

	s.total = nuclear.NewTotal(p.TotalData, p.MoleculeStructure, p.NumberDensity)
	s.absorption = nuclear.NewAbsorption(
		p.ScatteringData, p.AbsorptionData, p.MoleculeStructure,
	)
	s.angular = nuclear.NewAngular(p.AngularData)
	s.mb = sample.NewMaxwellBoltzmann(sample.NeutronMass, p.Temperature)

	spectrum, err := nuclear.NewSpectrum(p.SpectrumData)
	if err != nil {
		return nil, err
	}
	s.spectrum = spectrum

	s.nextSeed = p.Seed
	if s.nextSeed == 0 {
		s.nextSeed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(s.claimSeed()))
	energies := s.spectrum.Sample(rng, p.NNeutrons)

	s.Neutrons = make(neutron.Population, p.NNeutrons)
	for i := range s.Neutrons {
		// The spectrum table is in MeV.
		s.Neutrons[i] = neutron.New(energies[i]*1e6, geom.Vec{})
	}
	return s, nil
}

// Collisions returns the cumulative number of collision steps requested
// across all Diffuse calls.
func (s *Sim) Collisions() int { return s.nCollisions }

// Len returns the population size.
func (s *Sim) Len() int { return len(s.Neutrons) }

// claimSeed hands out seeds for new random streams. Each worker of each
// batch gets a distinct one: sharing a stream, or a seed, across workers
// would correlate their trajectories.
func (s *Sim) claimSeed() int64 {
	seed := s.nextSeed
	s.nextSeed++
	return seed
}

// Diffuse advances every neutron by up to nCollisions further collision
// steps: neutrons that leave the tank or are absorbed stop early, and their
// recorded history stands. The population is split into contiguous chunks
// processed by parallel workers; index order is preserved. Diffuse(0) is a
// no-op.
func (s *Sim) Diffuse(nCollisions int) {
	if nCollisions <= 0 || len(s.Neutrons) == 0 {
		return
	}
	s.nCollisions += nCollisions

	// Leave a couple of cores for everyone else; contended workers are
	// slower than fewer workers.
	workers := runtime.NumCPU() - 2
	if workers < 1 {
		workers = 1
	}
	if workers > len(s.Neutrons) {
		workers = len(s.Neutrons)
	}

	// The rounded-up chunk size can cover the population in fewer chunks
	// than there are workers, so the join counts dispatched chunks, not
	// workers.
	ranges := chunkRanges(len(s.Neutrons), workers)

	out := make(chan int, len(ranges))
	for id, r := range ranges {
		seed := s.claimSeed()

		if id < len(ranges)-1 {
			go s.diffuseChunk(id, r[0], r[1], nCollisions, seed, out)
		} else {
			s.diffuseChunk(id, r[0], r[1], nCollisions, seed, out)
		}
	}
	for i := 0; i < len(ranges); i++ {
		<-out
	}
}

// chunkRanges splits n elements into contiguous [lo, hi) ranges of size
// ceil(n/workers). Ranges are never empty: when the rounded-up size
// overshoots, fewer than workers ranges come out.
func chunkRanges(n, workers int) [][2]int {
	chunkSize := (n + workers - 1) / workers
	ranges := [][2]int{}
	for lo := 0; lo < n; lo += chunkSize {
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		ranges = append(ranges, [2]int{lo, hi})
	}
	return ranges
}

// diffuseChunk runs the transport loop for every neutron in
// Neutrons[lo:hi]. The chunk is owned exclusively by this worker; shared
// simulation state is only read.
func (s *Sim) diffuseChunk(id, lo, hi, nCollisions int, seed int64, out chan<- int) {
	rng := rand.New(rand.NewSource(seed))
	kin := collision.NewKinematics(rng, s.mb)
	iso := geom.NewDirectionSampler(rng)

	for _, n := range s.Neutrons[lo:hi] {
		s.diffuseNeutron(rng, kin, iso, n, nCollisions)
	}
	out <- id
}

// diffuseNeutron advances a single neutron by up to nCollisions steps:
// fly, collide, repeat until the neutron leaves the tank, is absorbed, or
// the budget runs out.
func (s *Sim) diffuseNeutron(
	rng *rand.Rand, kin *collision.Kinematics, iso *geom.DirectionSampler,
	n *neutron.Neutron, nCollisions int,
) {
	n.Direction = iso.Sample()

	for i := 0; i < nCollisions; i++ {
		// Checked before the flight, so the position recorded by an
		// escaping flight remains the neutron's final state.
		if !s.Tank.Inside(n.Position()) {
			break
		}

		energy := n.Energy()

		// Exponential flight length: the collision points of a medium
		// with a well defined mean free path are memoryless. 1-U keeps
		// the argument of the log away from zero.
		l := -s.total.MeanFreePath(energy) * math.Log(1-rng.Float64())
		n.Travel(l)

		// Which nucleus the neutron hits.
		idx := 1
		if rng.Float64() < s.total.SelectionRatio(energy) {
			idx = 0
		}

		o := kin.Collide(
			energy, n.Direction, s.masses[idx],
			s.angular.CMCosine(rng, idx, energy),
			rng.Float64() < s.absorption.Rate(energy, idx),
			energy < thermalFactor*s.KT,
		)
		n.Collide(o.LossFrac, o.Direction)

		if o.LossFrac == 1 {
			break
		}
	}
}
