package moderato

import (
	"math"

	"github.com/gonum/floats"

	"github.com/moderato-sim/moderato/geom"
)

// Measurer reads physical quantities out of a finished (or paused)
// simulation. It never re-derives transport physics: everything is computed
// from the recorded histories, the tank geometry, and the thermal scale.
type Measurer struct {
	sim *Sim
}

// NewMeasurer creates a Measurer over the given simulation.
func NewMeasurer(sim *Sim) *Measurer {
	return &Measurer{sim: sim}
}

// Positions returns the position history of every neutron.
func (m *Measurer) Positions() [][]geom.Vec {
	out := make([][]geom.Vec, len(m.sim.Neutrons))
	for i, n := range m.sim.Neutrons {
		out[i] = n.Positions()
	}
	return out
}

// Energies returns the energy history of every neutron.
func (m *Measurer) Energies() [][]float64 {
	out := make([][]float64, len(m.sim.Neutrons))
	for i, n := range m.sim.Neutrons {
		out[i] = n.Energies()
	}
	return out
}

// NumTotal returns the population size.
func (m *Measurer) NumTotal() int {
	return len(m.sim.Neutrons)
}

// NumEscaped returns the number of neutrons whose final position is
// outside the tank.
func (m *Measurer) NumEscaped() int {
	count := 0
	for _, n := range m.sim.Neutrons {
		if !m.sim.Tank.Inside(n.Position()) {
			count++
		}
	}
	return count
}

// NumThermal returns the number of neutrons whose final energy is thermal.
func (m *Measurer) NumThermal() int {
	count := 0
	for _, n := range m.sim.Neutrons {
		if n.Energy() < thermalFactor*m.sim.KT {
			count++
		}
	}
	return count
}

// ThermalizePositions returns, for each neutron that thermalized, the
// position at which its energy was thermal for the first time.
func (m *Measurer) ThermalizePositions() []geom.Vec {
	out := []geom.Vec{}
	for _, n := range m.sim.Neutrons {
		for i, e := range n.Energies() {
			if e < thermalFactor*m.sim.KT {
				out = append(out, n.Positions()[i])
				break
			}
		}
	}
	return out
}

// ThermalizeDistances returns the distance from the origin at which each
// thermalized neutron first became thermal.
func (m *Measurer) ThermalizeDistances() []float64 {
	ps := m.ThermalizePositions()
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = floats.Norm(p[:], 2)
	}
	return out
}

// absorbed reports whether neutron i stopped early while still inside the
// tank, which after a diffusion batch means it was captured.
func (m *Measurer) absorbed(i int) bool {
	n := m.sim.Neutrons[i]
	return len(n.Positions()) <= m.sim.nCollisions && m.sim.Tank.Inside(n.Position())
}

// NumAbsorbed returns the number of neutrons that were absorbed.
func (m *Measurer) NumAbsorbed() int {
	count := 0
	for i := range m.sim.Neutrons {
		if m.absorbed(i) {
			count++
		}
	}
	return count
}

// AbsorbedPositions returns the final position of every absorbed neutron.
func (m *Measurer) AbsorbedPositions() []geom.Vec {
	out := []geom.Vec{}
	for i, n := range m.sim.Neutrons {
		if m.absorbed(i) {
			out = append(out, n.Position())
		}
	}
	return out
}

// AbsorbedDistances returns the distance from the origin at which each
// absorbed neutron was captured.
func (m *Measurer) AbsorbedDistances() []float64 {
	ps := m.AbsorbedPositions()
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = floats.Norm(p[:], 2)
	}
	return out
}

// Flux returns the neutron flux through the sphere of radius r around the
// origin: the number of recorded flights crossing the sphere, in either
// direction, per unit sphere area.
func (m *Measurer) Flux(r float64) float64 {
	count := 0
	for _, n := range m.sim.Neutrons {
		ps := n.Positions()
		for i := 1; i < len(ps); i++ {
			r0 := floats.Norm(ps[i-1][:], 2)
			r1 := floats.Norm(ps[i][:], 2)
			if (r0 < r && r < r1) || (r1 < r && r < r0) {
				count++
			}
		}
	}
	return float64(count) / (4 * math.Pi * r * r)
}

// EnergySpectrum returns the energies carried across the sphere of radius
// r around the origin: for every flight that crosses the sphere, the
// neutron's energy at the crossing.
func (m *Measurer) EnergySpectrum(r float64) []float64 {
	out := []float64{}
	for _, n := range m.sim.Neutrons {
		ps, es := n.Positions(), n.Energies()
		for i := 1; i < len(ps); i++ {
			r0 := floats.Norm(ps[i-1][:], 2)
			r1 := floats.Norm(ps[i][:], 2)
			if r0 < r && r < r1 {
				out = append(out, es[i-1])
			} else if r1 < r && r < r0 {
				out = append(out, es[i])
			}
		}
	}
	return out
}

// EnergySpectrumEscaped returns the final energies of the neutrons that
// escaped the tank.
func (m *Measurer) EnergySpectrumEscaped() []float64 {
	out := []float64{}
	for _, n := range m.sim.Neutrons {
		if !m.sim.Tank.Inside(n.Position()) {
			out = append(out, n.Energy())
		}
	}
	return out
}

// NumAboveEnergy returns the number of neutrons whose initial energy is
// above e.
func (m *Measurer) NumAboveEnergy(e float64) int {
	count := 0
	for _, n := range m.sim.Neutrons {
		if n.Energies()[0] > e {
			count++
		}
	}
	return count
}
