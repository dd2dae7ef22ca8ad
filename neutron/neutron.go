/*package neutron holds the simulated particle entities. A Neutron is its
own full history: every position and energy it has had, index-aligned, so
downstream measurement never needs to re-run transport.
*/
package neutron

import (
	"github.com/moderato-sim/moderato/geom"
)

// Neutron is a single simulated particle. Its position and energy histories
// are append-only and index-aligned: entry 0 is the initial condition and
// entry i is the state after the i-th event. A transport step appends
// exactly one position (the flight) and one energy (the collision), so the
// two histories are equally long between steps.
type Neutron struct {
	positions []geom.Vec
	energies  []float64

	// Direction is the current unit travel direction, set by the transport
	// loop between a flight and the following collision.
	Direction geom.Vec
}

// New creates a neutron with the given initial energy in eV at the given
// position.
func New(energy float64, position geom.Vec) *Neutron {
	return &Neutron{
		positions: []geom.Vec{position},
		energies:  []float64{energy},
	}
}

// Position returns the current (most recent) position.
func (n *Neutron) Position() geom.Vec {
	return n.positions[len(n.positions)-1]
}

// Energy returns the current (most recent) energy in eV.
func (n *Neutron) Energy() float64 {
	return n.energies[len(n.energies)-1]
}

// Positions returns the position history. The returned slice is the
// neutron's own storage and must not be modified.
func (n *Neutron) Positions() []geom.Vec {
	return n.positions
}

// Energies returns the energy history. The returned slice is the neutron's
// own storage and must not be modified.
func (n *Neutron) Energies() []float64 {
	return n.energies
}

// Travel advances the neutron by the given distance along its current
// direction, appending the new position to its history.
func (n *Neutron) Travel(distance float64) {
	p := n.Position().Add(n.Direction.Scale(distance))
	n.positions = append(n.positions, p)
}

// Collide applies a collision: the direction becomes dir and the energy is
// scaled by lossFrac and appended to the history.
func (n *Neutron) Collide(lossFrac float64, dir geom.Vec) {
	n.Direction = dir
	n.energies = append(n.energies, n.Energy()*lossFrac)
}

// Population is an ordered collection of neutrons. Index order is stable
// across transport batches.
type Population []*Neutron
