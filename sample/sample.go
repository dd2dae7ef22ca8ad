/*package sample implements the rejection sampling primitives shared by the
stochastic parts of the transport loop, along with the physical constants
they are expressed in.
*/
package sample

import (
	"log"
	"math/rand"
)

// Physical constants. These are process-wide and never recomputed.
const (
	// Boltzmann is the Boltzmann constant in J/K.
	Boltzmann = 1.380649e-23
	// JToEV converts an energy in joules to electronvolts.
	JToEV = 6.24150907e18
	// NeutronMass is the neutron rest mass in kg.
	NeutronMass = 1.67493e-27
)

// maxIters bounds a single rejection draw. A draw that busy-loops this long
// means the density cap passed to Rejection is below the density's true
// maximum, which is a programming error, not a runtime condition.
const maxIters = 100 * 1000 * 1000

// Rejection draws a single sample from the density pdf, supported on
// [xmin, xmax] and bounded above by ymax.
//
// Candidates x ~ U(xmin, xmax) and y ~ U(0, ymax) are drawn until y falls
// under pdf(x). ymax must be a true upper bound of pdf on the support:
// callers are expected to validate it at construction time, and Rejection
// fails hard if a draw does not terminate.
func Rejection(rng *rand.Rand, xmin, xmax, ymax float64, pdf func(float64) float64) float64 {
	for i := 0; i < maxIters; i++ {
		x := xmin + (xmax-xmin)*rng.Float64()
		y := ymax * rng.Float64()
		if y <= pdf(x) {
			return x
		}
	}
	log.Fatalf(
		"Rejection() did not accept a sample on [%g, %g] after %d draws. "+
			"The density cap %g is below the density's maximum.",
		xmin, xmax, maxIters, ymax,
	)
	panic("unreachable")
}
