package geom

import (
	"log"
	"math"
)

// Tank is an immutable cylindrical volume with its axis along z. The
// moderating medium fills the tank exactly.
type Tank struct {
	Radius, Height float64
	Center         Vec
}

// NewTank creates a cylinder of the given radius and height centered on the
// given position.
func NewTank(radius, height float64, center Vec) Tank {
	if radius <= 0 || height <= 0 {
		log.Fatalf(
			"Tank given radius = %g and height = %g. Both must be positive.",
			radius, height,
		)
	}
	return Tank{Radius: radius, Height: height, Center: center}
}

// Inside returns true if p is strictly inside the tank. Points exactly on
// the wall, lid, or base count as outside.
func (t Tank) Inside(p Vec) bool {
	dx, dy := p[0]-t.Center[0], p[1]-t.Center[1]
	if math.Sqrt(dx*dx+dy*dy) >= t.Radius {
		return false
	}
	return math.Abs(p[2]-t.Center[2]) < t.Height/2
}

// Volume returns the volume of the tank.
func (t Tank) Volume() float64 {
	return math.Pi * t.Radius * t.Radius * t.Height
}
