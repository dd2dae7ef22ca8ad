package neutron

import (
	"testing"

	"github.com/gonum/floats"
	"github.com/stretchr/testify/assert"

	"github.com/moderato-sim/moderato/geom"
)

func TestNewNeutron(t *testing.T) {
	n := New(2e6, geom.Vec{1, 2, 3})
	assert.Equal(t, geom.Vec{1, 2, 3}, n.Position())
	assert.Equal(t, 2e6, n.Energy())
	assert.Len(t, n.Positions(), 1)
	assert.Len(t, n.Energies(), 1)
}

func TestTravel(t *testing.T) {
	n := New(100, geom.Vec{0, 0, 0})
	n.Direction = geom.Vec{0, 0, 1}
	n.Travel(2)
	n.Direction = geom.Vec{1, 0, 0}
	n.Travel(0.5)

	assert.Equal(t, geom.Vec{0.5, 0, 2}, n.Position())
	assert.Equal(t, []geom.Vec{
		{0, 0, 0}, {0, 0, 2}, {0.5, 0, 2},
	}, n.Positions())
}

func TestCollide(t *testing.T) {
	n := New(100, geom.Vec{0, 0, 0})
	n.Collide(0.25, geom.Vec{0, 1, 0})
	assert.Equal(t, geom.Vec{0, 1, 0}, n.Direction)
	assert.Equal(t, 25.0, n.Energy())

	n.Collide(0.5, geom.Vec{1, 0, 0})
	assert.Equal(t, 12.5, n.Energy())
	assert.Equal(t, []float64{100, 25, 12.5}, n.Energies())
}

func TestHistoriesStayAligned(t *testing.T) {
	n := New(2e6, geom.Vec{0, 0, 0})
	n.Direction = geom.Vec{0, 0, 1}
	for i := 0; i < 10; i++ {
		n.Travel(0.1)
		n.Collide(0.5, n.Direction)
		assert.Equal(t, len(n.Positions()), len(n.Energies()))
	}
	assert.True(t, floats.EqualWithinAbs(2e6/1024, n.Energy(), 1e-6))
}
