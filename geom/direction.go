package geom

import (
	"math/rand"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

// DirectionSampler draws isotropic unit vectors by normalizing draws from a
// three dimensional standard normal distribution.
//
// A DirectionSampler owns its random stream and must not be shared between
// goroutines.
type DirectionSampler struct {
	norm *distmv.Normal
	buf  []float64
}

// NewDirectionSampler creates a DirectionSampler drawing from the given
// random stream.
func NewDirectionSampler(rng *rand.Rand) *DirectionSampler {
	sigma := mat64.NewSymDense(3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	norm, ok := distmv.NewNormal([]float64{0, 0, 0}, sigma, rng)
	if !ok {
		panic("identity covariance rejected by distmv.NewNormal")
	}
	return &DirectionSampler{norm: norm, buf: make([]float64, 3)}
}

// Sample returns a unit vector drawn uniformly from the sphere.
func (ds *DirectionSampler) Sample() Vec {
	for {
		ds.norm.Rand(ds.buf)
		v := Vec{ds.buf[0], ds.buf[1], ds.buf[2]}
		if n := v.Norm(); n > 0 {
			return v.Scale(1 / n)
		}
	}
}
