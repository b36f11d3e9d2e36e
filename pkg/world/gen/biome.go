package gen

import (
	"github.com/OCharnyshevich/voxelcore/pkg/world/curve"
	"github.com/OCharnyshevich/voxelcore/pkg/world/noise"
)

// BiomeSampler selects the mountain biome factor for a column from a very
// low-frequency noise field remapped through a response curve.
type BiomeSampler struct {
	field noise.Sampler
	curve *curve.Curve
	freq  float64
}

// NewBiomeSampler creates a BiomeSampler from a seed.
func NewBiomeSampler(seed int64, c *curve.Curve, freq float64) *BiomeSampler {
	return &BiomeSampler{
		field: noise.NewOpenSimplex(seed + 100),
		curve: c,
		freq:  freq,
	}
}

// At returns the raw biome noise in [0,1] and its remapped factor.
func (bs *BiomeSampler) At(wx, wz int) (raw, factor float64) {
	raw = noise.Normalized2D(bs.field, float64(wx), float64(wz), bs.freq)
	return raw, bs.curve.Evaluate(raw)
}
