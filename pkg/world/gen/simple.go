package gen

import (
	"math"

	"github.com/OCharnyshevich/voxelcore/pkg/voxel"
	"github.com/OCharnyshevich/voxelcore/pkg/world/noise"
)

// SimpleConfig parameterises the single-noise heightmap generator.
type SimpleConfig struct {
	BaseHeight  float64 `json:"base_height"`
	Amplitude   float64 `json:"amplitude"`
	Frequency   float64 `json:"frequency"`
	Octaves     int     `json:"octaves"`
	Persistence float64 `json:"persistence"`
}

// DefaultSimpleConfig keeps the surface inside a 16-high chunk at y=0.
func DefaultSimpleConfig() SimpleConfig {
	return SimpleConfig{
		BaseHeight:  8,
		Amplitude:   6,
		Frequency:   0.05,
		Octaves:     1,
		Persistence: 0.5,
	}
}

// SimpleGenerator produces a heightmap from one 2D noise value per column,
// optionally layered over Octaves: air above, grass on the top voxel, dirt
// below.
type SimpleGenerator struct {
	cfg    SimpleConfig
	height noise.Sampler
}

// NewSimpleGenerator creates a SimpleGenerator from a seed.
func NewSimpleGenerator(seed int64, cfg SimpleConfig) *SimpleGenerator {
	return &SimpleGenerator{
		cfg:    cfg,
		height: noise.NewOpenSimplex(seed),
	}
}

func (g *SimpleGenerator) Generate(o Origin, size, height int) *voxel.Grid {
	grid := voxel.NewGrid(size, height)

	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			surface := g.HeightAt(o.X+x, o.Z+z)
			for y := 0; y < height; y++ {
				grid.SetType(x, y, z, classifyTopBand(float64(o.Y+y), surface, voxel.Dirt))
			}
		}
	}
	return grid
}

// HeightAt returns the integer surface height of the column at (wx, wz).
func (g *SimpleGenerator) HeightAt(wx, wz int) float64 {
	f := g.cfg.Frequency
	n := noise.Octave2D(g.height, float64(wx)*f, float64(wz)*f, max(g.cfg.Octaves, 1), g.cfg.Persistence)
	return math.Floor(g.cfg.BaseHeight + n*g.cfg.Amplitude)
}
