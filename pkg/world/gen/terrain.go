package gen

import (
	"fmt"

	"github.com/OCharnyshevich/voxelcore/pkg/voxel"
	"github.com/OCharnyshevich/voxelcore/pkg/world/curve"
	"github.com/OCharnyshevich/voxelcore/pkg/world/noise"
)

// CurveConfig parameterises the curve-driven terrain. The defaults reproduce
// existing worlds; change them only for new ones.
type CurveConfig struct {
	MountainCurve *curve.Curve `json:"mountain_curve"`
	BiomeCurve    *curve.Curve `json:"biome_curve"`

	BaseFrequency       float64 `json:"base_frequency"`
	DetailFrequency     float64 `json:"detail_frequency"`
	DetailDivisor       float64 `json:"detail_divisor"`
	BiomeFrequency      float64 `json:"biome_frequency"`
	StructuralFrequency float64 `json:"structural_frequency"`
	StructuralDivisor   float64 `json:"structural_divisor"`
	VerticalSquash      float64 `json:"vertical_squash"`

	Scale      float64 `json:"scale"`
	BaseOffset float64 `json:"base_offset"`
	DirtDepth  float64 `json:"dirt_depth"`
	GrassDepth float64 `json:"grass_depth"`

	Caves CaveConfig `json:"caves"`
}

// DefaultCurveConfig returns the stock curve terrain settings.
func DefaultCurveConfig() CurveConfig {
	mountains, _ := curve.Linear(
		[2]float64{0, 0.004},
		[2]float64{0.45, 0.008},
		[2]float64{0.7, 0.02},
		[2]float64{1, 0.05},
	)
	biomes, _ := curve.Linear(
		[2]float64{0, 0},
		[2]float64{0.5, 0.5},
		[2]float64{1, 1},
	)
	return CurveConfig{
		MountainCurve:       mountains,
		BiomeCurve:          biomes,
		BaseFrequency:       0.0055,
		DetailFrequency:     0.16,
		DetailDivisor:       25,
		BiomeFrequency:      0.004,
		StructuralFrequency: 0.025,
		StructuralDivisor:   600,
		VerticalSquash:      1.5,
		Scale:               400,
		BaseOffset:          150,
		DirtDepth:           3,
		GrassDepth:          1,
		Caves:               DefaultCaveConfig(),
	}
}

// Validate reports configuration that would make generation meaningless.
func (c CurveConfig) Validate() error {
	if err := c.MountainCurve.Validate(); err != nil {
		return fmt.Errorf("mountain curve: %w", err)
	}
	if err := c.BiomeCurve.Validate(); err != nil {
		return fmt.Errorf("biome curve: %w", err)
	}
	if c.DetailDivisor == 0 || c.StructuralDivisor == 0 || c.VerticalSquash == 0 {
		return fmt.Errorf("detail_divisor, structural_divisor and vertical_squash must be non-zero")
	}
	return nil
}

// Column holds the per-(x,z) noise samples of the curve generator.
type Column struct {
	Base        float64 // low-frequency height noise in [0,1]
	Detail      float64 // high-frequency detail, already divided down
	Biome       float64 // biome selector noise in [0,1]
	Mountain    float64 // mountain curve applied to Base
	BiomeFactor float64 // biome curve applied to Biome
}

// CurveGenerator shapes terrain from layered noise remapped through
// response curves, then carves caves.
type CurveGenerator struct {
	cfg        CurveConfig
	maxHeight  float64
	base       noise.Sampler
	detail     noise.Sampler
	structural noise.Sampler
	biomes     *BiomeSampler
	caves      *CaveCarver
}

// NewCurveGenerator creates a CurveGenerator. maxHeight is the world-scoped
// height multiplier.
func NewCurveGenerator(seed int64, maxHeight float64, cfg CurveConfig) (*CurveGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CurveGenerator{
		cfg:        cfg,
		maxHeight:  maxHeight,
		base:       noise.NewOpenSimplex(seed),
		detail:     noise.NewOpenSimplex(seed + 1),
		structural: noise.NewOpenSimplex(seed + 2),
		biomes:     NewBiomeSampler(seed, cfg.BiomeCurve, cfg.BiomeFrequency),
		caves:      NewCaveCarver(seed, cfg.Caves),
	}, nil
}

func (g *CurveGenerator) Generate(o Origin, size, height int) *voxel.Grid {
	grid := voxel.NewGrid(size, height)

	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			wx, wz := o.X+x, o.Z+z
			col := g.Sample(wx, wz)

			for y := 0; y < height; y++ {
				wy := o.Y + y
				surface := g.surfaceHeight(col, wx, wy, wz)
				t := classifyColumn(float64(wy), surface, g.cfg.DirtDepth, g.cfg.GrassDepth)
				if t != voxel.Air && g.caves.Open(wx, wy, wz) {
					t = voxel.Air
				}
				grid.SetType(x, y, z, t)
			}
		}
	}
	return grid
}

// Sample evaluates the 2D fields and curves for one column.
func (g *CurveGenerator) Sample(wx, wz int) Column {
	fx, fz := float64(wx), float64(wz)
	var c Column
	c.Base = noise.Normalized2D(g.base, fx, fz, g.cfg.BaseFrequency)
	c.Detail = noise.Normalized2D(g.detail, fx, fz, g.cfg.DetailFrequency) / g.cfg.DetailDivisor
	c.Mountain = g.cfg.MountainCurve.Evaluate(c.Base)
	c.Biome, c.BiomeFactor = g.biomes.At(wx, wz)
	return c
}

// HeightAt returns the surface height the voxel at world (wx, wy, wz) is
// compared against. The 3D structural field makes it vary with wy.
func (g *CurveGenerator) HeightAt(wx, wy, wz int) float64 {
	return g.surfaceHeight(g.Sample(wx, wz), wx, wy, wz)
}

// The biome factor is sampled but does not shape the height.
func (g *CurveGenerator) surfaceHeight(col Column, wx, wy, wz int) float64 {
	sy := int(float64(wy) / g.cfg.VerticalSquash)
	structural := noise.Pixel3D(g.structural, wx, sy, wz, g.cfg.StructuralFrequency) / g.cfg.StructuralDivisor

	normalized := (col.Mountain - structural + col.Detail) * g.cfg.Scale
	return normalized*g.maxHeight*col.Mountain + g.cfg.BaseOffset
}
