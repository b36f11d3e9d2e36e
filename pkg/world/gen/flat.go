package gen

import "github.com/OCharnyshevich/voxelcore/pkg/voxel"

// Layer tops of the flat world, in world Y.
const (
	flatStoneTop = 2
	flatDirtTop  = 3
	flatGrassTop = 4
)

// FlatGenerator generates a layered superflat world:
// stone up to y=2, dirt at y=3, grass at y=4, air above.
type FlatGenerator struct{}

// NewFlatGenerator creates a FlatGenerator. The seed is ignored.
func NewFlatGenerator(_ int64) *FlatGenerator {
	return &FlatGenerator{}
}

func (g *FlatGenerator) Generate(o Origin, size, height int) *voxel.Grid {
	grid := voxel.NewGrid(size, height)

	for y := 0; y < height; y++ {
		t := flatLayer(o.Y + y)
		if t == voxel.Air {
			continue
		}
		for z := 0; z < size; z++ {
			for x := 0; x < size; x++ {
				grid.SetType(x, y, z, t)
			}
		}
	}
	return grid
}

// HeightAt returns the y of the top solid block.
func (g *FlatGenerator) HeightAt(_, _ int) float64 {
	return flatGrassTop
}

func flatLayer(wy int) voxel.Type {
	switch {
	case wy <= flatStoneTop:
		return voxel.Stone
	case wy == flatDirtTop:
		return voxel.Dirt
	case wy == flatGrassTop:
		return voxel.Grass
	default:
		return voxel.Air
	}
}
