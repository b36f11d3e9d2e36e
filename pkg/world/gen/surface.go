package gen

import "github.com/OCharnyshevich/voxelcore/pkg/voxel"

// classifyColumn picks the type of the voxel at world height wy given the
// computed surface height. Everything at or under the surface is stone; the
// band of dirtDepth voxels just under it becomes dirt and the top
// grassDepth of that band becomes grass.
func classifyColumn(wy, surface, dirtDepth, grassDepth float64) voxel.Type {
	if wy > surface {
		return voxel.Air
	}
	t := voxel.Stone
	if wy < surface && wy >= surface-dirtDepth {
		t = voxel.Dirt
	}
	if t == voxel.Dirt && wy > surface-grassDepth {
		t = voxel.Grass
	}
	return t
}

// classifyTopBand is the one-band rule used by the simple generator: air
// above the surface, grass in the top voxel, fill below.
func classifyTopBand(wy, surface float64, fill voxel.Type) voxel.Type {
	switch {
	case wy > surface:
		return voxel.Air
	case wy > surface-1:
		return voxel.Grass
	default:
		return fill
	}
}
