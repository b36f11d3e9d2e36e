// Package light computes sunlight for a chunk grid.
//
// Light enters from the top of every column and is attenuated by the
// transparency of the voxels it passes. A breadth-first flood fill then
// spreads it sideways and around overhangs, losing a flat falloff per hop.
// Only the chunk's own voxels are considered; light does not cross chunk
// borders.
package light

import "github.com/OCharnyshevich/voxelcore/pkg/voxel"

// Directions lists the six neighbours in propagation order:
// +Y, -Y, -X, +X, +Z, -Z.
var Directions = [6]voxel.Pos{
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: -1, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: -1},
}

// Stats summarises one propagation pass.
type Stats struct {
	Seeds   int // voxels queued by the vertical sweep
	Relaxed int // light updates made by the flood fill
}

// Propagate computes the light of every voxel in g in place and returns
// pass statistics. falloff is the light lost per flood-fill hop.
func Propagate(g *voxel.Grid, falloff float32) Stats {
	seeds := Sweep(g, falloff)
	return Stats{
		Seeds:   len(seeds),
		Relaxed: Flood(g, falloff, seeds),
	}
}

// Sweep walks each column top-down, assigning the running sunlight value and
// returning the voxels brighter than falloff. Light never increases down a
// column.
func Sweep(g *voxel.Grid, falloff float32) []voxel.Pos {
	var seeds []voxel.Pos

	for x := 0; x < g.Size; x++ {
		for z := 0; z < g.Size; z++ {
			ray := float32(1)
			for y := g.Height - 1; y >= 0; y-- {
				v := g.At(x, y, z)
				if v.IsActive() && v.Transparency() < ray {
					ray = v.Transparency()
				}
				v.Light = ray
				if ray > falloff {
					seeds = append(seeds, voxel.Pos{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return seeds
}

// Flood relaxes light outward from queue until no neighbour can be
// brightened, and returns the number of updates. A neighbour takes
// current-falloff when that beats its own value; opaque voxels never take
// flood light.
func Flood(g *voxel.Grid, falloff float32, queue []voxel.Pos) int {
	relaxed := 0

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		next := g.At(p.X, p.Y, p.Z).Light - falloff

		for _, d := range Directions {
			n := p.Add(d)
			if !g.InBounds(n.X, n.Y, n.Z) {
				continue
			}
			nv := g.At(n.X, n.Y, n.Z)
			if nv.Transparency() <= 0 || nv.Light >= next {
				continue
			}
			nv.Light = next
			relaxed++
			if next > falloff {
				queue = append(queue, n)
			}
		}
	}
	return relaxed
}
