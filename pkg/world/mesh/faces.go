package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OCharnyshevich/voxelcore/pkg/voxel"
)

// Face identifies one side of a voxel.
type Face uint8

const (
	Top Face = iota
	Bottom
	Left
	Right
	Front
	Back
)

var faceNames = [...]string{"top", "bottom", "left", "right", "front", "back"}

func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return "unknown"
}

// faceDef is the fixed geometry of one face of the unit cube at the origin.
// Corners are listed in emission order; (c1-c0)×(c2-c0) points along normal.
type faceDef struct {
	neighbor voxel.Pos
	normal   mgl32.Vec3
	corners  [4]mgl32.Vec3
}

var faces = [6]faceDef{
	Top: {
		neighbor: voxel.Pos{Y: 1},
		normal:   mgl32.Vec3{0, 1, 0},
		corners:  [4]mgl32.Vec3{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	},
	Bottom: {
		neighbor: voxel.Pos{Y: -1},
		normal:   mgl32.Vec3{0, -1, 0},
		corners:  [4]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	},
	Left: {
		neighbor: voxel.Pos{X: -1},
		normal:   mgl32.Vec3{-1, 0, 0},
		corners:  [4]mgl32.Vec3{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	},
	Right: {
		neighbor: voxel.Pos{X: 1},
		normal:   mgl32.Vec3{1, 0, 0},
		corners:  [4]mgl32.Vec3{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
	},
	Front: {
		neighbor: voxel.Pos{Z: 1},
		normal:   mgl32.Vec3{0, 0, 1},
		corners:  [4]mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	},
	Back: {
		neighbor: voxel.Pos{Z: -1},
		normal:   mgl32.Vec3{0, 0, -1},
		corners:  [4]mgl32.Vec3{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
	},
}

// Neighbor returns the offset of the voxel a face looks at.
func (f Face) Neighbor() voxel.Pos { return faces[f].neighbor }

// Normal returns the outward unit normal of f.
func (f Face) Normal() mgl32.Vec3 { return faces[f].normal }

// Corners returns the four corners of f for the voxel at p, in emission order.
func (f Face) Corners(p voxel.Pos) [4]mgl32.Vec3 {
	base := mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
	var out [4]mgl32.Vec3
	for i, c := range faces[f].corners {
		out[i] = base.Add(c)
	}
	return out
}
