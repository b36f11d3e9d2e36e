package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OCharnyshevich/voxelcore/pkg/voxel"
)

// TileSize is the UV extent of one tile in the 4×4 texture atlas.
const TileSize = 0.25

var (
	tileGrassTop  = mgl32.Vec2{0, 0.75}
	tileDirt      = mgl32.Vec2{0.25, 0.75}
	tileGrassSide = mgl32.Vec2{0, 0.5}
	tileStone     = mgl32.Vec2{0.25, 0.5}
)

// atlas maps (type, face) to the lower-left corner of its tile. Types
// without an entry use tile (0,0).
var atlas = map[voxel.Type][6]mgl32.Vec2{
	voxel.Grass: {
		Top:    tileGrassTop,
		Bottom: tileDirt,
		Left:   tileGrassSide,
		Right:  tileGrassSide,
		Front:  tileGrassSide,
		Back:   tileGrassSide,
	},
	voxel.Dirt:  {tileDirt, tileDirt, tileDirt, tileDirt, tileDirt, tileDirt},
	voxel.Stone: {tileStone, tileStone, tileStone, tileStone, tileStone, tileStone},
}

// TileOffset returns the atlas tile used for face f of a voxel of type t.
func TileOffset(t voxel.Type, f Face) mgl32.Vec2 {
	tiles, ok := atlas[t]
	if !ok {
		return mgl32.Vec2{}
	}
	return tiles[f]
}

// FaceUVs returns the UV quad for face f of type t, matching the corner
// order of the face.
func FaceUVs(t voxel.Type, f Face) [4]mgl32.Vec2 {
	o := TileOffset(t, f)
	return [4]mgl32.Vec2{
		{o[0], o[1]},
		{o[0] + TileSize, o[1]},
		{o[0] + TileSize, o[1] + TileSize},
		{o[0], o[1] + TileSize},
	}
}
