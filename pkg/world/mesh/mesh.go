// Package mesh turns a lit voxel grid into render-ready buffers holding only
// the faces that border empty space or the chunk edge.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OCharnyshevich/voxelcore/pkg/voxel"
)

// Buffers are parallel vertex streams for one chunk mesh. Every four
// consecutive vertices form one quad, drawn as two triangles. Colour alpha
// carries the light that reaches the face.
type Buffers struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	UVs      []mgl32.Vec2
	Colors   []mgl32.Vec4
	Indices  []uint32
}

// FaceCount returns the number of quads in the buffers.
func (b *Buffers) FaceCount() int { return len(b.Vertices) / 4 }

// Empty reports whether there is nothing to draw.
func (b *Buffers) Empty() bool { return len(b.Vertices) == 0 }

// Reset truncates all streams, keeping their capacity.
func (b *Buffers) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Normals = b.Normals[:0]
	b.UVs = b.UVs[:0]
	b.Colors = b.Colors[:0]
	b.Indices = b.Indices[:0]
}

// Extract builds a new mesh for g.
func Extract(g *voxel.Grid) *Buffers {
	b := &Buffers{}
	ExtractInto(g, b)
	return b
}

// ExtractInto rebuilds b from g, reusing its storage.
// Faces on the chunk boundary are always emitted.
func ExtractInto(g *voxel.Grid, b *Buffers) {
	b.Reset()

	for x := 0; x < g.Size; x++ {
		for y := 0; y < g.Height; y++ {
			for z := 0; z < g.Size; z++ {
				v := g.Get(x, y, z)
				if !v.IsActive() {
					continue
				}
				p := voxel.Pos{X: x, Y: y, Z: z}
				for f := Top; f <= Back; f++ {
					n := p.Add(f.Neighbor())
					neighbor := g.Get(n.X, n.Y, n.Z)
					if neighbor.IsActive() {
						continue
					}
					b.addFace(p, v.Type, f, neighbor.Light)
				}
			}
		}
	}
}

// addFace appends one quad lit by the light of the voxel it faces.
func (b *Buffers) addFace(p voxel.Pos, t voxel.Type, f Face, light float32) {
	color := mgl32.Vec4{0, 0, 0, light}
	normal := f.Normal()
	uvs := FaceUVs(t, f)

	for i, c := range f.Corners(p) {
		b.Vertices = append(b.Vertices, c)
		b.Normals = append(b.Normals, normal)
		b.UVs = append(b.UVs, uvs[i])
		b.Colors = append(b.Colors, color)
	}

	n := uint32(len(b.Vertices))
	b.Indices = append(b.Indices,
		n-4, n-3, n-2,
		n-4, n-2, n-1,
	)
}
