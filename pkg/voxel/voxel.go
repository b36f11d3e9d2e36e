package voxel

// Type classifies the material of a voxel.
type Type uint8

const (
	Air Type = iota
	Stone
	Dirt
	Grass
)

// transparency holds the fraction of incoming light each type lets through.
var transparency = [...]float32{
	Air:   1,
	Stone: 0,
	Dirt:  0,
	Grass: 0,
}

var typeNames = [...]string{
	Air:   "air",
	Stone: "stone",
	Dirt:  "dirt",
	Grass: "grass",
}

// Transparency returns the per-type light transmission in [0,1].
// Unknown types are treated as opaque.
func (t Type) Transparency() float32 {
	if int(t) < len(transparency) {
		return transparency[t]
	}
	return 0
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Pos is an integer position local to a chunk.
type Pos struct{ X, Y, Z int }

// Add returns p offset by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{p.X + d.X, p.Y + d.Y, p.Z + d.Z}
}

// Voxel is one cell of a chunk grid. The zero value is an inactive Air voxel
// with no light, which is also what out-of-bounds lookups return.
type Voxel struct {
	Pos   Pos
	Type  Type
	Light float32 // global light percentage in [0,1]
}

// IsActive reports whether the voxel occupies space.
func (v Voxel) IsActive() bool { return v.Type != Air }

// Transparency returns the light transmission of the voxel's type.
func (v Voxel) Transparency() float32 { return v.Type.Transparency() }
