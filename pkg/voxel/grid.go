package voxel

// Grid is a dense Size×Height×Size block of voxels stored in one slice.
// Index = (y*Size + z)*Size + x, so a horizontal layer is contiguous.
type Grid struct {
	Size   int
	Height int
	cells  []Voxel
}

// NewGrid allocates an all-air grid. Each cell's Pos is filled in.
func NewGrid(size, height int) *Grid {
	g := &Grid{
		Size:   size,
		Height: height,
		cells:  make([]Voxel, size*height*size),
	}
	for y := 0; y < height; y++ {
		for z := 0; z < size; z++ {
			for x := 0; x < size; x++ {
				g.cells[g.Index(x, y, z)].Pos = Pos{x, y, z}
			}
		}
	}
	return g
}

// Index linearises local coordinates. Callers must check InBounds first.
func (g *Grid) Index(x, y, z int) int {
	return (y*g.Size+z)*g.Size + x
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y,z) lies inside the grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Height && z >= 0 && z < g.Size
}

// At returns a pointer to the cell at (x,y,z). It panics when out of range.
func (g *Grid) At(x, y, z int) *Voxel {
	return &g.cells[g.Index(x, y, z)]
}

// Get returns the voxel at (x,y,z), or the zero voxel when out of bounds.
func (g *Grid) Get(x, y, z int) Voxel {
	if !g.InBounds(x, y, z) {
		return Voxel{}
	}
	return g.cells[g.Index(x, y, z)]
}

// SetType sets the type at (x,y,z). Out-of-bounds writes are ignored.
func (g *Grid) SetType(x, y, z int, t Type) {
	if !g.InBounds(x, y, z) {
		return
	}
	g.cells[g.Index(x, y, z)].Type = t
}

// IsActive reports occupancy at (x,y,z); outside the grid is inactive.
func (g *Grid) IsActive(x, y, z int) bool {
	return g.Get(x, y, z).IsActive()
}

// Fill sets every cell to t.
func (g *Grid) Fill(t Type) {
	for i := range g.cells {
		g.cells[i].Type = t
	}
}

// CountActive returns the number of non-air cells.
func (g *Grid) CountActive() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].IsActive() {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same shape and voxel types.
// Light values are ignored.
func (g *Grid) Equal(o *Grid) bool {
	if g.Size != o.Size || g.Height != o.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i].Type != o.cells[i].Type {
			return false
		}
	}
	return true
}
