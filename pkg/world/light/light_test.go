package light

import (
	"math"
	"testing"

	"github.com/OCharnyshevich/voxelcore/pkg/voxel"
	"github.com/OCharnyshevich/voxelcore/pkg/world/gen"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-6 }

func TestSingleOpaqueColumn(t *testing.T) {
	g := voxel.NewGrid(1, 10)
	g.SetType(0, 6, 0, voxel.Stone)

	Propagate(g, 0.2)

	want := []float32{1, 1, 1, 0, 0, 0, 0, 0, 0, 0} // top to bottom
	for i, w := range want {
		y := g.Height - 1 - i
		if got := g.Get(0, y, 0).Light; got != w {
			t.Errorf("light at y=%d = %v, want %v", y, got, w)
		}
	}
}

func TestOpenGridFullyLit(t *testing.T) {
	g := voxel.NewGrid(2, 2)
	stats := Propagate(g, 0.2)

	if stats.Seeds != 8 {
		t.Errorf("Seeds = %d, want 8", stats.Seeds)
	}
	if stats.Relaxed != 0 {
		t.Errorf("Relaxed = %d, want 0", stats.Relaxed)
	}
	for y := 0; y < 2; y++ {
		for z := 0; z < 2; z++ {
			for x := 0; x < 2; x++ {
				if got := g.Get(x, y, z).Light; got != 1 {
					t.Errorf("light at (%d,%d,%d) = %v, want 1", x, y, z, got)
				}
			}
		}
	}
}

func TestFloodUnderOverhang(t *testing.T) {
	g := voxel.NewGrid(3, 2)
	g.SetType(0, 1, 0, voxel.Stone)

	Propagate(g, 0.2)

	if got := g.Get(0, 0, 0).Light; !near(got, 0.8) {
		t.Errorf("light under overhang = %v, want 0.8", got)
	}
	if got := g.Get(0, 1, 0).Light; got != 0 {
		t.Errorf("light of the overhang itself = %v, want 0", got)
	}
}

func TestFloodAlongTunnel(t *testing.T) {
	// Roof over the whole chunk except one shaft at (0,1,0).
	g := voxel.NewGrid(5, 2)
	for z := 0; z < 5; z++ {
		for x := 0; x < 5; x++ {
			g.SetType(x, 1, z, voxel.Stone)
		}
	}
	g.SetType(0, 1, 0, voxel.Air)

	Propagate(g, 0.25)

	for z := 0; z < 5; z++ {
		for x := 0; x < 5; x++ {
			want := float32(math.Max(0, 1-0.25*float64(x+z)))
			if got := g.Get(x, 0, z).Light; !near(got, want) {
				t.Errorf("floor (%d,0,%d) = %v, want %v", x, z, got, want)
			}
			if x == 0 && z == 0 {
				continue
			}
			if got := g.Get(x, 1, z).Light; got != 0 {
				t.Errorf("roof (%d,1,%d) = %v, want 0", x, z, got)
			}
		}
	}
}

func generated(t *testing.T) *voxel.Grid {
	t.Helper()
	g, err := gen.NewCurveGenerator(11, 16, gen.DefaultCurveConfig())
	if err != nil {
		t.Fatalf("NewCurveGenerator: %v", err)
	}
	return g.Generate(gen.Origin{X: 0, Y: 120, Z: 0}, 16, 32)
}

func TestSweepMonotonicDownColumns(t *testing.T) {
	g := generated(t)
	Sweep(g, 0.1)

	for x := 0; x < g.Size; x++ {
		for z := 0; z < g.Size; z++ {
			prev := float32(1)
			for y := g.Height - 1; y >= 0; y-- {
				l := g.Get(x, y, z).Light
				if l > prev {
					t.Fatalf("column (%d,%d) brightens at y=%d: %v > %v", x, z, y, l, prev)
				}
				prev = l
			}
		}
	}
}

func TestPropagateFixedPoint(t *testing.T) {
	g := generated(t)
	Propagate(g, 0.1)

	before := make([]float32, 0, g.Len())
	for y := 0; y < g.Height; y++ {
		for z := 0; z < g.Size; z++ {
			for x := 0; x < g.Size; x++ {
				before = append(before, g.Get(x, y, z).Light)
			}
		}
	}

	Propagate(g, 0.1)

	i := 0
	for y := 0; y < g.Height; y++ {
		for z := 0; z < g.Size; z++ {
			for x := 0; x < g.Size; x++ {
				if got := g.Get(x, y, z).Light; got != before[i] {
					t.Fatalf("light at (%d,%d,%d) changed: %v -> %v", x, y, z, before[i], got)
				}
				i++
			}
		}
	}
}

func TestLightInRange(t *testing.T) {
	g := generated(t)
	Propagate(g, 0.1)

	for y := 0; y < g.Height; y++ {
		for z := 0; z < g.Size; z++ {
			for x := 0; x < g.Size; x++ {
				v := g.Get(x, y, z)
				if v.Light < 0 || v.Light > 1 {
					t.Fatalf("light at (%d,%d,%d) = %v, out of [0,1]", x, y, z, v.Light)
				}
				if v.Type.Transparency() == 0 && v.Light != 0 {
					t.Fatalf("opaque %s at (%d,%d,%d) lit to %v", v.Type, x, y, z, v.Light)
				}
			}
		}
	}
}
