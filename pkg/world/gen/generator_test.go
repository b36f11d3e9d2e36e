package gen

import (
	"math"
	"testing"

	"github.com/OCharnyshevich/voxelcore/pkg/voxel"
	"github.com/OCharnyshevich/voxelcore/pkg/world/curve"
	"github.com/OCharnyshevich/voxelcore/pkg/world/noise"
)

func newCurve(t *testing.T, seed int64) *CurveGenerator {
	t.Helper()
	g, err := NewCurveGenerator(seed, 16, DefaultCurveConfig())
	if err != nil {
		t.Fatalf("NewCurveGenerator: %v", err)
	}
	return g
}

func TestGeneratorsDeterministic(t *testing.T) {
	origins := []Origin{{0, 0, 0}, {16, 128, -32}, {-48, 96, 80}}

	for _, kind := range []string{KindCurve, KindSimple, KindFlat} {
		g1, err := New(kind, 42, Params{MaxHeight: 16, Curve: DefaultCurveConfig(), Simple: DefaultSimpleConfig()})
		if err != nil {
			t.Fatalf("New(%q): %v", kind, err)
		}
		g2, _ := New(kind, 42, Params{MaxHeight: 16, Curve: DefaultCurveConfig(), Simple: DefaultSimpleConfig()})

		for _, o := range origins {
			a := g1.Generate(o, 16, 16)
			b := g2.Generate(o, 16, 16)
			if !a.Equal(b) {
				t.Errorf("%s: Generate(%+v) differs between runs", kind, o)
			}
			if again := g1.Generate(o, 16, 16); !a.Equal(again) {
				t.Errorf("%s: repeated Generate(%+v) on one generator differs", kind, o)
			}
		}
	}
}

func TestGenerateShape(t *testing.T) {
	g := newCurve(t, 1)
	grid := g.Generate(Origin{}, 8, 12)
	if grid.Size != 8 || grid.Height != 12 {
		t.Fatalf("grid shape = %dx%d, want 8x12", grid.Size, grid.Height)
	}
}

func TestChunkSeamsAgree(t *testing.T) {
	// A voxel must classify the same no matter which chunk generates it.
	g := newCurve(t, 7)
	whole := g.Generate(Origin{0, 120, 0}, 32, 16)
	part := g.Generate(Origin{16, 120, 16}, 16, 16)

	for y := 0; y < 16; y++ {
		for z := 0; z < 16; z++ {
			for x := 0; x < 16; x++ {
				if got, want := part.Get(x, y, z).Type, whole.Get(x+16, y, z+16).Type; got != want {
					t.Fatalf("voxel (%d,%d,%d) = %s, want %s", x+16, y+120, z+16, got, want)
				}
			}
		}
	}
}

func TestCurveGeneratorMatchesHeight(t *testing.T) {
	g := newCurve(t, 99)
	o := Origin{X: 32, Y: 100, Z: -16}
	grid := g.Generate(o, 16, 64)

	for x := 0; x < 16; x += 5 {
		for z := 0; z < 16; z += 5 {
			for y := 0; y < 64; y++ {
				wx, wy, wz := o.X+x, o.Y+y, o.Z+z
				h := g.HeightAt(wx, wy, wz)
				got := grid.Get(x, y, z).Type
				if float64(wy) > h && got != voxel.Air {
					t.Fatalf("(%d,%d,%d) above height %.2f is %s, want air", wx, wy, wz, h, got)
				}
				if float64(wy) <= h && got == voxel.Air && !g.caves.Open(wx, wy, wz) {
					t.Fatalf("(%d,%d,%d) under height %.2f is air without a cave", wx, wy, wz, h)
				}
			}
		}
	}
}

func TestCurveConfigValidate(t *testing.T) {
	cfg := DefaultCurveConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg.MountainCurve = nil
	if _, err := NewCurveGenerator(1, 16, cfg); err == nil {
		t.Error("missing mountain curve should fail")
	}

	cfg = DefaultCurveConfig()
	cfg.VerticalSquash = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero vertical squash should fail")
	}
}

func TestSampleUsesCurves(t *testing.T) {
	cfg := DefaultCurveConfig()
	cfg.MountainCurve, _ = curve.Linear([2]float64{0, 0.25}, [2]float64{1, 0.25})
	cfg.BiomeCurve, _ = curve.Linear([2]float64{0, 0}, [2]float64{1, 2})
	g, err := NewCurveGenerator(3, 16, cfg)
	if err != nil {
		t.Fatalf("NewCurveGenerator: %v", err)
	}

	col := g.Sample(10, -20)
	if diff := col.Mountain - 0.25; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Mountain = %v, want 0.25", col.Mountain)
	}
	if diff := col.BiomeFactor - 2*col.Biome; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("BiomeFactor = %v, want %v", col.BiomeFactor, 2*col.Biome)
	}
	if col.Detail < 0 || col.Detail > 1/cfg.DetailDivisor {
		t.Errorf("Detail = %v, out of [0,%v]", col.Detail, 1/cfg.DetailDivisor)
	}
}

func TestClassifyColumn(t *testing.T) {
	tests := []struct {
		wy, surface float64
		want        voxel.Type
	}{
		{11, 10.5, voxel.Air},
		{10, 10.5, voxel.Grass},
		{9, 10.5, voxel.Dirt},
		{8, 10.5, voxel.Dirt},
		{7, 10.5, voxel.Stone},
		{10, 10, voxel.Stone}, // exactly on the surface stays stone
		{9, 10, voxel.Dirt},
		{7, 10, voxel.Dirt},
		{6, 10, voxel.Stone},
	}
	for _, tt := range tests {
		if got := classifyColumn(tt.wy, tt.surface, 3, 1); got != tt.want {
			t.Errorf("classifyColumn(%v, %v) = %s, want %s", tt.wy, tt.surface, got, tt.want)
		}
	}
}

func TestCaveRegimes(t *testing.T) {
	cc := NewCaveCarver(0, DefaultCaveConfig())
	tests := []struct {
		v, wy float64
		want  bool
	}{
		{0.5, 50, true},   // deep, over the low threshold
		{0.4, 50, false},  // deep, under the low threshold
		{0.5, 200, false}, // shallow needs the high threshold
		{0.85, 200, true},
		{0.5, 110, true},  // ceiling at 100 + 0.5*20 = 110
		{0.5, 111, false}, // just above it
	}
	for _, tt := range tests {
		if got := cc.open(tt.v, tt.wy); got != tt.want {
			t.Errorf("open(%v, %v) = %v, want %v", tt.v, tt.wy, got, tt.want)
		}
	}
}

func TestSimpleGeneratorColumns(t *testing.T) {
	g := NewSimpleGenerator(5, DefaultSimpleConfig())
	grid := g.Generate(Origin{}, 16, 16)

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			h := int(g.HeightAt(x, z))
			for y := 0; y < 16; y++ {
				want := voxel.Dirt
				switch {
				case y > h:
					want = voxel.Air
				case y == h:
					want = voxel.Grass
				}
				if got := grid.Get(x, y, z).Type; got != want {
					t.Fatalf("(%d,%d,%d) = %s, want %s (height %d)", x, y, z, got, want, h)
				}
			}
		}
	}
}

func TestFlatGeneratorLayers(t *testing.T) {
	g := NewFlatGenerator(0)
	grid := g.Generate(Origin{}, 4, 8)

	tests := []struct {
		y    int
		want voxel.Type
	}{
		{0, voxel.Stone},
		{1, voxel.Stone},
		{2, voxel.Stone},
		{3, voxel.Dirt},
		{4, voxel.Grass},
		{5, voxel.Air},
		{7, voxel.Air},
	}
	for _, tt := range tests {
		if got := grid.Get(1, tt.y, 2).Type; got != tt.want {
			t.Errorf("y=%d: got %s, want %s", tt.y, got, tt.want)
		}
	}
	if h := g.HeightAt(0, 0); h != 4 {
		t.Errorf("HeightAt = %v, want 4", h)
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New("islands", 0, Params{}); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestDifferentSeedsDifferentTerrain(t *testing.T) {
	g1 := NewSimpleGenerator(1, DefaultSimpleConfig())
	g2 := NewSimpleGenerator(2, DefaultSimpleConfig())
	if g1.Generate(Origin{}, 16, 16).Equal(g2.Generate(Origin{}, 16, 16)) {
		t.Error("different seeds should produce different terrain")
	}
}

func TestSimpleHeightLayersOctaves(t *testing.T) {
	cfg := DefaultSimpleConfig()
	cfg.Octaves = 4
	g := NewSimpleGenerator(3, cfg)
	field := noise.NewOpenSimplex(3)

	for wx := -20; wx < 20; wx += 3 {
		for wz := -20; wz < 20; wz += 5 {
			n := noise.Octave2D(field, float64(wx)*cfg.Frequency, float64(wz)*cfg.Frequency, cfg.Octaves, cfg.Persistence)
			want := math.Floor(cfg.BaseHeight + n*cfg.Amplitude)
			if got := g.HeightAt(wx, wz); got != want {
				t.Fatalf("HeightAt(%d, %d) = %v, want %v", wx, wz, got, want)
			}
		}
	}
}

func TestZeroOctavesSampleOneLayer(t *testing.T) {
	one := DefaultSimpleConfig()
	one.Octaves = 1
	zero := DefaultSimpleConfig()
	zero.Octaves = 0

	a, b := NewSimpleGenerator(8, one), NewSimpleGenerator(8, zero)
	for wx := 0; wx < 32; wx++ {
		if a.HeightAt(wx, 7) != b.HeightAt(wx, 7) {
			t.Fatalf("HeightAt(%d, 7) differs between 0 and 1 octaves", wx)
		}
	}

	caves := DefaultCaveConfig()
	caves.Octaves = 0
	c0, c1 := NewCaveCarver(8, caves), NewCaveCarver(8, DefaultCaveConfig())
	for wy := 0; wy < 32; wy++ {
		if c0.Value(4, wy, 9) != c1.Value(4, wy, 9) {
			t.Fatalf("cave Value at y=%d differs between 0 and 1 octaves", wy)
		}
	}
}
