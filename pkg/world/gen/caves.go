package gen

import "github.com/OCharnyshevich/voxelcore/pkg/world/noise"

// CaveConfig controls the cave field. A voxel is carved when the field is
// above LowThreshold below the ceiling, or above HighThreshold over it. The
// ceiling sits at Ceiling + value*CeilingAmplitude. Octaves below one
// sample a single layer.
type CaveConfig struct {
	Frequency        float64 `json:"frequency"`
	Octaves          int     `json:"octaves"`
	Persistence      float64 `json:"persistence"`
	VerticalSquash   float64 `json:"vertical_squash"`
	LowThreshold     float64 `json:"low_threshold"`
	HighThreshold    float64 `json:"high_threshold"`
	Ceiling          float64 `json:"ceiling"`
	CeilingAmplitude float64 `json:"ceiling_amplitude"`
}

// DefaultCaveConfig returns the cave settings worlds were generated with.
func DefaultCaveConfig() CaveConfig {
	return CaveConfig{
		Frequency:        0.02,
		Octaves:          1,
		Persistence:      0.5,
		VerticalSquash:   1.5,
		LowThreshold:     0.45,
		HighThreshold:    0.8,
		Ceiling:          100,
		CeilingAmplitude: 20,
	}
}

// CaveCarver decides where caves open.
type CaveCarver struct {
	field noise.Sampler
	cfg   CaveConfig
}

// NewCaveCarver creates a CaveCarver backed by OpenSimplex noise.
func NewCaveCarver(seed int64, cfg CaveConfig) *CaveCarver {
	return &CaveCarver{
		field: noise.NewOpenSimplex(seed + 300),
		cfg:   cfg,
	}
}

// Value samples the cave field at a world voxel.
func (cc *CaveCarver) Value(wx, wy, wz int) float64 {
	f := cc.cfg.Frequency
	y := float64(wy)
	if cc.cfg.VerticalSquash != 0 {
		y /= cc.cfg.VerticalSquash
	}
	return noise.Octave3D(cc.field, float64(wx)*f, y*f, float64(wz)*f, max(cc.cfg.Octaves, 1), cc.cfg.Persistence)
}

// Open reports whether the voxel at world (wx, wy, wz) is carved to air.
func (cc *CaveCarver) Open(wx, wy, wz int) bool {
	return cc.open(cc.Value(wx, wy, wz), float64(wy))
}

// Sparse caves near the surface, larger voids deeper down.
func (cc *CaveCarver) open(v, wy float64) bool {
	ceiling := cc.cfg.Ceiling + v*cc.cfg.CeilingAmplitude
	if wy <= ceiling {
		return v > cc.cfg.LowThreshold
	}
	return v > cc.cfg.HighThreshold
}
