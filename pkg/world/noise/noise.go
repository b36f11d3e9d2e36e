// Package noise provides deterministic coherent noise for terrain synthesis.
//
// Every sampler is a pure function of its seed and the sample coordinates,
// so chunks generated independently line up at their borders.
package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sampler is a source of 2D and 3D coherent noise in [-1, 1].
type Sampler interface {
	Noise2D(x, y float64) float64
	Noise3D(x, y, z float64) float64
}

var _ Sampler = (*OpenSimplex)(nil)

// OpenSimplex adapts the OpenSimplex implementation to Sampler. Each seed
// gives an independent field.
type OpenSimplex struct {
	n opensimplex.Noise
}

// NewOpenSimplex creates an OpenSimplex sampler for seed.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.New(seed)}
}

func (o *OpenSimplex) Noise2D(x, y float64) float64 { return clamp(o.n.Eval2(x, y), -1, 1) }

func (o *OpenSimplex) Noise3D(x, y, z float64) float64 { return clamp(o.n.Eval3(x, y, z), -1, 1) }

// Normalized2D samples s at (x*freq, y*freq) and maps the result to [0, 1].
func Normalized2D(s Sampler, x, y, freq float64) float64 {
	return (s.Noise2D(x*freq, y*freq) + 1) / 2
}

// Pixel3D samples s at integer coordinates scaled by freq and maps the
// result to the byte range [0, 256).
func Pixel3D(s Sampler, x, y, z int, freq float64) float64 {
	v := (s.Noise3D(float64(x)*freq, float64(y)*freq, float64(z)*freq) + 1) * 128
	return clamp(v, 0, 255.999)
}

// Octave2D layers octaves of 2D noise, doubling frequency and scaling
// amplitude by persistence each step. Returns a value in [-1, 1].
func Octave2D(s Sampler, x, y float64, octaves int, persistence float64) float64 {
	var total, maxVal float64
	freq, amp := 1.0, 1.0
	for range octaves {
		total += s.Noise2D(x*freq, y*freq) * amp
		maxVal += amp
		amp *= persistence
		freq *= 2
	}
	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}

// Octave3D is the 3D counterpart of Octave2D.
func Octave3D(s Sampler, x, y, z float64, octaves int, persistence float64) float64 {
	var total, maxVal float64
	freq, amp := 1.0, 1.0
	for range octaves {
		total += s.Noise3D(x*freq, y*freq, z*freq) * amp
		maxVal += amp
		amp *= persistence
		freq *= 2
	}
	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
