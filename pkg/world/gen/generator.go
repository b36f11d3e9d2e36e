package gen

import (
	"fmt"

	"github.com/OCharnyshevich/voxelcore/pkg/voxel"
)

// Origin is the world position of a chunk's (0,0,0) voxel.
type Origin struct{ X, Y, Z int }

// Generator fills a chunk-sized grid deterministically from world position.
// Implementations hold no mutable state, so one Generator may serve many
// chunks concurrently.
type Generator interface {
	Generate(o Origin, size, height int) *voxel.Grid
}

// Kinds accepted by New.
const (
	KindCurve  = "curve"
	KindSimple = "simple"
	KindFlat   = "flat"
)

// Params carries everything New needs besides the seed.
type Params struct {
	MaxHeight float64
	Curve     CurveConfig
	Simple    SimpleConfig
}

// New returns the generator registered under kind.
func New(kind string, seed int64, p Params) (Generator, error) {
	switch kind {
	case KindCurve, "":
		return NewCurveGenerator(seed, p.MaxHeight, p.Curve)
	case KindSimple:
		return NewSimpleGenerator(seed, p.Simple), nil
	case KindFlat:
		return NewFlatGenerator(seed), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", kind)
	}
}
