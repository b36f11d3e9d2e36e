// Package curve implements piecewise response curves used to remap noise
// into terrain factors.
package curve

import (
	"errors"
	"fmt"
	"sort"
)

// Key is one control point of a curve. Tangents are slopes (dValue/dTime)
// on either side of the key.
type Key struct {
	Time       float64 `json:"time"`
	Value      float64 `json:"value"`
	InTangent  float64 `json:"in_tangent"`
	OutTangent float64 `json:"out_tangent"`
}

// Curve evaluates a cubic Hermite spline through its keys. Outside the
// key range the curve is clamped to the first or last value.
type Curve struct {
	Keys []Key `json:"keys"`
}

var ErrNoKeys = errors.New("curve has no keys")

// New builds a curve from keys, sorting them by time.
func New(keys ...Key) (*Curve, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	c := &Curve{Keys: append([]Key(nil), keys...)}
	c.sort()
	for i := 1; i < len(c.Keys); i++ {
		if c.Keys[i].Time == c.Keys[i-1].Time {
			return nil, fmt.Errorf("duplicate key time %v", c.Keys[i].Time)
		}
	}
	return c, nil
}

// Linear builds a curve through points with tangents chosen so every
// segment is a straight line. Points are (time, value) pairs.
func Linear(points ...[2]float64) (*Curve, error) {
	keys := make([]Key, len(points))
	for i, p := range points {
		keys[i] = Key{Time: p[0], Value: p[1]}
	}
	c, err := New(keys...)
	if err != nil {
		return nil, err
	}
	for i := range c.Keys {
		if i > 0 {
			c.Keys[i].InTangent = slope(c.Keys[i-1], c.Keys[i])
		}
		if i < len(c.Keys)-1 {
			c.Keys[i].OutTangent = slope(c.Keys[i], c.Keys[i+1])
		}
	}
	return c, nil
}

// Validate checks that the curve has keys in strictly increasing time.
func (c *Curve) Validate() error {
	if c == nil || len(c.Keys) == 0 {
		return ErrNoKeys
	}
	for i := 1; i < len(c.Keys); i++ {
		if c.Keys[i].Time <= c.Keys[i-1].Time {
			return fmt.Errorf("key %d: time %v not after %v", i, c.Keys[i].Time, c.Keys[i-1].Time)
		}
	}
	return nil
}

// Evaluate returns the curve value at t.
func (c *Curve) Evaluate(t float64) float64 {
	keys := c.Keys
	if len(keys) == 0 {
		return 0
	}
	if t <= keys[0].Time {
		return keys[0].Value
	}
	last := keys[len(keys)-1]
	if t >= last.Time {
		return last.Value
	}

	// First key strictly after t; the segment is [i-1, i].
	i := sort.Search(len(keys), func(i int) bool { return keys[i].Time > t })
	k0, k1 := keys[i-1], keys[i]

	dt := k1.Time - k0.Time
	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}

func (c *Curve) sort() {
	sort.Slice(c.Keys, func(i, j int) bool { return c.Keys[i].Time < c.Keys[j].Time })
}

func slope(a, b Key) float64 {
	return (b.Value - a.Value) / (b.Time - a.Time)
}
