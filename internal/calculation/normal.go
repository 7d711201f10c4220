package calculation

import "math"

// Variate yields one random draw per call
type Variate interface {
	Next() float64
}

// NormalGenerator draws normally distributed values with the polar
// Box-Muller method. Every second call returns the cached spare.
type NormalGenerator struct {
	mean     float64
	stddev   float64
	rng      RandomSource
	spare    float64
	hasSpare bool
}

// NewNormalGenerator wraps rng to produce draws with the given mean and standard deviation
func NewNormalGenerator(mean, stddev float64, rng RandomSource) *NormalGenerator {
	return &NormalGenerator{mean: mean, stddev: stddev, rng: rng}
}

// NewSeededNormalGenerator builds a generator over a fresh Mulberry32 stream.
// A zero seed is replaced by a time-derived one.
func NewSeededNormalGenerator(mean, stddev float64, seed uint32) *NormalGenerator {
	if seed == 0 {
		seed = seedFunc()
	}
	return NewNormalGenerator(mean, stddev, NewMulberry32(seed))
}

// Next returns the next sample.
// The rejection loop has no cap: each trial is accepted with probability pi/4.
func (g *NormalGenerator) Next() float64 {
	if g.hasSpare {
		g.hasSpare = false
		return g.mean + g.stddev*g.spare
	}
	var u, v, s float64
	for {
		u = g.rng.Float64()*2 - 1
		v = g.rng.Float64()*2 - 1
		s = u*u + v*v
		if s > 0 && s < 1 {
			break
		}
	}
	mul := math.Sqrt(-2.0 * math.Log(s) / s)
	g.spare = v * mul
	g.hasSpare = true
	return g.mean + g.stddev*u*mul
}
