package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sequenceSource replays fixed uniform values
type sequenceSource struct {
	values []float64
	pos    int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.pos]
	s.pos++
	return v
}

func TestNormalGeneratorMoments(t *testing.T) {
	const n = 100000
	g := NewNormalGenerator(0, 1, NewMulberry32(2024))

	samples := make([]float64, n)
	sum := 0.0
	for i := range samples {
		samples[i] = g.Next()
		sum += samples[i]
	}
	mean := sum / n

	var m2, m3 float64
	for _, x := range samples {
		d := x - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	stddev := math.Sqrt(m2)
	skew := m3 / math.Pow(stddev, 3)

	assert.InDelta(t, 0, mean, 0.05, "sample mean")
	assert.InDelta(t, 1, stddev, 0.05, "sample stddev")
	assert.InDelta(t, 0, skew, 0.05, "sample skewness")
}

func TestNormalGeneratorScaling(t *testing.T) {
	const n = 50000
	g := NewNormalGenerator(0.07, 0.15, NewMulberry32(99))
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := g.Next()
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	stddev := math.Sqrt(sumSq/n - mean*mean)
	assert.InDelta(t, 0.07, mean, 0.005)
	assert.InDelta(t, 0.15, stddev, 0.005)
}

func TestNormalGeneratorSpareAlternation(t *testing.T) {
	// First pair (0.9, 0.9) maps to u=v=0.8, s=1.28 and is rejected.
	// Second pair (0.75, 0.5) maps to u=0.5, v=0, s=0.25.
	src := &sequenceSource{values: []float64{0.9, 0.9, 0.75, 0.5}}
	g := NewNormalGenerator(10, 2, src)

	mul := math.Sqrt(-2 * math.Log(0.25) / 0.25)
	first := g.Next()
	assert.InDelta(t, 10+2*0.5*mul, first, 1e-12)
	assert.Equal(t, 4, src.pos, "rejection loop should consume both pairs")

	second := g.Next()
	assert.InDelta(t, 10.0, second, 1e-12, "spare is v*mul with v=0")
	assert.Equal(t, 4, src.pos, "spare must not draw from the source")
}

func TestNormalGeneratorZeroStddev(t *testing.T) {
	g := NewNormalGenerator(0.05, 0, NewMulberry32(1))
	for i := 0; i < 10; i++ {
		assert.Equal(t, 0.05, g.Next())
	}
}

func TestSeededNormalGeneratorReproducible(t *testing.T) {
	a := NewSeededNormalGenerator(0, 1, 77)
	b := NewSeededNormalGenerator(0, 1, 77)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestSeededNormalGeneratorUsesSeedFunc(t *testing.T) {
	orig := seedFunc
	defer SetSeedFunc(orig)
	SetSeedFunc(func() uint32 { return 42 })

	a := NewSeededNormalGenerator(0, 1, 0)
	b := NewNormalGenerator(0, 1, NewMulberry32(42))
	for i := 0; i < 10; i++ {
		assert.Equal(t, b.Next(), a.Next())
	}
}
