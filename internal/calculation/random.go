package calculation

// RandomSource produces uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

// Mulberry32 is a 32-bit mixing generator. The same seed yields the same
// sequence on every platform; not safe for concurrent use.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 creates a generator seeded with seed
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 advances the state and returns the next raw 32-bit output
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Float64 returns the next value in [0, 1)
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296.0
}
