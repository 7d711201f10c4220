package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// seedFunc returns a time-derived 32-bit seed (override for deterministic Monte Carlo tests).
var seedFunc = func() uint32 {
	s := uint32(nowFunc().UnixMilli())
	if s == 0 {
		s = 1
	}
	return s
}

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() uint32) { seedFunc = f }

// DeriveSeed mixes a run seed and a path index into the seed of that path,
// so path i sees the same stream however paths are scheduled.
func DeriveSeed(base uint32, index int) uint32 {
	x := uint64(base) ^ (uint64(index) + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	s := uint32(x) ^ uint32(x>>32)
	if s == 0 {
		s = 0x6D2B79F5
	}
	return s
}
