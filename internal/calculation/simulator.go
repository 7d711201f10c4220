package calculation

import "github.com/rpgo/mcplanner/internal/domain"

// PathSimulator produces one simulated path per call. Implementations build
// their own generator from seed, so calls never share random state.
type PathSimulator interface {
	SimulatePath(seed uint32) domain.Path
}

// PathFunc adapts an ordinary function to a PathSimulator
type PathFunc func(seed uint32) domain.Path

func (f PathFunc) SimulatePath(seed uint32) domain.Path { return f(seed) }
