package rules

import "math/rand"

// RandomSource draws a uniformly distributed integer in [0, n)
type RandomSource interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// GlobalRandom returns a RandomSource backed by the math/rand top-level functions,
// safe for concurrent use
func GlobalRandom() RandomSource {
	return globalSource{}
}

// NewSeededRandom returns a RandomSource with its own deterministic stream.
// It must not be shared between goroutines.
func NewSeededRandom(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
