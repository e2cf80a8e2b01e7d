package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// New returns a Generator for the seed
// A seed of zero returns the crypto generator, which is what live tables should use.
// Any other seed returns a deterministic generator suitable for replays and tests.
func New(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
