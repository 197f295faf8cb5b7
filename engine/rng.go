package engine

import "math/rand"

// RNG wraps math/rand.Rand with an explicit seed so play-throughs are
// reproducible. Scoundrel consumes randomness exactly once, for the initial
// deck shuffle, so carrying the seed is enough to replay a session.
type RNG struct {
	seed int64
	src  *rand.Rand
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Shuffle randomizes a sequence in place. Satisfies state.Shuffler.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.src.Shuffle(n, swap)
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	return r.src.Intn(n)
}
