package shuffle

import (
	"math/rand/v2"
	"sync"
)

// Source supplies uniform random permutations. Perm must return a uniformly
// random permutation of the integers [0, k).
//
// A Source is the execution-context hook for randomness: tests inject a
// seeded source for determinism, and callers with their own entropy
// management (per-worker generators, reproducible training runs) supply
// theirs. Implementations used from multiple goroutines must be
// thread-safe.
type Source interface {
	Perm(k int) []int
}

// pcgSource generates permutations from a PCG generator behind a mutex.
type pcgSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ Source = (*pcgSource)(nil)

// NewPCGSource returns a thread-safe Source seeded with the given values.
// The same seeds always yield the same permutation stream.
func NewPCGSource(seed1, seed2 uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewRandomSource returns a thread-safe Source with random seeds.
func NewRandomSource() Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *pcgSource) Perm(k int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Perm(k)
}
