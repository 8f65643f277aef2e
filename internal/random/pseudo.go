package random

import (
	"errors"
	"math/rand"
	"time"
)

// pseudoSource implements Source over math/rand
type pseudoSource struct {
	rng *rand.Rand
}

// NewPseudo creates a time-seeded pseudo-random source
func NewPseudo() Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a pseudo-random source with a fixed seed,
// useful for reproducible runs
func NewSeeded(seed int64) Source {
	return &pseudoSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn implements Source.Intn
func (s *pseudoSource) Intn(n int) (int, error) {
	if n < 1 {
		return 0, errors.New("invalid draw bound")
	}
	return s.rng.Intn(n), nil
}

// Sample implements Source.Sample
func (s *pseudoSource) Sample(n, k int) ([]int, error) {
	if n < 1 {
		return nil, errors.New("invalid sample bound")
	}
	if k < 0 || k > n {
		return nil, errors.New("invalid sample size")
	}
	return s.rng.Perm(n)[:k], nil
}
