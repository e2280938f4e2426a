package progression

import (
	"math/rand"
	"sync"
	"time"
)

// Selector chooses one of n templates. Implementations return an index in [0, n).
type Selector interface {
	Choose(n int) int
}

// RandomSelector picks uniformly at random. Safe for concurrent use.
type RandomSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSelector returns a selector seeded with seed, or with the clock when seed is 0
func NewRandomSelector(seed int64) *RandomSelector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSelector{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSelector) Choose(n int) int {
	if n <= 1 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// FixedSelector always picks the same index (clamped into range)
type FixedSelector int

func (f FixedSelector) Choose(n int) int {
	idx := int(f)
	if idx < 0 || n == 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// SelectorFunc adapts a function to the Selector interface
type SelectorFunc func(n int) int

func (f SelectorFunc) Choose(n int) int {
	return f(n)
}
