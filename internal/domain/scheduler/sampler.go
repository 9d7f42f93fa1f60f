package scheduler

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sampler draws uniform samples without replacement from card ID lists.
//
// The randomness source is injected at construction so callers can seed it
// for reproducible output; math/rand sources are not safe for concurrent
// use, so the Sampler serializes access with its own mutex.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a Sampler backed by the given source.
// If src is nil, a time-seeded source is used.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Sampler{rng: rand.New(src)}
}

// Sample returns a uniform sample without replacement of min(k, len(ids))
// IDs. The result is a permutation of the chosen subset; no particular order
// is guaranteed. k of zero yields an empty (non-nil) slice. The input slice
// is never modified.
func (s *Sampler) Sample(ids []uuid.UUID, k int) []uuid.UUID {
	if k > len(ids) {
		k = len(ids)
	}
	if k <= 0 {
		return []uuid.UUID{}
	}

	shuffled := make([]uuid.UUID, len(ids))
	copy(shuffled, ids)

	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	return shuffled[:k]
}
