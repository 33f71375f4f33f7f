// internal/utils/prng.go
package utils

import (
	"math/rand"
	"sync"
	"time"

	"go-rune-halls/internal/defs"
)

// PRNGService wraps math/rand so the whole session draws from one source.
// Tests pass a fixed seed; the game passes 0 for a time-based seed.
type PRNGService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random integer in [0, n). Returns 0 for n <= 0.
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Int63 returns a non-negative 63-bit integer, used to seed noise generators.
func (s *PRNGService) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63()
}

// ChooseWeighted picks an entry id with probability proportional to its weight.
// Returns "" for an empty table; a table whose weights sum to zero yields the first id.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight <= 0 {
		return entries[0].ID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.ID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].ID
}
