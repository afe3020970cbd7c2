package sampler

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

const (
	digits  = "0123456789"
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Sampler draws values uniformly at random and remembers, per category, which
// values Unique has already returned. It is safe for concurrent use: a single
// mutex serialises the exclusion-set bookkeeping and every random draw.
type Sampler struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	seen    map[string]map[string]struct{}
	onReset func(category string, poolSize int)
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSeed makes the sampler deterministic.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithResetHook registers a callback invoked after a category's exclusion set
// was cleared because every pool value had been returned.
func WithResetHook(fn func(category string, poolSize int)) Option {
	return func(s *Sampler) {
		s.onReset = fn
	}
}

// New returns a sampler with an empty history.
func New(opts ...Option) *Sampler {
	s := &Sampler{
		rnd:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		seen: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Unique draws a value from pool that category has not returned yet.
// Duplicates in pool count once. When every value has been returned the
// category's history is cleared and the draw runs against the full pool.
func (s *Sampler) Unique(category string, pool []string) (string, error) {
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyPool, category)
	}

	s.mu.Lock()
	seen, ok := s.seen[category]
	if !ok {
		seen = make(map[string]struct{})
		s.seen[category] = seen
	}

	distinct := make([]string, 0, len(pool))
	dedup := make(map[string]struct{}, len(pool))
	available := make([]string, 0, len(pool))
	for _, v := range pool {
		if _, dup := dedup[v]; dup {
			continue
		}
		dedup[v] = struct{}{}
		distinct = append(distinct, v)
		if _, used := seen[v]; !used {
			available = append(available, v)
		}
	}

	reset := len(available) == 0
	if reset {
		clear(seen)
		available = distinct
	}

	v := available[s.rnd.IntN(len(available))]
	seen[v] = struct{}{}
	hook := s.onReset
	s.mu.Unlock()

	if reset && hook != nil {
		hook(category, len(distinct))
	}
	return v, nil
}

// Pick returns a uniformly chosen element of items without tracking history.
func Pick[T any](s *Sampler, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmptyPool
	}
	return items[s.IntN(len(items))], nil
}

// Reset clears the history of the given categories, or of all categories when
// none are given.
func (s *Sampler) Reset(categories ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(categories) == 0 {
		s.seen = make(map[string]map[string]struct{})
		return
	}
	for _, c := range categories {
		delete(s.seen, c)
	}
}

// Seen returns how many values category has returned since its last reset.
func (s *Sampler) Seen(category string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen[category])
}

// IntN returns a uniform int in [0, n). It panics if n <= 0.
func (s *Sampler) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// Between returns a uniform int in [lo, hi].
func (s *Sampler) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.IntN(hi-lo+1)
}

// Float64Range returns a uniform float64 in [lo, hi).
func (s *Sampler) Float64Range(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rnd.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (s *Sampler) Chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() < p
}

// Digits returns n random decimal digits.
func (s *Sampler) Digits(n int) string {
	return s.fromAlphabet(digits, n)
}

// Letters returns n random uppercase ASCII letters.
func (s *Sampler) Letters(n int) string {
	return s.fromAlphabet(letters, n)
}

func (s *Sampler) fromAlphabet(alphabet string, n int) string {
	if n <= 0 {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(alphabet[s.rnd.IntN(len(alphabet))])
	}
	return b.String()
}
