// Package sampler provides uniform random selection with per-category,
// session-scoped uniqueness.
//
// A Sampler keeps one exclusion set per category. Unique never returns a value
// the category has already produced until every value of the pool has been
// produced once; at that point the set is cleared and the cycle starts over.
// Memory stays bounded by the pool size and repeated calls see full variety.
//
//	s := sampler.New()
//	a, _ := s.Unique("state.name", []string{"Lagos", "Oyo"})
//	b, _ := s.Unique("state.name", []string{"Lagos", "Oyo"}) // b != a
//	c, _ := s.Unique("state.name", []string{"Lagos", "Oyo"}) // history reset, c is either
//
// Randomness comes from math/rand/v2 and is not suitable for secrets. Use
// WithSeed for reproducible runs and tests.
//
// All methods are safe for concurrent use. Separate Sampler instances share
// no state.
package sampler
