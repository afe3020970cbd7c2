package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/naijafake/pkg/filter"
	"github.com/dmitrymomot/naijafake/pkg/sampler"
)

// Engine serves lookups and draws over one category of records.
// Records are never modified after New.
type Engine[T filter.Record] struct {
	category string
	records  []T
	vocab    map[string]*filter.Vocabulary
	sampler  *sampler.Sampler
}

// New builds an engine over a copy of records. A nil sampler gets a fresh one.
func New[T filter.Record](category string, records []T, s *sampler.Sampler) *Engine[T] {
	if s == nil {
		s = sampler.New()
	}
	return &Engine[T]{
		category: category,
		records:  slices.Clone(records),
		vocab:    make(map[string]*filter.Vocabulary),
		sampler:  s,
	}
}

// Observe validates predicates on fields against the values seen in the data.
func (e *Engine[T]) Observe(fields ...string) *Engine[T] {
	for _, f := range fields {
		e.vocab[f] = filter.Observe(f, e.records)
	}
	return e
}

// Restrict validates predicates on field against v.
func (e *Engine[T]) Restrict(field string, v *filter.Vocabulary) *Engine[T] {
	if v != nil {
		e.vocab[field] = v.As(field)
	}
	return e
}

func (e *Engine[T]) Category() string { return e.category }
func (e *Engine[T]) Len() int         { return len(e.records) }

// All returns a copy of every record.
func (e *Engine[T]) All() []T {
	return slices.Clone(e.records)
}

// Vocabulary returns the validation vocabulary for field, if any.
func (e *Engine[T]) Vocabulary(field string) (*filter.Vocabulary, bool) {
	v, ok := e.vocab[field]
	return v, ok
}

// Normalize validates every set predicate that has a vocabulary and rewrites
// its value to the canonical spelling. Unset predicates are dropped.
func (e *Engine[T]) Normalize(preds filter.Predicates) (filter.Predicates, error) {
	set := preds.Set()
	out := make(filter.Predicates, 0, len(set))
	for _, p := range set {
		if v, ok := e.vocab[p.Field]; ok {
			c, err := v.Canonical(p.Value)
			if err != nil {
				return nil, err
			}
			p.Value = c
		} else {
			p.Value = strings.TrimSpace(p.Value)
		}
		out = append(out, p)
	}
	return out, nil
}

// Find returns every record matching preds. An empty result is not an error.
func (e *Engine[T]) Find(preds filter.Predicates) ([]T, error) {
	normalized, err := e.Normalize(preds)
	if err != nil {
		return nil, err
	}
	return filter.Apply(e.records, normalized), nil
}

// Get returns one uniformly chosen record matching preds.
func (e *Engine[T]) Get(preds filter.Predicates) (T, error) {
	var zero T
	if len(e.records) == 0 {
		return zero, e.emptyPool()
	}
	normalized, err := e.Normalize(preds)
	if err != nil {
		return zero, err
	}
	matched := filter.Apply(e.records, normalized)
	if len(matched) == 0 {
		return zero, &filter.NoMatchingDataError{Category: e.category, Constraints: normalized}
	}
	return sampler.Pick(e.sampler, matched)
}

// Unique draws a value of field, among records matching preds, that this
// engine's session has not returned yet for that field and predicate set.
// Each distinct predicate set keeps its own history, so exhausting a filtered
// pool does not clear draws made under other filters.
func (e *Engine[T]) Unique(field string, preds filter.Predicates) (string, error) {
	if len(e.records) == 0 {
		return "", e.emptyPool()
	}
	normalized, err := e.Normalize(preds)
	if err != nil {
		return "", err
	}
	matched := filter.Apply(e.records, normalized)
	if len(matched) == 0 {
		return "", &filter.NoMatchingDataError{Category: e.category, Constraints: normalized}
	}
	return e.sampler.Unique(e.uniqueKey(field, normalized), values(matched, field))
}

// UniqueFrom draws from an explicit pool under this engine's history for key.
// It serves list fields such as a state's LGAs.
func (e *Engine[T]) UniqueFrom(key string, pool []string) (string, error) {
	return e.sampler.Unique(e.key(key), pool)
}

// Values returns the distinct non-empty values of field in record order.
func (e *Engine[T]) Values(field string) []string {
	return values(e.records, field)
}

func (e *Engine[T]) emptyPool() error {
	return fmt.Errorf("%w: dataset %s has no records", sampler.ErrEmptyPool, e.category)
}

func (e *Engine[T]) key(field string) string {
	return e.category + "." + field
}

// uniqueKey is key plus the normalised predicates in a fixed order,
// e.g. "states.name[region=south west]".
func (e *Engine[T]) uniqueKey(field string, preds filter.Predicates) string {
	k := e.key(field)
	if len(preds) == 0 {
		return k
	}
	parts := make([]string, 0, len(preds))
	for _, p := range preds {
		parts = append(parts, p.Field+"="+filter.Fold(p.Value))
	}
	slices.Sort(parts)
	return k + "[" + strings.Join(parts, ",") + "]"
}

func values[T filter.Record](records []T, field string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, r := range records {
		v := r.Field(field)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
