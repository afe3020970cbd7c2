package filter

import (
	"strings"

	"golang.org/x/text/cases"
)

// Record is anything whose scalar fields can be read by name.
type Record interface {
	Field(name string) string
}

// Predicate requires Field to equal Value. An empty Value means unset.
type Predicate struct {
	Field string
	Value string
}

// IsSet reports whether the predicate constrains its field.
func (p Predicate) IsSet() bool {
	return strings.TrimSpace(p.Value) != ""
}

// Predicates is an ordered conjunction of equality constraints.
type Predicates []Predicate

// Where starts a predicate set.
func Where(field, value string) Predicates {
	return Predicates{{Field: field, Value: value}}
}

// And returns a new set with one more predicate appended.
func (ps Predicates) And(field, value string) Predicates {
	out := make(Predicates, 0, len(ps)+1)
	out = append(out, ps...)
	return append(out, Predicate{Field: field, Value: value})
}

// Set returns only the predicates that constrain their field.
func (ps Predicates) Set() Predicates {
	var out Predicates
	for _, p := range ps {
		if p.IsSet() {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the value of the first set predicate on field.
func (ps Predicates) Get(field string) (string, bool) {
	for _, p := range ps {
		if p.Field == field && p.IsSet() {
			return p.Value, true
		}
	}
	return "", false
}

func (ps Predicates) String() string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps.Set() {
		parts = append(parts, p.Field+"="+p.Value)
	}
	return strings.Join(parts, ", ")
}

// Apply returns the records matching every set predicate, in their original
// order. String comparison is case-insensitive. With no set predicates the
// result is a copy of records.
func Apply[T Record](records []T, preds Predicates) []T {
	set := preds.Set()
	folded := make([]string, len(set))
	for i, p := range set {
		folded[i] = Fold(p.Value)
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		if matches(r, set, folded) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether r satisfies every set predicate.
func Matches[T Record](r T, preds Predicates) bool {
	set := preds.Set()
	folded := make([]string, len(set))
	for i, p := range set {
		folded[i] = Fold(p.Value)
	}
	return matches(r, set, folded)
}

func matches[T Record](r T, set Predicates, folded []string) bool {
	for i, p := range set {
		if Fold(r.Field(p.Field)) != folded[i] {
			return false
		}
	}
	return true
}

// Fold normalises s for case-insensitive comparison.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
