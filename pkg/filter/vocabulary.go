package filter

import (
	"slices"
	"strings"

	"github.com/agext/levenshtein"
)

const maxSuggestions = 3

// Vocabulary is the set of known values of one field. Lookups are
// case-insensitive; Values keeps the first spelling seen.
type Vocabulary struct {
	field  string
	values []string
	index  map[string]string
}

// NewVocabulary builds a fixed allow-list for field.
func NewVocabulary(field string, values ...string) *Vocabulary {
	v := &Vocabulary{field: field, index: make(map[string]string, len(values))}
	for _, val := range values {
		v.add(val)
	}
	return v
}

// Observe builds a vocabulary from the distinct non-empty values of field
// across records.
func Observe[T Record](field string, records []T) *Vocabulary {
	v := &Vocabulary{field: field, index: make(map[string]string)}
	for _, r := range records {
		v.add(r.Field(field))
	}
	return v
}

func (v *Vocabulary) add(val string) {
	val = strings.TrimSpace(val)
	if val == "" {
		return
	}
	key := Fold(val)
	if _, ok := v.index[key]; ok {
		return
	}
	v.index[key] = val
	v.values = append(v.values, val)
}

// As returns a copy of the vocabulary reported under another field name,
// e.g. a state "name" vocabulary used to validate a "state" predicate.
func (v *Vocabulary) As(field string) *Vocabulary {
	return &Vocabulary{field: field, values: v.values, index: v.index}
}

func (v *Vocabulary) Field() string { return v.field }

// Values returns the known values in first-seen order.
func (v *Vocabulary) Values() []string {
	return slices.Clone(v.values)
}

func (v *Vocabulary) Len() int { return len(v.values) }

func (v *Vocabulary) Contains(value string) bool {
	_, ok := v.index[Fold(value)]
	return ok
}

// Canonical returns the vocabulary spelling of value, or an
// *InvalidFilterValueError carrying close matches.
func (v *Vocabulary) Canonical(value string) (string, error) {
	if c, ok := v.index[Fold(value)]; ok {
		return c, nil
	}
	return "", &InvalidFilterValueError{
		Field:       v.field,
		Value:       value,
		Allowed:     v.Values(),
		Suggestions: v.Suggest(value),
	}
}

// Check validates value; an empty value is always accepted.
func (v *Vocabulary) Check(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	_, err := v.Canonical(value)
	return err
}

// Suggest returns up to three known values close to value: prefix matches
// first, then by edit distance.
func (v *Vocabulary) Suggest(value string) []string {
	q := Fold(value)
	if q == "" {
		return nil
	}
	threshold := max(2, len([]rune(q))/3)

	type candidate struct {
		value string
		dist  int
	}
	var found []candidate
	for _, known := range v.values {
		k := Fold(known)
		if strings.HasPrefix(k, q) || strings.HasPrefix(q, k) {
			found = append(found, candidate{known, 0})
			continue
		}
		if d := levenshtein.Distance(q, k, nil); d <= threshold {
			found = append(found, candidate{known, d})
		}
	}

	slices.SortStableFunc(found, func(a, b candidate) int {
		return a.dist - b.dist
	})

	out := make([]string, 0, min(len(found), maxSuggestions))
	for _, c := range found {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.value)
	}
	return out
}
