package synth

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/naijafake/pkg/dataset"
	"github.com/dmitrymomot/naijafake/pkg/filter"
	"github.com/dmitrymomot/naijafake/pkg/sampler"
	"github.com/dmitrymomot/naijafake/pkg/sanitizer"
)

// NameOptions constrains personal name generation. Blank fields are drawn
// uniformly from the supported values.
type NameOptions struct {
	Tribe  string
	Gender string
	Middle bool
}

// Name is a generated personal name with the attributes it was drawn under.
type Name struct {
	First  string `json:"first" yaml:"first"`
	Middle string `json:"middle,omitempty" yaml:"middle,omitempty"`
	Last   string `json:"last" yaml:"last"`
	Tribe  string `json:"tribe" yaml:"tribe"`
	Gender string `json:"gender" yaml:"gender"`
}

// String joins the parts as "first [middle] last".
func (n Name) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.First, n.Middle, n.Last} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Name draws a first name under (tribe, gender), a last name under tribe and,
// when requested, a middle name of the same tribe and gender distinct from
// the first. The tribe is resolved once so every part shares it. A blank
// gender does not constrain the first name; the drawn name's gender is used
// for the middle name.
func (s *Synthesizer) Name(opts NameOptions) (Name, error) {
	if s.first == nil || s.last == nil {
		return Name{}, fmt.Errorf("%w: names", ErrMissingData)
	}

	tribe, err := s.resolve(s.tribes, opts.Tribe)
	if err != nil {
		return Name{}, err
	}
	gender := ""
	if strings.TrimSpace(opts.Gender) != "" {
		if gender, err = s.genders.Canonical(opts.Gender); err != nil {
			return Name{}, err
		}
	}

	records, err := s.firstNames(tribe, gender)
	if err != nil {
		return Name{}, err
	}
	picked, _ := sampler.Pick(s.sampler, records)
	first := sanitizer.TitleCase(picked.Name)
	if gender == "" {
		gender = filter.Fold(picked.Gender)
	}

	last, err := s.lastName(tribe)
	if err != nil {
		return Name{}, err
	}

	n := Name{First: first, Last: last, Tribe: tribe, Gender: gender}
	if opts.Middle {
		same := filter.Apply(records, filter.Where("gender", gender))
		rest := slices.DeleteFunc(
			distinctNames(same, func(r dataset.FirstName) string { return r.Name }),
			func(name string) bool { return name == first },
		)
		if len(rest) == 0 {
			return Name{}, &filter.NoMatchingDataError{
				Category:    dataset.FirstNames + " (middle)",
				Constraints: filter.Where("tribe", tribe).And("gender", gender),
			}
		}
		n.Middle, _ = sampler.Pick(s.sampler, rest)
	}
	return n, nil
}

// FullName is Name rendered as a single string.
func (s *Synthesizer) FullName(opts NameOptions) (string, error) {
	n, err := s.Name(opts)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

// FirstName draws one first name under optional (tribe, gender) constraints.
func (s *Synthesizer) FirstName(tribe, gender string) (string, error) {
	n, err := s.Name(NameOptions{Tribe: tribe, Gender: gender})
	if err != nil {
		return "", err
	}
	return n.First, nil
}

// LastName draws one last name under an optional tribe constraint.
func (s *Synthesizer) LastName(tribe string) (string, error) {
	if s.last == nil {
		return "", fmt.Errorf("%w: last names", ErrMissingData)
	}
	t, err := s.resolve(s.tribes, tribe)
	if err != nil {
		return "", err
	}
	return s.lastName(t)
}

// firstNames returns the first-name records of tribe, narrowed to gender
// when it is set.
func (s *Synthesizer) firstNames(tribe, gender string) ([]dataset.FirstName, error) {
	preds := filter.Where("tribe", tribe).And("gender", gender)
	records, err := s.first.Find(preds)
	if err != nil {
		return nil, err
	}
	records = slices.DeleteFunc(records, func(r dataset.FirstName) bool {
		return strings.TrimSpace(r.Name) == ""
	})
	if len(records) == 0 {
		return nil, &filter.NoMatchingDataError{Category: dataset.FirstNames, Constraints: preds}
	}
	return records, nil
}

func (s *Synthesizer) lastName(tribe string) (string, error) {
	preds := filter.Where("tribe", tribe)
	records, err := s.last.Find(preds)
	if err != nil {
		return "", err
	}
	names := distinctNames(records, func(r dataset.LastName) string { return r.Name })
	if len(names) == 0 {
		return "", &filter.NoMatchingDataError{Category: dataset.LastNames, Constraints: preds}
	}
	return sampler.Pick(s.sampler, names)
}

func distinctNames[T any](records []T, name func(T) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, r := range records {
		n := sanitizer.TitleCase(name(r))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
